package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
	"rentsight-backend/internal/services"
)

type PropertyHandler struct {
	searchService *services.PropertySearchService
}

func NewPropertyHandler(searchService *services.PropertySearchService) *PropertyHandler {
	return &PropertyHandler{searchService: searchService}
}

// SearchProperties godoc
// @Summary Search properties
// @Description Search rental properties with optional filters
// @Tags Properties
// @Accept json
// @Produce json
// @Param city query string false "City name" default(Madrid)
// @Param propertyType query string false "Property type (room, apartment, house, studio, chalet, duplex)"
// @Param postalCode query string false "Postal code"
// @Param country query string false "Country"
// @Param minPrice query number false "Minimum monthly price"
// @Param maxPrice query number false "Maximum monthly price"
// @Param rooms query string false "Room counts, comma separated; 4 means four or more"
// @Param roommates query int false "Number of roommates"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(20)
// @Success 200 {object} models.PropertiesPage
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /properties [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	var filters models.PropertyFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.Error(apperrors.NewInvalidParametersError(err.Error()))
		return
	}

	page, err := h.searchService.Search(c.Request.Context(), filters)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

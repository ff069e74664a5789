package utils

import "rentsight-backend/internal/models"

// NewPropertiesPage wraps query results into the page envelope. An unpaged
// query (limit <= 0) is a single page with no successor.
func NewPropertiesPage(content []models.Property, total int64, offset, limit int) *models.PropertiesPage {
	if content == nil {
		content = []models.Property{}
	}
	page := &models.PropertiesPage{Content: content}
	if limit > 0 {
		page.HasNext = int64(offset+limit) < total
		page.PageNumber = offset / limit
	}
	return page
}

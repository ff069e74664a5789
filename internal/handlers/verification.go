package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
	"rentsight-backend/internal/services"
)

type VerificationHandler struct {
	phoneService *services.PhoneVerificationService
	emailService *services.EmailVerificationService
}

func NewVerificationHandler(phoneService *services.PhoneVerificationService, emailService *services.EmailVerificationService) *VerificationHandler {
	return &VerificationHandler{
		phoneService: phoneService,
		emailService: emailService,
	}
}

// SendPhoneCode godoc
// @Summary Send phone verification code
// @Description Send a 6-digit verification code by SMS
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body models.SendPhoneVerificationRequest true "Phone number and language"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/phone-verification/send [post]
func (h *VerificationHandler) SendPhoneCode(c *gin.Context) {
	var req models.SendPhoneVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewInvalidParametersError(err.Error()))
		return
	}

	if err := h.phoneService.Send(c.Request.Context(), req.PhoneNumber, req.Language); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// ValidatePhoneCode godoc
// @Summary Validate phone verification code
// @Description Validate a submitted verification code against the active session
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body models.ValidatePhoneVerificationRequest true "Phone number and code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /auth/phone-verification/validate [post]
func (h *VerificationHandler) ValidatePhoneCode(c *gin.Context) {
	var req models.ValidatePhoneVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewInvalidParametersError(err.Error()))
		return
	}

	if err := h.phoneService.Validate(c.Request.Context(), req.PhoneNumber, req.Code); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

// VerifyEmail godoc
// @Summary Verify email address
// @Description Confirm a registration using its emailed verification token
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body models.VerifyEmailRequest true "Verification token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/verify-email [post]
func (h *VerificationHandler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewInvalidParametersError(err.Error()))
		return
	}

	if err := h.emailService.Verify(c.Request.Context(), req.Token); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

// ResendEmail godoc
// @Summary Resend verification email
// @Description Issue a fresh verification token and email it, honouring a cooldown
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body models.ResendEmailRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /auth/resend-verification [post]
func (h *VerificationHandler) ResendEmail(c *gin.Context) {
	var req models.ResendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewInvalidParametersError(err.Error()))
		return
	}

	if err := h.emailService.Resend(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

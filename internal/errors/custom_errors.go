package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeInvalidPriceRange      = "INVALID_PRICE_RANGE"
	ErrCodeInvalidPropertyType    = "INVALID_PROPERTY_TYPE"
	ErrCodeInvalidParameters      = "INVALID_PARAMETERS"
	ErrCodeInvalidPhoneFormat     = "INVALID_PHONE_FORMAT"
	ErrCodeRateLimited            = "RATE_LIMITED"
	ErrCodeCodeExpired            = "VERIFICATION_CODE_EXPIRED"
	ErrCodeInvalidCode            = "INVALID_VERIFICATION_CODE"
	ErrCodeMaxAttemptsExceeded    = "MAX_ATTEMPTS_EXCEEDED"
	ErrCodeSMSDeliveryFailed      = "SMS_DELIVERY_FAILED"
	ErrCodeEmailDeliveryFailed    = "EMAIL_DELIVERY_FAILED"
	ErrCodeInvalidRegistration    = "INVALID_REGISTRATION"
	ErrCodeEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"
	ErrCodeInvalidCredentials     = "INVALID_CREDENTIALS"
	ErrCodeEmailAlreadyVerified   = "EMAIL_ALREADY_VERIFIED"
	ErrCodeExpiredToken           = "EXPIRED_TOKEN"
	ErrCodeInvalidToken           = "INVALID_TOKEN"
	ErrCodeUserNotFound           = "USER_NOT_FOUND"
	ErrCodeServiceUnavailable     = "SERVICE_UNAVAILABLE"
	ErrCodeInternal               = "INTERNAL_ERROR"
)

// Typed constructors for the failures the verification and search flows
// signal. Client-input faults carry 4xx statuses; dependency faults carry
// 5xx and are never conflated with validation.

func NewInvalidPriceRangeError() *AppError {
	return NewAppError("min price greater than max price", MsgInvalidPriceRange, ErrCodeInvalidPriceRange, http.StatusBadRequest, nil)
}

func NewInvalidPropertyTypeError(value string) *AppError {
	return NewAppError(fmt.Sprintf("unknown property type %q", value), MsgInvalidPropertyType, ErrCodeInvalidPropertyType, http.StatusBadRequest, nil)
}

func NewInvalidParametersError(technical string) *AppError {
	return NewAppError(technical, MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest, nil)
}

func NewInvalidPhoneFormatError() *AppError {
	return NewAppError("phone number failed format validation", MsgInvalidPhoneFormat, ErrCodeInvalidPhoneFormat, http.StatusBadRequest, nil)
}

func NewRateLimitExceededError() *AppError {
	return NewAppError("send rate limit mark present", MsgRateLimited, ErrCodeRateLimited, http.StatusTooManyRequests, nil)
}

func NewVerificationCodeExpiredError() *AppError {
	return NewAppError("verification session missing or expired", MsgCodeExpired, ErrCodeCodeExpired, http.StatusBadRequest, nil)
}

func NewInvalidVerificationCodeError() *AppError {
	return NewAppError("submitted code does not match session", MsgInvalidCode, ErrCodeInvalidCode, http.StatusBadRequest, nil)
}

func NewMaxAttemptsExceededError() *AppError {
	return NewAppError("verification attempts exhausted", MsgMaxAttempts, ErrCodeMaxAttemptsExceeded, http.StatusBadRequest, nil)
}

func NewSMSDeliveryError(err error) *AppError {
	return NewAppError("sms gateway send failed", MsgSMSDeliveryFailed, ErrCodeSMSDeliveryFailed, http.StatusInternalServerError, err)
}

func NewEmailDeliveryError(err error) *AppError {
	return NewAppError("smtp send failed", MsgEmailDeliveryFailed, ErrCodeEmailDeliveryFailed, http.StatusInternalServerError, err)
}

func NewInvalidRegistrationError(technical string) *AppError {
	return NewAppError(technical, technical, ErrCodeInvalidRegistration, http.StatusBadRequest, nil)
}

func NewEmailAlreadyRegisteredError() *AppError {
	return NewAppError("duplicate email on insert", MsgEmailAlreadyRegistered, ErrCodeEmailAlreadyRegistered, http.StatusConflict, nil)
}

func NewInvalidCredentialsError() *AppError {
	return NewAppError("credentials rejected", MsgInvalidCredentials, ErrCodeInvalidCredentials, http.StatusUnauthorized, nil)
}

func NewEmailAlreadyVerifiedError() *AppError {
	return NewAppError("email already verified", MsgEmailAlreadyVerified, ErrCodeEmailAlreadyVerified, http.StatusConflict, nil)
}

func NewExpiredTokenError() *AppError {
	return NewAppError("verification token expired", MsgExpiredToken, ErrCodeExpiredToken, http.StatusBadRequest, nil)
}

func NewInvalidTokenError() *AppError {
	return NewAppError("verification token does not match any user", MsgInvalidToken, ErrCodeInvalidToken, http.StatusBadRequest, nil)
}

func NewUserNotFoundError() *AppError {
	return NewAppError("user not found", MsgUserNotFound, ErrCodeUserNotFound, http.StatusNotFound, nil)
}

func NewResendCooldownError(remainingMinutes int64) *AppError {
	return NewAppError(
		"resend requested inside cooldown window",
		fmt.Sprintf("Please wait %d minute(s) before requesting another email.", remainingMinutes),
		ErrCodeRateLimited, http.StatusTooManyRequests, nil,
	)
}

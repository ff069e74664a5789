package models

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest carries an email verification token.
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResendEmailRequest asks for a fresh verification email.
type ResendEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// SendPhoneVerificationRequest starts a phone verification flow.
type SendPhoneVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Language    string `json:"language"`
}

// ValidatePhoneVerificationRequest submits a verification code.
type ValidatePhoneVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

package validators

import (
	"regexp"
	"unicode"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	if err := v.ValidateEmail(req.Email); err != nil {
		return err
	}
	if req.FirstName == "" {
		return apperrors.NewInvalidRegistrationError("First name cannot be empty.")
	}
	if req.LastName == "" {
		return apperrors.NewInvalidRegistrationError("Last name cannot be empty.")
	}
	if !isValidPassword(req.Password) {
		return apperrors.NewInvalidRegistrationError(
			"Password must be at least 8 characters long, contain uppercase and lowercase letters, a digit, and a special character.")
	}
	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return apperrors.NewInvalidRegistrationError("Email and password are required.")
	}
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	return nil
}

func (v *userValidator) ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return apperrors.NewInvalidRegistrationError("Invalid email format.")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

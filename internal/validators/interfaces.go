package validators

import (
	"rentsight-backend/internal/models"
)

type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(email, password string) error
	ValidateEmail(email string) error
}

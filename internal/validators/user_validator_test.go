package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentsight-backend/internal/models"
)

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Password:  "Str0ng!pass",
	}
}

func TestValidateRegisterAccepts(t *testing.T) {
	v := NewUserValidator()
	require.NoError(t, v.ValidateRegister(validRegisterRequest()))
}

func TestValidateRegisterRejectsEmptyNames(t *testing.T) {
	v := NewUserValidator()

	req := validRegisterRequest()
	req.FirstName = ""
	assert.Error(t, v.ValidateRegister(req))

	req = validRegisterRequest()
	req.LastName = ""
	assert.Error(t, v.ValidateRegister(req))
}

func TestValidateRegisterRejectsWeakPasswords(t *testing.T) {
	v := NewUserValidator()

	for _, password := range []string{
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigits!!",
		"NoSpecial11",
		"Sh0rt!",
	} {
		req := validRegisterRequest()
		req.Password = password
		assert.Error(t, v.ValidateRegister(req), password)
	}
}

func TestValidateEmail(t *testing.T) {
	v := NewUserValidator()
	assert.NoError(t, v.ValidateEmail("user@example.com"))
	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail("user@nodomain"))
}

func TestValidateLogin(t *testing.T) {
	v := NewUserValidator()
	assert.NoError(t, v.ValidateLogin("user@example.com", "whatever"))
	assert.Error(t, v.ValidateLogin("", "whatever"))
	assert.Error(t, v.ValidateLogin("user@example.com", ""))
}

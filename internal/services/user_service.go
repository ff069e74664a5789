package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"rentsight-backend/internal/auth"
	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
	"rentsight-backend/internal/repositories"
	"rentsight-backend/internal/validators"
	"rentsight-backend/pkg/logger"
	"rentsight-backend/pkg/mailer"
)

// UserService handles registration, login and account lookups.
type UserService struct {
	repo        repositories.UserRepository
	validator   validators.UserValidator
	mailer      mailer.Mailer
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, m mailer.Mailer, jwtSecret string, tokenExpiryMinutes int) *UserService {
	return &UserService{
		repo:        repo,
		validator:   validator,
		mailer:      m,
		jwtSecret:   jwtSecret,
		tokenExpiry: time.Duration(tokenExpiryMinutes) * time.Minute,
	}
}

// Register creates an unverified account and emails a verification link.
// The account stays unable to log in until the email is verified.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewEmailAlreadyRegisteredError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := uuid.New().String()
	expiry := time.Now().UTC().Add(s.tokenExpiry)
	user := &models.User{
		ID:                uuid.New().String(),
		Name:              req.FirstName + " " + req.LastName,
		Email:             req.Email,
		PasswordHash:      string(hash),
		EmailVerified:     false,
		VerificationToken: &token,
		TokenExpiryDate:   &expiry,
		Gender:            models.GenderNotSpecified,
		AccountStatus:     models.AccountStatusActive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, token); err != nil {
		logger.GlobalLogger.Errorf("failed to send verification email to %s: %v", user.Email, err)
	}

	logger.GlobalLogger.Printf("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates the credentials and returns a signed token. Only
// verified, active accounts may log in.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperrors.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.NewInvalidCredentialsError()
	}
	if !user.EmailVerified || user.AccountStatus != models.AccountStatusActive {
		return "", nil, apperrors.NewInvalidCredentialsError()
	}

	token, err := auth.GenerateJWT(user.ID, user.Name, user.Email, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	logger.GlobalLogger.Printf("User logged in: %s", user.Email)
	return token, user, nil
}

// CheckEmailAvailable reports whether an email is free to register.
func (s *UserService) CheckEmailAvailable(ctx context.Context, email string) (bool, error) {
	if err := s.validator.ValidateEmail(email); err != nil {
		return false, err
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user == nil, nil
}

// GetByID returns the account for an authenticated user.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewUserNotFoundError()
	}
	return user, nil
}

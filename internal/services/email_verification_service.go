package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/repositories"
	"rentsight-backend/pkg/logger"
	"rentsight-backend/pkg/mailer"
)

// EmailVerificationService confirms registration tokens and re-issues them.
type EmailVerificationService struct {
	repo           repositories.UserRepository
	mailer         mailer.Mailer
	tokenExpiry    time.Duration
	resendCooldown time.Duration
}

func NewEmailVerificationService(repo repositories.UserRepository, m mailer.Mailer, tokenExpiryMinutes, resendCooldownMinutes int) *EmailVerificationService {
	return &EmailVerificationService{
		repo:           repo,
		mailer:         m,
		tokenExpiry:    time.Duration(tokenExpiryMinutes) * time.Minute,
		resendCooldown: time.Duration(resendCooldownMinutes) * time.Minute,
	}
}

// Verify marks the account behind a verification token as verified. An
// expired token must be re-issued through Resend.
func (s *EmailVerificationService) Verify(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.NewInvalidTokenError()
	}

	user, err := s.repo.FindByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewInvalidTokenError()
	}
	if user.EmailVerified {
		return apperrors.NewEmailAlreadyVerifiedError()
	}
	if user.TokenExpiryDate == nil || time.Now().UTC().After(*user.TokenExpiryDate) {
		return apperrors.NewExpiredTokenError()
	}

	if err := s.repo.MarkEmailVerified(ctx, user.ID); err != nil {
		return err
	}

	logger.GlobalLogger.Printf("Email verified: %s", user.Email)
	return nil
}

// Resend issues a fresh verification token, honouring a cooldown between
// consecutive sends so the mailbox cannot be flooded.
func (s *EmailVerificationService) Resend(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewUserNotFoundError()
	}
	if user.EmailVerified {
		return apperrors.NewEmailAlreadyVerifiedError()
	}

	if user.TokenExpiryDate != nil {
		issuedAt := user.TokenExpiryDate.Add(-s.tokenExpiry)
		elapsed := time.Since(issuedAt)
		if elapsed < s.resendCooldown {
			remaining := int64((s.resendCooldown-elapsed).Minutes()) + 1
			return apperrors.NewResendCooldownError(remaining)
		}
	}

	token := uuid.New().String()
	expiry := time.Now().UTC().Add(s.tokenExpiry)
	if err := s.repo.UpdateVerificationToken(ctx, user.Email, token, expiry); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, token); err != nil {
		logger.GlobalLogger.Errorf("failed to resend verification email to %s: %v", user.Email, err)
		return apperrors.NewEmailDeliveryError(err)
	}

	logger.GlobalLogger.Printf("Verification email resent: %s", user.Email)
	return nil
}

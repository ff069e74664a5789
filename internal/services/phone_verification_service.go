package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
	"rentsight-backend/pkg/cache"
	"rentsight-backend/pkg/config"
	"rentsight-backend/pkg/logger"
	"rentsight-backend/pkg/sms"
)

// PhoneVerificationService issues, rate-limits and validates short-lived
// SMS verification codes. All of its state lives in the expiring key-value
// store; the service itself is safe for concurrent use.
type PhoneVerificationService struct {
	cache  cache.CacheOperations
	sender sms.TextSender
	cfg    config.Verification
}

func NewPhoneVerificationService(cacheOps cache.CacheOperations, sender sms.TextSender, cfg config.Verification) *PhoneVerificationService {
	return &PhoneVerificationService{
		cache:  cacheOps,
		sender: sender,
		cfg:    cfg,
	}
}

// Send generates a fresh 6-digit code for the phone number, stores it under
// a TTL and delivers it by SMS. A failed delivery rolls the stored session
// back so no undelivered code stays valid. The rate-limit mark is set only
// after a successful delivery.
func (s *PhoneVerificationService) Send(ctx context.Context, phoneNumber, language string) error {
	phone := SanitizePhoneNumber(phoneNumber)
	if err := validatePhoneNumber(phone); err != nil {
		return err
	}

	rateLimitKey := s.cfg.RateLimitPrefix + phone
	limited, err := s.cache.Exists(ctx, rateLimitKey)
	if err != nil {
		return err
	}
	if limited {
		logger.GlobalLogger.Printf("Rate limit exceeded for phone: %s", MaskPhoneNumber(phone))
		return apperrors.NewRateLimitExceededError()
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	sessionKey := s.cfg.CodePrefix + phone
	session := models.PhoneVerification{
		Code:      code,
		Attempts:  0,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.cache.Set(ctx, sessionKey, session, s.codeTTL()); err != nil {
		return err
	}

	if err := s.sender.SendText(ctx, language, phone, code); err != nil {
		// No stored code may outlive a text that was never delivered.
		if delErr := s.cache.Delete(ctx, sessionKey); delErr != nil {
			logger.GlobalLogger.Errorf("failed to roll back verification session for %s: %v", MaskPhoneNumber(phone), delErr)
		}
		logger.GlobalLogger.Errorf("Failed to send SMS to %s: %v", MaskPhoneNumber(phone), err)
		return apperrors.NewSMSDeliveryError(err)
	}

	if err := s.cache.Set(ctx, rateLimitKey, "1", s.rateLimitTTL()); err != nil {
		return err
	}

	logger.GlobalLogger.Printf("Verification code sent to phone: %s", MaskPhoneNumber(phone))
	return nil
}

// Validate checks a submitted code against the stored session. A correct
// code consumes the session; a wrong one counts an attempt and re-stores
// the session with a fresh TTL until the attempt budget runs out.
func (s *PhoneVerificationService) Validate(ctx context.Context, phoneNumber, submittedCode string) error {
	phone := SanitizePhoneNumber(phoneNumber)
	sessionKey := s.cfg.CodePrefix + phone

	var session models.PhoneVerification
	if err := s.cache.Get(ctx, sessionKey, &session); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			logger.GlobalLogger.Printf("No verification code found for phone: %s", MaskPhoneNumber(phone))
			return apperrors.NewVerificationCodeExpiredError()
		}
		return err
	}

	if session.Attempts >= s.cfg.MaxAttempts {
		if err := s.cache.Delete(ctx, sessionKey); err != nil {
			return err
		}
		logger.GlobalLogger.Printf("Max attempts exceeded for phone: %s", MaskPhoneNumber(phone))
		return apperrors.NewMaxAttemptsExceededError()
	}

	if session.Code == submittedCode {
		if err := s.cache.Delete(ctx, sessionKey); err != nil {
			return err
		}
		logger.GlobalLogger.Printf("Phone verified successfully: %s", MaskPhoneNumber(phone))
		return nil
	}

	session.Attempts++
	if err := s.cache.Set(ctx, sessionKey, session, s.codeTTL()); err != nil {
		return err
	}
	logger.GlobalLogger.Printf("Invalid verification code for phone: %s", MaskPhoneNumber(phone))
	return apperrors.NewInvalidVerificationCodeError()
}

func (s *PhoneVerificationService) codeTTL() time.Duration {
	return time.Duration(s.cfg.CodeTTLSeconds) * time.Second
}

func (s *PhoneVerificationService) rateLimitTTL() time.Duration {
	return time.Duration(s.cfg.RateLimitTTLSeconds) * time.Second
}

// SanitizePhoneNumber strips every character except '+' and digits.
func SanitizePhoneNumber(phoneNumber string) string {
	var b strings.Builder
	for _, r := range phoneNumber {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskPhoneNumber hides the middle of a phone number for logging.
// "+34600123456" becomes "+34***456"; anything too short is fully masked.
func MaskPhoneNumber(phoneNumber string) string {
	if len(phoneNumber) > 6 {
		return phoneNumber[:3] + "***" + phoneNumber[len(phoneNumber)-3:]
	}
	return "***"
}

func validatePhoneNumber(phoneNumber string) error {
	if phoneNumber == "" || !strings.HasPrefix(phoneNumber, "+") || len(phoneNumber) < 10 {
		return apperrors.NewInvalidPhoneFormatError()
	}
	return nil
}

// generateCode draws a uniform 6-digit code from a cryptographic source.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

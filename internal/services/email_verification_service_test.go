package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
)

func newEmailService(repo *mockUserRepo, m *mockMailer) *EmailVerificationService {
	return NewEmailVerificationService(repo, m, 20, 2)
}

func unverifiedUser(token string, expiry time.Time) *models.User {
	return &models.User{
		ID:                "u1",
		Email:             "ana@example.com",
		EmailVerified:     false,
		VerificationToken: &token,
		TokenExpiryDate:   &expiry,
		AccountStatus:     models.AccountStatusActive,
	}
}

// --- Verify ---

func TestVerifyMarksUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newEmailService(repo, &mockMailer{})

	user := unverifiedUser("tok-1", time.Now().UTC().Add(10*time.Minute))
	repo.On("FindByVerificationToken", mock.Anything, "tok-1").Return(user, nil)
	repo.On("MarkEmailVerified", mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.Verify(context.Background(), "tok-1"))
	repo.AssertExpectations(t)
}

func TestVerifyRejectsUnknownToken(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newEmailService(repo, &mockMailer{})

	repo.On("FindByVerificationToken", mock.Anything, "nope").Return(nil, nil)

	err := svc.Verify(context.Background(), "nope")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidToken, appErr.Code)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newEmailService(repo, &mockMailer{})

	user := unverifiedUser("tok-1", time.Now().UTC().Add(-time.Minute))
	repo.On("FindByVerificationToken", mock.Anything, "tok-1").Return(user, nil)

	err := svc.Verify(context.Background(), "tok-1")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeExpiredToken, appErr.Code)
	repo.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
}

func TestVerifyRejectsAlreadyVerified(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newEmailService(repo, &mockMailer{})

	user := unverifiedUser("tok-1", time.Now().UTC().Add(10*time.Minute))
	user.EmailVerified = true
	repo.On("FindByVerificationToken", mock.Anything, "tok-1").Return(user, nil)

	err := svc.Verify(context.Background(), "tok-1")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeEmailAlreadyVerified, appErr.Code)
}

// --- Resend ---

func TestResendIssuesFreshToken(t *testing.T) {
	repo := &mockUserRepo{}
	m := &mockMailer{}
	svc := newEmailService(repo, m)

	// token issued well outside the cooldown window
	user := unverifiedUser("tok-old", time.Now().UTC().Add(5*time.Minute))
	repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	repo.On("UpdateVerificationToken", mock.Anything, "ana@example.com", mock.Anything, mock.Anything).Return(nil)
	m.On("SendVerificationEmail", "ana@example.com", mock.Anything).Return(nil)

	require.NoError(t, svc.Resend(context.Background(), "ana@example.com"))
	repo.AssertExpectations(t)
	m.AssertExpectations(t)
}

func TestResendHonoursCooldown(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newEmailService(repo, &mockMailer{})

	// token issued moments ago: expiry is nearly the full 20 minutes away
	user := unverifiedUser("tok-new", time.Now().UTC().Add(20*time.Minute))
	repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	err := svc.Resend(context.Background(), "ana@example.com")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeRateLimited, appErr.Code)
	assert.Equal(t, 429, appErr.HTTPStatus)
	repo.AssertNotCalled(t, "UpdateVerificationToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResendUnknownEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newEmailService(repo, &mockMailer{})

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	err := svc.Resend(context.Background(), "ghost@example.com")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeUserNotFound, appErr.Code)
}

func TestResendAlreadyVerified(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newEmailService(repo, &mockMailer{})

	user := unverifiedUser("tok-1", time.Now().UTC().Add(5*time.Minute))
	user.EmailVerified = true
	repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	err := svc.Resend(context.Background(), "ana@example.com")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeEmailAlreadyVerified, appErr.Code)
}

package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
	"rentsight-backend/pkg/cache"
	"rentsight-backend/pkg/config"
	"rentsight-backend/pkg/logger"
)

// --- mocks ---

type mockCache struct{ mock.Mock }

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}
func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	if session, ok := args.Get(1).(models.PhoneVerification); ok {
		*dest.(*models.PhoneVerification) = session
	}
	return args.Error(0)
}
func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type mockTextSender struct{ mock.Mock }

func (m *mockTextSender) SendText(ctx context.Context, language, phoneNumber, code string) error {
	return m.Called(ctx, language, phoneNumber, code).Error(0)
}

// --- builder ---

func verificationConfig() config.Verification {
	return config.Verification{
		CodePrefix:          "verification:",
		RateLimitPrefix:     "ratelimit:send:",
		CodeTTLSeconds:      120,
		RateLimitTTLSeconds: 60,
		MaxAttempts:         3,
	}
}

func init() {
	logger.InitLogger(io.Discard, "ERROR")
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

// --- Send ---

func TestSendStoresCodeAndRateLimitMark(t *testing.T) {
	c := &mockCache{}
	sender := &mockTextSender{}
	svc := NewPhoneVerificationService(c, sender, verificationConfig())

	var sentCode string
	c.On("Exists", mock.Anything, "ratelimit:send:+34600123456").Return(false, nil)
	c.On("Set", mock.Anything, "verification:+34600123456", mock.MatchedBy(func(v interface{}) bool {
		session, ok := v.(models.PhoneVerification)
		if !ok || session.Attempts != 0 || len(session.Code) != 6 {
			return false
		}
		sentCode = session.Code
		return true
	}), 120*time.Second).Return(nil)
	sender.On("SendText", mock.Anything, "es", "+34600123456", mock.MatchedBy(func(code string) bool {
		return code == sentCode
	})).Return(nil)
	c.On("Set", mock.Anything, "ratelimit:send:+34600123456", "1", 60*time.Second).Return(nil)

	err := svc.Send(context.Background(), "+34600123456", "es")
	require.NoError(t, err)
	c.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestSendSanitizesPhoneNumber(t *testing.T) {
	c := &mockCache{}
	sender := &mockTextSender{}
	svc := NewPhoneVerificationService(c, sender, verificationConfig())

	c.On("Exists", mock.Anything, "ratelimit:send:+34600123456").Return(false, nil)
	c.On("Set", mock.Anything, "verification:+34600123456", mock.Anything, mock.Anything).Return(nil)
	sender.On("SendText", mock.Anything, "en", "+34600123456", mock.Anything).Return(nil)
	c.On("Set", mock.Anything, "ratelimit:send:+34600123456", "1", mock.Anything).Return(nil)

	err := svc.Send(context.Background(), "+34 600-123 456", "en")
	require.NoError(t, err)
	c.AssertExpectations(t)
}

func TestSendRejectsInvalidPhoneFormat(t *testing.T) {
	svc := NewPhoneVerificationService(&mockCache{}, &mockTextSender{}, verificationConfig())

	for _, phone := range []string{"", "600123456", "+34600"} {
		err := svc.Send(context.Background(), phone, "en")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidPhoneFormat, appErrCode(t, err))
	}
}

func TestSendRateLimited(t *testing.T) {
	c := &mockCache{}
	sender := &mockTextSender{}
	svc := NewPhoneVerificationService(c, sender, verificationConfig())

	c.On("Exists", mock.Anything, "ratelimit:send:+34600123456").Return(true, nil)

	err := svc.Send(context.Background(), "+34600123456", "en")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRateLimited, appErrCode(t, err))
	sender.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendRollsBackSessionOnDeliveryFailure(t *testing.T) {
	c := &mockCache{}
	sender := &mockTextSender{}
	svc := NewPhoneVerificationService(c, sender, verificationConfig())

	c.On("Exists", mock.Anything, "ratelimit:send:+34600123456").Return(false, nil)
	c.On("Set", mock.Anything, "verification:+34600123456", mock.Anything, mock.Anything).Return(nil)
	sender.On("SendText", mock.Anything, "en", "+34600123456", mock.Anything).Return(errors.New("sns unavailable"))
	c.On("Delete", mock.Anything, "verification:+34600123456").Return(nil)

	err := svc.Send(context.Background(), "+34600123456", "en")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeSMSDeliveryFailed, appErrCode(t, err))

	// no rate-limit mark after a failed delivery
	c.AssertNotCalled(t, "Set", mock.Anything, "ratelimit:send:+34600123456", mock.Anything, mock.Anything)
	c.AssertCalled(t, "Delete", mock.Anything, "verification:+34600123456")
}

// --- Validate ---

func TestValidateSuccessConsumesSession(t *testing.T) {
	c := &mockCache{}
	svc := NewPhoneVerificationService(c, &mockTextSender{}, verificationConfig())

	session := models.PhoneVerification{Code: "123456", Attempts: 1, CreatedAt: time.Now().UTC()}
	c.On("Get", mock.Anything, "verification:+34600123456", mock.Anything).Return(nil, session)
	c.On("Delete", mock.Anything, "verification:+34600123456").Return(nil)

	err := svc.Validate(context.Background(), "+34600123456", "123456")
	require.NoError(t, err)
	c.AssertExpectations(t)
}

func TestValidateExpiredSession(t *testing.T) {
	c := &mockCache{}
	svc := NewPhoneVerificationService(c, &mockTextSender{}, verificationConfig())

	c.On("Get", mock.Anything, "verification:+34600123456", mock.Anything).Return(cache.ErrCacheMiss, nil)

	err := svc.Validate(context.Background(), "+34600123456", "123456")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeCodeExpired, appErrCode(t, err))
}

func TestValidateWrongCodeCountsAttempt(t *testing.T) {
	c := &mockCache{}
	svc := NewPhoneVerificationService(c, &mockTextSender{}, verificationConfig())

	session := models.PhoneVerification{Code: "123456", Attempts: 0, CreatedAt: time.Now().UTC()}
	c.On("Get", mock.Anything, "verification:+34600123456", mock.Anything).Return(nil, session)
	c.On("Set", mock.Anything, "verification:+34600123456", mock.MatchedBy(func(v interface{}) bool {
		updated, ok := v.(models.PhoneVerification)
		return ok && updated.Attempts == 1 && updated.Code == "123456"
	}), 120*time.Second).Return(nil)

	err := svc.Validate(context.Background(), "+34600123456", "654321")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidCode, appErrCode(t, err))
	c.AssertExpectations(t)
}

func TestValidateMaxAttemptsDeletesSession(t *testing.T) {
	c := &mockCache{}
	svc := NewPhoneVerificationService(c, &mockTextSender{}, verificationConfig())

	session := models.PhoneVerification{Code: "123456", Attempts: 3, CreatedAt: time.Now().UTC()}
	c.On("Get", mock.Anything, "verification:+34600123456", mock.Anything).Return(nil, session)
	c.On("Delete", mock.Anything, "verification:+34600123456").Return(nil)

	// the right code no longer helps once the budget is spent
	err := svc.Validate(context.Background(), "+34600123456", "123456")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeMaxAttemptsExceeded, appErrCode(t, err))
	c.AssertCalled(t, "Delete", mock.Anything, "verification:+34600123456")
}

// --- helpers ---

func TestSanitizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+34600123456", SanitizePhoneNumber("+34 600-123 456"))
	assert.Equal(t, "+34600123456", SanitizePhoneNumber("(+34) 600.123.456"))
	assert.Equal(t, "600123456", SanitizePhoneNumber("600123456"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "+34***456", MaskPhoneNumber("+34600123456"))
	assert.Equal(t, "***", MaskPhoneNumber("12345"))
	assert.Equal(t, "***", MaskPhoneNumber(""))
}

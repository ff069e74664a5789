package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestMapErrorPassesThroughAppError(t *testing.T) {
	original := NewRateLimitExceededError()
	mapped := MapError(original)
	assert.Same(t, original, mapped)
}

func TestMapErrorConnectionFailures(t *testing.T) {
	mapped := MapError(errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
	require.NotNil(t, mapped)
	assert.Equal(t, ErrCodeServiceUnavailable, mapped.Code)
	assert.Equal(t, http.StatusServiceUnavailable, mapped.HTTPStatus)

	mapped = MapError(errors.New("read tcp: i/o timeout"))
	assert.Equal(t, ErrCodeServiceUnavailable, mapped.Code)
}

func TestMapErrorDuplicateEntry(t *testing.T) {
	mapped := MapError(errors.New("Error 1062: Duplicate entry 'ana@example.com' for key 'users.email'"))
	assert.Equal(t, ErrCodeEmailAlreadyRegistered, mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
}

func TestMapErrorDefault(t *testing.T) {
	mapped := MapError(errors.New("something odd"))
	assert.Equal(t, ErrCodeInternal, mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, MsgInternalError, mapped.UserMessage)
}

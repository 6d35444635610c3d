package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Predicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  string
	}{
		{"not found", NewNotFoundError("view"), IsNotFound, ErrCodeNotFound},
		{"validation", NewValidationError("bad tier"), IsValidation, ErrCodeValidation},
		{"unauthorized", NewUnauthorizedError(), IsUnauthorized, ErrCodeUnauthorized},
		{"internal", NewInternalError(errors.New("boom")), IsInternal, ErrCodeInternal},
		{"bad request", NewBadRequestError("bad"), IsBadRequest, ErrCodeBadRequest},
		{"not configured", NewNotConfiguredError("billing"), IsNotConfigured, ErrCodeNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, GetErrorCode(tt.err))

			wrapped := fmt.Errorf("handler: %w", tt.err)
			assert.True(t, tt.check(wrapped), "predicates see through wrapping")
			assert.Equal(t, tt.code, GetErrorCode(wrapped))
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	assert.Equal(t, "NOT_CONFIGURED: billing is not configured", NewNotConfiguredError("billing").Error())

	inner := errors.New("redis down")
	err := NewInternalError(inner)
	assert.Contains(t, err.Error(), "redis down")
	assert.ErrorIs(t, err, inner)
}

func TestGetErrorCode_PlainError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetErrorCode(errors.New("plain")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

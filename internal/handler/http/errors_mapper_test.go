package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"todokeeper/internal/service"
	"todokeeper/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrValidationTitleRequired, want: http.StatusBadRequest},
		{err: service.ErrValidationDescriptionLen, want: http.StatusBadRequest},
		{err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{err: service.ErrTaskAccessForbidden, want: http.StatusForbidden},
		{err: store.ErrTaskNotFound, want: http.StatusNotFound},
		{err: store.ErrNoUserWasFound, want: http.StatusNotFound},
		{err: store.ErrEmailAlreadyExists, want: http.StatusConflict},
		{err: errBoom, want: http.StatusInternalServerError},
		{err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("task lookup ended with error: %w", store.ErrTaskNotFound)
	assert.Equal(t, http.StatusNotFound, statusFromError(wrapped))
}

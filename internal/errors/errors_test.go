package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"email taken", ErrEmailTaken, http.StatusBadRequest, "Email is already registered"},
		{"user not found", ErrUserNotFound, http.StatusUnauthorized, "User not found"},
		{"incorrect password", ErrIncorrectPassword, http.StatusUnauthorized, "Incorrect password"},
		{"wrapped invalid cart", fmt.Errorf("%w: cart is empty", ErrInvalidCart), http.StatusBadRequest, "invalid cart: cart is empty"},
		{"unknown", errors.New("dial tcp: refused"), http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, Response{Message: tt.wantMsg, Alert: false}, got.ToResponse())
		})
	}
}

func TestServerError(t *testing.T) {
	assert.Equal(t, Response{Message: "Server error", Alert: false}, ServerError())
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          *Error
		expectedCode int
		expectedMsg  string
	}{
		{"validation", Validation("bad input"), http.StatusBadRequest, "bad input"},
		{"invalid credentials", InvalidCredentials(), http.StatusBadRequest, MsgInvalidCredentials},
		{"unauthorized", Unauthorized("token expired"), http.StatusUnauthorized, "token expired"},
		{"not found", NotFound("user not found"), http.StatusNotFound, "user not found"},
		{"conflict", Conflict("user already exists"), http.StatusConflict, "user already exists"},
		{"internal", Internal("db down"), http.StatusInternalServerError, "db down"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Code != tt.expectedCode {
				t.Errorf("expected code %d, got %d", tt.expectedCode, tt.err.Code)
			}
			if tt.err.Message != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, tt.err.Message)
			}
			if tt.err.Timestamp.IsZero() {
				t.Error("timestamp is not set")
			}
		})
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("typed error passes through unchanged", func(t *testing.T) {
		t.Parallel()

		orig := Conflict("user already exists")
		got := From(orig)

		if got != orig {
			t.Errorf("expected same error value, got %v", got)
		}
	})

	t.Run("wrapped typed error is unwrapped", func(t *testing.T) {
		t.Parallel()

		orig := Unauthorized("token expired")
		got := From(fmt.Errorf("verify: %w", orig))

		if got != orig {
			t.Errorf("expected unwrapped error value, got %v", got)
		}
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		t.Parallel()

		got := From(errors.New("connection refused"))

		if got.Code != http.StatusInternalServerError {
			t.Errorf("expected code 500, got %d", got.Code)
		}
		if got.Message != "connection refused" {
			t.Errorf("expected original message preserved, got %q", got.Message)
		}
	})
}

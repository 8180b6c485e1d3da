package entity

import (
	"errors"
	"testing"
)

func TestUser_UpdateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		expectedName string
		expectedErr  error
	}{
		{"plain name", "Ada", "Ada", nil},
		{"surrounding whitespace is trimmed", "  Ada Lovelace  ", "Ada Lovelace", nil},
		{"empty name is rejected", "", "Old", ErrBlankName},
		{"whitespace-only name is rejected", "   \t ", "Old", ErrBlankName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := &User{ID: "user-1", Name: "Old"}
			err := u.UpdateName(tt.input)

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if u.Name != tt.expectedName {
				t.Errorf("expected name %q, got %q", tt.expectedName, u.Name)
			}
		})
	}
}

func TestUser_Payload(t *testing.T) {
	t.Parallel()

	u := &User{
		ID:           "user-1",
		Email:        "ada@x.io",
		Name:         "Ada",
		PasswordHash: "$2a$10$secret",
		IsActive:     true,
	}

	p := u.Payload()

	if p.ID != u.ID || p.Email != u.Email || p.Name != u.Name {
		t.Errorf("unexpected payload: %+v", p)
	}
}

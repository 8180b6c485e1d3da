package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/domain/entity"
)

// DefaultExpiration is the token lifetime used when none is configured.
const DefaultExpiration = 2 * time.Hour

// Claims is the JWT claims set carried by issued tokens. It embeds the
// registered claims and adds the identity payload fields. The user id
// travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Service mints and verifies signed, time-bounded identity tokens.
// The secret and expiration are fixed at construction and never change
// for the process lifetime.
type Service struct {
	secret     []byte
	expiration time.Duration
}

// NewService creates a token service with the provided secret and expiration.
// A non-positive expiration falls back to DefaultExpiration.
func NewService(secret string, expiration time.Duration) *Service {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &Service{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Generate creates a signed HS256 token embedding the identity payload plus
// issued-at and expiry timestamps. Each token carries a unique jti, so two
// tokens minted from the same payload are never byte-identical.
func (s *Service) Generate(payload entity.TokenPayload) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
		Email: payload.Email,
		Name:  payload.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates the token's signature and expiry and returns the identity
// payload. Transport claims (issued-at, expiry, jti) are stripped; only the
// identity fields survive. Any failure reports the underlying reason.
func (s *Service) Verify(tokenString string) (entity.TokenPayload, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return entity.TokenPayload{}, err
	}
	if !token.Valid {
		return entity.TokenPayload{}, jwt.ErrTokenUnverifiable
	}

	return entity.TokenPayload{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

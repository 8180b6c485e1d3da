package dto

import (
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// UserResp is the sanitized user view returned by register, login and
// profile responses. It never carries the password hash.
type UserResp struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// AuthResp is the response body for successful register and login calls.
type AuthResp struct {
	User  UserResp `json:"user"`
	Token string   `json:"token"`
}

// PayloadResp is the identity view returned by /verify. Unlike UserResp it
// carries only the token payload fields; isActive is not part of a token.
type PayloadResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// VerifyResp is the response body for successful verify calls. Token is the
// freshly minted replacement, not the token that was presented.
type VerifyResp struct {
	User  PayloadResp `json:"user"`
	Token string      `json:"token"`
}

// NewAuthResp builds an AuthResp from a usecase result.
func NewAuthResp(res *usecase.AuthResult) AuthResp {
	return AuthResp{
		User:  NewUserResp(res.User),
		Token: res.Token,
	}
}

// NewUserResp builds a UserResp from a sanitized user.
func NewUserResp(u usecase.SanitizedUser) UserResp {
	return UserResp{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		IsActive: u.IsActive,
	}
}

// NewVerifyResp builds a VerifyResp from a verified payload and fresh token.
func NewVerifyResp(payload entity.TokenPayload, token string) VerifyResp {
	return VerifyResp{
		User: PayloadResp{
			ID:    payload.ID,
			Email: payload.Email,
			Name:  payload.Name,
		},
		Token: token,
	}
}

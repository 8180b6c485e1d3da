// Package entity defines the domain entities for the auth feature.
package entity

import (
	"strings"
	"time"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	// It is generated by the usecase layer at registration time and never changes.
	ID string `gorm:"primaryKey;size:36"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's display name. It must not be blank after trimming.
	Name string `gorm:"size:255;not null"`

	// PasswordHash is the hashed password for the user.
	// This should never store plaintext passwords and must never be
	// included in any response payload.
	PasswordHash string `gorm:"size:255;not null"`

	// IsActive reports whether the account is active. New accounts start active.
	IsActive bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// UpdateName はユーザーの表示名を変更します。
// トリム後に空になる名前はドメインルール違反として拒否します。
func (u *User) UpdateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrBlankName
	}
	u.Name = trimmed
	return nil
}

// TokenPayload はトークンに埋め込まれるアイデンティティクレームです。
// ミント時にUserから構築され、検証成功時に署名から復元されます。永続化はされません。
type TokenPayload struct {
	ID    string
	Email string
	Name  string
}

// Payload はこのユーザーのアイデンティティペイロードを返します。
// パスワードハッシュとisActiveフラグは含まれません。
func (u *User) Payload() TokenPayload {
	return TokenPayload{ID: u.ID, Email: u.Email, Name: u.Name}
}

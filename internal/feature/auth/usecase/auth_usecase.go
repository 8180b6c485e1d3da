// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/shared/apperr"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します（INSERTセマンティクス）。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Update は既存ユーザーの変更を永続化します。
	Update(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを削除します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// Hasher はパスワードの一方向ハッシュ化と検証を抽象化します。
type Hasher interface {
	// Hash は平文パスワードからソルト付きハッシュを生成します。
	Hash(password string) (string, error)

	// Check は平文パスワードとハッシュが一致するかを検証します。
	// 不正な形式のハッシュを含むあらゆる不一致に対してfalseを返します。
	Check(password, hashed string) bool
}

// TokenService は署名付きトークンの発行と検証を抽象化します。
type TokenService interface {
	// Generate は指定されたペイロードの署名済みトークンを生成します。
	Generate(payload entity.TokenPayload) (string, error)

	// Verify はトークンの署名と有効期限を検証し、ペイロードを返します。
	Verify(tokenString string) (entity.TokenPayload, error)
}

// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ。
// Checkが成功・失敗の両パスで常に実行されることを保証する。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SanitizedUser はパスワードハッシュを除いたユーザーの外部向けビューです。
type SanitizedUser struct {
	ID       string
	Email    string
	Name     string
	IsActive bool
}

// AuthResult は成功した登録・ログインのレスポンスエンベロープです。
// サニタイズ済みユーザーとトークン文字列のペアで、ワークフロー成功ごとに一度だけ組み立てられます。
type AuthResult struct {
	User  SanitizedUser
	Token string
}

// VerifyResult はトークン検証成功時のレスポンスです。
// 検証のたびに新しいトークンが発行されます（refresh-on-verify）。
type VerifyResult struct {
	Payload entity.TokenPayload
	Token   string
}

// authUsecase は認証ビジネスロジックを実装します。
// 全ワークフローはステートレスで、読み取り専用の依存以外に共有状態を持ちません。
type authUsecase struct {
	users  UserRepository
	hasher Hasher
	tokens TokenService
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher Hasher, tokens TokenService) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// sanitize はユーザーから外部向けビューを構築します。
// パスワードハッシュはここで確実に落とされます。
func sanitize(u *entity.User) SanitizedUser {
	return SanitizedUser{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		IsActive: u.IsActive,
	}
}

// RegisterInput は登録ワークフローの入力です。
// 形式バリデーション（必須・メール形式・パスワード長）はトランスポート層で実施済みです。
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register は新規ユーザーを登録し、発行したトークンとともに返します。
// メール重複はConflictとして報告され、保存時のレース（同一メールの同時登録）も
// ストアのユニーク制約経由でConflictに解決されます。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	// 既存ユーザーの事前チェック
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, apperr.Conflict("user already exists")
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, apperr.From(fmt.Errorf("failed to look up user: %w", err))
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.From(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hashed,
		IsActive:     true,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// 事前チェック後に同一メールで並行登録された場合もConflict
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, apperr.Conflict("user already exists")
		}
		return nil, apperr.From(fmt.Errorf("failed to save user: %w", err))
	}

	token, err := u.tokens.Generate(user.Payload())
	if err != nil {
		return nil, apperr.From(fmt.Errorf("failed to generate token: %w", err))
	}

	return &AuthResult{User: sanitize(user), Token: token}, nil
}

// LoginInput はログインワークフローの入力です。
type LoginInput struct {
	Email    string
	Password string
}

// Login はユーザーを認証し、成功時にトークン付きのAuthResultを返します。
// ユーザー未検出・ハッシュ未設定・パスワード不一致はすべて同一のInvalidCredentials
// として報告されます（ユーザー列挙防止）。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ比較を実行します。
func (u *authUsecase) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, apperr.From(fmt.Errorf("failed to look up user: %w", err))
	}

	// 常に比較を実行する。ユーザー未検出またはハッシュ未設定の場合はダミーハッシュを使う。
	hash := dummyHash
	if err == nil && user.PasswordHash != "" {
		hash = user.PasswordHash
	}
	ok := u.hasher.Check(in.Password, hash)

	if err != nil || user.PasswordHash == "" || !ok {
		return nil, apperr.InvalidCredentials()
	}

	token, tokenErr := u.tokens.Generate(user.Payload())
	if tokenErr != nil {
		return nil, apperr.From(fmt.Errorf("failed to generate token: %w", tokenErr))
	}

	return &AuthResult{User: sanitize(user), Token: token}, nil
}

// VerifyToken はトークンを検証し、成功時に同一ペイロードの新しいトークンを発行します。
// 検証はステートレスです。署名が有効で期限内のトークンはそのまま信頼され、
// ストアへの問い合わせや失効チェックは行いません。旧トークンは無効化されません。
func (u *authUsecase) VerifyToken(tokenString string) (*VerifyResult, error) {
	payload, err := u.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperr.Unauthorized(err.Error())
	}

	fresh, err := u.tokens.Generate(payload)
	if err != nil {
		return nil, apperr.From(fmt.Errorf("failed to generate token: %w", err))
	}

	return &VerifyResult{Payload: payload, Token: fresh}, nil
}

// Profile は指定されたIDのユーザーのサニタイズ済みビューを返します。
func (u *authUsecase) Profile(ctx context.Context, id string) (*SanitizedUser, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.From(fmt.Errorf("failed to look up user: %w", err))
	}
	s := sanitize(user)
	return &s, nil
}

// Rename はユーザーの表示名を変更して永続化します。
// トリム後に空になる名前はValidationエラーとして拒否されます。
func (u *authUsecase) Rename(ctx context.Context, id, name string) (*SanitizedUser, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.From(fmt.Errorf("failed to look up user: %w", err))
	}

	if err := user.UpdateName(name); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, apperr.From(fmt.Errorf("failed to update user: %w", err))
	}

	s := sanitize(user)
	return &s, nil
}

// Deactivate は指定されたIDのユーザーを削除します。
func (u *authUsecase) Deactivate(ctx context.Context, id string) error {
	if err := u.users.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.From(fmt.Errorf("failed to delete user: %w", err))
	}
	return nil
}

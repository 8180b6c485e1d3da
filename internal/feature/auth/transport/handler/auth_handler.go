// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/shared/apperr"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、発行したトークンとともに返します。
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	// Login はユーザーを認証し、成功時にトークン付きのAuthResultを返します。
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.AuthResult, error)
	// VerifyToken はトークンを検証し、同一ペイロードの新しいトークンを発行します。
	VerifyToken(tokenString string) (*usecase.VerifyResult, error)
	// Profile は指定されたIDのユーザーのサニタイズ済みビューを返します。
	Profile(ctx context.Context, id string) (*usecase.SanitizedUser, error)
	// Rename はユーザーの表示名を変更して永続化します。
	Rename(ctx context.Context, id, name string) (*usecase.SanitizedUser, error)
	// Deactivate は指定されたIDのユーザーを削除します。
	Deactivate(ctx context.Context, id string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
// すべての失敗レスポンスはapperr.Errorのエンベロープ（code, message, timestamp）です。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// fail はユースケースのエラーをエンベロープに変換してレスポンスします。
func fail(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.JSON(appErr.Code, appErr)
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時はサニタイズ済みユーザーとトークン付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apperr.Validation(err.Error()))
		return
	}

	res, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}

	slog.Info("user registered", "user_id", res.User.ID, "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewAuthResp(res))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は統一メッセージの400を返却（ユーザー列挙防止）
// - 認証成功時はサニタイズ済みユーザーとトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apperr.Validation(err.Error()))
		return
	}

	res, err := h.auth.Login(c.Request.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}

	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewAuthResp(res))
}

// Verify はトークン検証APIエンドポイントを処理します。
// 検証成功のたびに新しいトークンが発行されます（refresh-on-verify）。
// 旧トークンは有効期限まで引き続き有効です。
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apperr.Validation(err.Error()))
		return
	}

	res, err := h.auth.VerifyToken(req.Token)
	if err != nil {
		slog.Warn("token verification failed", "error", err, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewVerifyResp(res.Payload, res.Token))
}

// Me は認証済みユーザーのプロフィールを返します。
// 認証ミドルウェアがコンテキストに設定したユーザーIDを使用します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("profile lookup failed", "error", err, "user_id", userID)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResp(*user))
}

// Rename は認証済みユーザーの表示名を変更します。
func (h *AuthHandler) Rename(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	var req dto.RenameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("rename validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, apperr.Validation(err.Error()))
		return
	}

	user, err := h.auth.Rename(c.Request.Context(), userID, req.Name)
	if err != nil {
		slog.Warn("rename failed", "error", err, "user_id", userID)
		fail(c, err)
		return
	}

	slog.Info("user renamed", "user_id", userID)
	c.JSON(http.StatusOK, dto.NewUserResp(*user))
}

// Deactivate は認証済みユーザーのアカウントを削除します。
func (h *AuthHandler) Deactivate(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	if err := h.auth.Deactivate(c.Request.Context(), userID); err != nil {
		slog.Warn("deactivate failed", "error", err, "user_id", userID)
		fail(c, err)
		return
	}

	slog.Info("user deactivated", "user_id", userID)
	c.Status(http.StatusNoContent)
}

package router

import (
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/platform/http/handler"
	jwtmw "auth_backend/internal/platform/jwt"
)

// NewRouter は全エンドポイントを配線したginエンジンを生成します。
func NewRouter(authHandler *authhandler.AuthHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/register", authHandler.Register)
	// ログイン（トークン発行）
	r.POST("/login", authHandler.Login)
	// トークン検証（成功ごとに新しいトークンを発行）
	r.POST("/verify", authHandler.Verify)

	// 認証必須のルート
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.GET("/me", authHandler.Me)
		auth.PATCH("/me/name", authHandler.Rename)
		auth.DELETE("/me", authHandler.Deactivate)
	}

	return r
}

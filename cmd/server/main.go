package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/di"
	"auth_backend/internal/app/router"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	infradb "auth_backend/internal/platform/db"
	"auth_backend/internal/platform/hash"
	jwtmw "auth_backend/internal/platform/jwt"
	infraredis "auth_backend/internal/platform/redis"
)

func main() {
	// 設定（JWT_SECRET必須）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis（未設定・接続不可ならキャッシュなしで続行）
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, db, cfg)

	// Platform services
	hasher := hash.NewBcrypt(cfg.BcryptCost)
	tokens := jwtmw.NewService(cfg.JWTSecret, cfg.TokenExpiry)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// ルータ生成
	router := router.NewRouter(authH, tokens)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

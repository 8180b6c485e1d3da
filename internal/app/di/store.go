package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "auth_backend/internal/feature/auth/adapters"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/cache"
	"auth_backend/internal/platform/config"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, lookups are served through a read-through cache.
// Otherwise, the gorm repository is used directly.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, cfg *config.Config) usecase.UserRepository {
	repo := authadapters.NewUserGorm(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, cfg.UserCacheTTL, repo, "users")
	}
	return repo
}

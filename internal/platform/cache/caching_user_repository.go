// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching.
// It implements the decorator pattern, transparently adding read-through
// caching for lookups without modifying the underlying repository.
// All cache operations are best effort: a cache failure never fails the
// request, it only falls back to the database.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingUserRepositoryがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create persists a new user and drops any stale cache entries for its keys.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := c.inner.Create(ctx, u); err != nil {
		return err
	}
	c.invalidate(ctx, u)
	return nil
}

// FindByEmail retrieves a user, checking the cache first then falling back
// to the database.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.readThrough(ctx, c.emailKey(email), func() (*entity.User, error) {
		return c.inner.FindByEmail(ctx, email)
	})
}

// FindByID retrieves a user, checking the cache first then falling back
// to the database.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return c.readThrough(ctx, c.idKey(id), func() (*entity.User, error) {
		return c.inner.FindByID(ctx, id)
	})
}

// Update persists the change and invalidates both cache keys for the user.
func (c *CachingUserRepository) Update(ctx context.Context, u *entity.User) error {
	if err := c.inner.Update(ctx, u); err != nil {
		return err
	}
	c.invalidate(ctx, u)
	return nil
}

// Delete removes the user and its cache entries. The record is read first so
// its email key can be invalidated too; if the read fails only the id key is
// dropped.
func (c *CachingUserRepository) Delete(ctx context.Context, id string) error {
	var cached *entity.User
	if c.rdb != nil {
		cached, _ = c.inner.FindByID(ctx, id)
	}

	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}

	if c.rdb != nil {
		if cached != nil {
			c.invalidate(ctx, cached)
		} else {
			_ = c.rdb.Del(ctx, c.idKey(id)).Err()
		}
	}
	return nil
}

// readThrough serves a lookup from the cache when possible, otherwise loads
// from the inner repository and stores the result.
func (c *CachingUserRepository) readThrough(ctx context.Context, key string, load func() (*entity.User, error)) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	u, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return u, nil
}

// invalidate drops both cache keys of a user.
func (c *CachingUserRepository) invalidate(ctx context.Context, u *entity.User) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.idKey(u.ID), c.emailKey(u.Email)).Err()
}

// idKey generates the cache key for a by-id lookup.
func (c *CachingUserRepository) idKey(id string) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, safe(id))
}

// emailKey generates the cache key for a by-email lookup.
func (c *CachingUserRepository) emailKey(email string) string {
	return fmt.Sprintf("%s:email:%s", c.namespace, safe(email))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	// Simple escaping of characters that are problematic for Redis keys
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

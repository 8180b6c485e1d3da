package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// newTestUser builds a user record with the fields the engine would set.
func newTestUser(id, email string) *entity.User {
	return &entity.User{
		ID:           id,
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$2a$10$hashed_password",
		IsActive:     true,
	}
}

func TestNewUserGorm(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserGorm(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := newTestUser("user-1", "test@example.com")

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Create(context.Background(), newTestUser("user-1", "duplicate@example.com"))
		require.NoError(t, err, "failed to create first user")

		// Create second user with the same email but a different id
		err = repo.Create(context.Background(), newTestUser("user-2", "duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should map duplicate key to ErrEmailAlreadyExists")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := newTestUser("user-1", "find@example.com")
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.PasswordHash, found.PasswordHash, "password hash does not match")
		assert.True(t, found.IsActive, "user should be active")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by id successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := newTestUser("user-1", "find@example.com")
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), "user-1")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("id not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByID(context.Background(), "missing")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserGorm_Update(t *testing.T) {
	t.Run("persists changed fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := newTestUser("user-1", "update@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		user.Name = "Renamed"
		err := repo.Update(context.Background(), user)
		assert.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name, "name was not persisted")
	})
}

func TestUserGorm_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("user-1", "delete@example.com")))

		err := repo.Delete(context.Background(), "user-1")
		assert.NoError(t, err, "failed to delete user")

		_, err = repo.FindByID(context.Background(), "user-1")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "user should be gone")
	})

	t.Run("deleting a missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

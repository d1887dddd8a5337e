package repositories

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a specific user by their username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserCredentials retrieves a user together with their password
	// hash. The hash never travels on the domain User itself.
	FindUserCredentials(ctx context.Context, username string) (*domain.User, string, error)

	// ListUsers retrieves all users that are not soft-deleted.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user with their password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// SaveFirstUser persists the user only when no live users exist yet,
	// atomically, and reports whether the insert happened.
	SaveFirstUser(ctx context.Context, user domain.User, passwordHash string) (bool, error)

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserPassword replaces a user's password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}

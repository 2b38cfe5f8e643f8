package repositories

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// UserReader defines read operations for user reference data
type UserReader interface {
	// FindUserByID retrieves a user by actor ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListOperators retrieves all users with an operator role (manager/admin).
	ListOperators(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user reference data
type UserWriter interface {
	// SaveUser upserts a user record (profile fields refresh on conflict).
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

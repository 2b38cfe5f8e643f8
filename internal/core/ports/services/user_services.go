package services

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/changifyhq/changify-backend/internal/dto"
)

// RoleResolverSvc resolves the effective role of an actor. Seed admin and
// manager IDs from configuration take precedence over the stored record, so
// operator access never depends on mutable database state alone.
type RoleResolverSvc interface {
	ResolveRole(ctx context.Context, actorID string) (domain.UserRole, error)
}

// UserReaderSvc defines read operations for user reference data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by actor ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListOperators retrieves all manager/admin users.
	ListOperators(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user reference data
type UserWriterSvc interface {
	// EnsureUser upserts the reference record for an actor seen on the
	// transport (profile fields refresh, role is preserved).
	EnsureUser(ctx context.Context, req dto.EnsureUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	RoleResolverSvc
	UserReaderSvc
	UserWriterSvc
}

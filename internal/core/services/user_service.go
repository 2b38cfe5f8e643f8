package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	portsrepo "github.com/changifyhq/changify-backend/internal/core/ports/repositories"
	"github.com/changifyhq/changify-backend/internal/dto"
)

// UserService provides business logic for actor reference records and role
// resolution. Seed admin/manager IDs come from configuration and are passed
// in at construction; they take precedence over whatever role the stored
// record carries.
type UserService struct {
	userRepo   portsrepo.UserRepositoryFacade
	adminIDs   map[string]struct{}
	managerIDs map[string]struct{}
}

// NewUserService creates a new UserService with the configured seed roles.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, adminIDs, managerIDs []string) *UserService {
	s := &UserService{
		userRepo:   userRepo,
		adminIDs:   make(map[string]struct{}, len(adminIDs)),
		managerIDs: make(map[string]struct{}, len(managerIDs)),
	}
	for _, id := range adminIDs {
		s.adminIDs[id] = struct{}{}
	}
	for _, id := range managerIDs {
		s.managerIDs[id] = struct{}{}
	}
	return s
}

// ResolveRole returns the effective role of an actor. Unknown actors default
// to the plain user role; the transport is free to introduce new actors at
// any time.
func (s *UserService) ResolveRole(ctx context.Context, actorID string) (domain.UserRole, error) {
	if _, ok := s.adminIDs[actorID]; ok {
		return domain.RoleAdmin, nil
	}
	if _, ok := s.managerIDs[actorID]; ok {
		return domain.RoleManager, nil
	}

	user, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RoleUser, nil
		}
		return "", fmt.Errorf("failed to resolve role in service: %w", err)
	}
	return user.Role, nil
}

// GetUserByID retrieves a user by actor ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user in service: %w", err)
	}
	return user, nil
}

// ListOperators retrieves all manager/admin users.
func (s *UserService) ListOperators(ctx context.Context) ([]domain.User, error) {
	operators, err := s.userRepo.ListOperators(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operators in service: %w", err)
	}
	if operators == nil {
		operators = []domain.User{}
	}
	return operators, nil
}

// EnsureUser upserts the reference record for an actor seen on the transport.
func (s *UserService) EnsureUser(ctx context.Context, req dto.EnsureUserRequest) (*domain.User, error) {
	role, err := s.ResolveRole(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:    req.UserID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: req.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to ensure user in service: %w", err)
	}
	return &user, nil
}

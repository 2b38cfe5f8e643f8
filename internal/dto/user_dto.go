package dto

import (
	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// EnsureUserRequest upserts the reference record for an actor seen on the
// transport.
type EnsureUserRequest struct {
	UserID    string `json:"userID" binding:"required"`
	Username  string `json:"username" binding:"max=50"`
	FirstName string `json:"firstName" binding:"max=50"`
	LastName  string `json:"lastName" binding:"max=50"`
}

// UserResponse defines the structure for API responses containing user details.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Username  string          `json:"username,omitempty"`
	FirstName string          `json:"firstName,omitempty"`
	LastName  string          `json:"lastName,omitempty"`
	Role      domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository implements the user repository ports using pgxpool.
type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

// SaveUser upserts a user record, refreshing profile fields and role on
// conflict.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, username, first_name, last_name, role,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id)
		DO UPDATE SET username = EXCLUDED.username, first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name, role = EXCLUDED.role,
			last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by
	`
	_, err := r.db.Exec(ctx, query,
		user.UserID, user.Username, user.FirstName, user.LastName, user.Role,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error upserting user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a user by actor ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, first_name, last_name, role,
			created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE user_id = $1
	`
	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.UserID, &user.Username, &user.FirstName, &user.LastName, &user.Role,
		&user.CreatedAt, &user.CreatedBy, &user.LastUpdatedAt, &user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}

// ListOperators retrieves all users with an operator role.
func (r *PgxUserRepository) ListOperators(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT user_id, username, first_name, last_name, role,
			created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE role = $1 OR role = $2
		ORDER BY user_id
	`
	rows, err := r.db.Query(ctx, query, domain.RoleManager, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("error listing operators: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.UserID, &user.Username, &user.FirstName, &user.LastName, &user.Role,
			&user.CreatedAt, &user.CreatedBy, &user.LastUpdatedAt, &user.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"smartassess-backend/internal/domain"
)

type userRepo struct{}

func NewUserRepository() domain.UserRepository {
	return &userRepo{}
}

// GetByID only ever sees the scoped principal's own row.
func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	tx, err := txFrom(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, email, role, created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err = tx.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

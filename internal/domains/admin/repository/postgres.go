package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/admin"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) admin.Repository {
	return &postgresRepository{pool: pool}
}

// CreateIfNone inserts the admin behind a NOT EXISTS guard. The insert
// and the emptiness check happen in one statement, so concurrent
// registrations race on the database, not in application code.
func (r *postgresRepository) CreateIfNone(ctx context.Context, a *admin.Admin) error {
	query := `
    INSERT INTO admins (id, name, email, password_hash, role)
    SELECT $1, $2, $3, $4, $5
    WHERE NOT EXISTS (SELECT 1 FROM admins)
    RETURNING created_at, updated_at
  `

	err := r.pool.QueryRow(ctx, query,
		a.ID, a.Name, a.Email, a.PasswordHash, a.Role,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.ErrAdminExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return admin.ErrEmailExists
		}
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *postgresRepository) getOne(ctx context.Context, where string, arg any) (*admin.Admin, error) {
	query := `
    SELECT id, name, email, password_hash, role, refresh_token, created_at, updated_at
    FROM admins
    WHERE ` + where

	var a admin.Admin
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.RefreshToken,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken *string) error {
	query := `UPDATE admins SET refresh_token = $2, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, refreshToken)
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/aiplayground"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) aiplayground.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entry *aiplayground.UsageLog) error {
	query := `
    INSERT INTO ai_usage_logs (id, type, prompt, result, ip_address, tokens, success)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING created_at
  `

	err := r.pool.QueryRow(ctx, query,
		entry.ID, entry.Type, entry.Prompt, entry.Result,
		entry.IPAddress, entry.Tokens, entry.Success,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("create ai usage log: %w", err)
	}

	return nil
}

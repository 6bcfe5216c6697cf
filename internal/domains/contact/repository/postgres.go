package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/contact"
)

const messageColumns = `
  id, name, email, phone, message, read, ip_address, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func scanMessage(row pgx.Row) (*contact.Message, error) {
	var m contact.Message
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Message,
		&m.Read,
		&m.IPAddress,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*contact.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contacts ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	messages := make([]*contact.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contacts WHERE id = $1`

	m, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return m, nil
}

func (r *postgresRepository) Create(ctx context.Context, m *contact.Message) error {
	query := `
    INSERT INTO contacts (id, name, email, phone, message, ip_address)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING read, created_at, updated_at
  `

	err := r.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.Message, m.IPAddress,
	).Scan(&m.Read, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	return nil
}

func (r *postgresRepository) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	query := `
    UPDATE contacts SET read = true, updated_at = now()
    WHERE id = $1
    RETURNING ` + messageColumns

	m, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrMessageNotFound
		}
		return nil, fmt.Errorf("mark contact read: %w", err)
	}

	return m, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrMessageNotFound
	}

	return nil
}

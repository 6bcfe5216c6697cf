package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/project"
)

const uniqueViolation = "23505"

const projectColumns = `
  id, title, slug, description, image_url, technologies, features,
  live_url, github_url, featured, display_order, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresRepository{pool: pool}
}

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.ImageURL,
		&p.Technologies,
		&p.Features,
		&p.LiveURL,
		&p.GithubURL,
		&p.Featured,
		&p.Order,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*project.Project, error) {
	query := `
    SELECT ` + projectColumns + `
    FROM projects
    ORDER BY featured DESC, display_order ASC, created_at DESC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
    INSERT INTO projects
      (id, title, slug, description, image_url, technologies, features,
       live_url, github_url, featured, display_order)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING created_at, updated_at
  `

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.ImageURL, p.Technologies,
		p.Features, p.LiveURL, p.GithubURL, p.Featured, p.Order,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return project.ErrSlugExists
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
    UPDATE projects SET
      title = $2, slug = $3, description = $4, image_url = $5,
      technologies = $6, features = $7, live_url = $8, github_url = $9,
      featured = $10, display_order = $11, updated_at = now()
    WHERE id = $1
    RETURNING updated_at
  `

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.ImageURL, p.Technologies,
		p.Features, p.LiveURL, p.GithubURL, p.Featured, p.Order,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return project.ErrSlugExists
		}
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

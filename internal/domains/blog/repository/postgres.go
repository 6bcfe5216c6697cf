package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/blog"
)

const uniqueViolation = "23505"

const postColumns = `
  id, title, slug, excerpt, content, featured_image, tags,
  published, read_time, views, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

func scanPost(row pgx.Row) (*blog.Post, error) {
	var p blog.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.FeaturedImage,
		&p.Tags,
		&p.Published,
		&p.ReadTime,
		&p.Views,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context, publishedOnly bool) ([]*blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	if publishedOnly {
		query += ` WHERE published = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*blog.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post by slug: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *blog.Post) error {
	query := `
    INSERT INTO posts
      (id, title, slug, excerpt, content, featured_image, tags,
       published, read_time)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING views, created_at, updated_at
  `

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
		p.Tags, p.Published, p.ReadTime,
	).Scan(&p.Views, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return blog.ErrSlugExists
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *blog.Post) error {
	query := `
    UPDATE posts SET
      title = $2, slug = $3, excerpt = $4, content = $5,
      featured_image = $6, tags = $7, published = $8, read_time = $9,
      updated_at = now()
    WHERE id = $1
    RETURNING updated_at
  `

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
		p.Tags, p.Published, p.ReadTime,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.ErrPostNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return blog.ErrSlugExists
		}
		return fmt.Errorf("update post: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}

	return nil
}

func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx,
		`UPDATE posts SET views = views + 1 WHERE id = $1 RETURNING views`,
		id,
	).Scan(&views)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, blog.ErrPostNotFound
		}
		return 0, fmt.Errorf("increment views: %w", err)
	}

	return views, nil
}

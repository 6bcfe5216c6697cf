package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// wordsPerMinute is the reading speed used for the estimated read time.
const wordsPerMinute = 200

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

// calculateReadTime estimates reading minutes from the word count,
// rounding up so short posts never show zero.
func calculateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// normalizeTags lowercases and trims tags, dropping empties.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *blogService) ListPublished(ctx context.Context) ([]*blog.Post, error) {
	return s.repo.List(ctx, true)
}

func (s *blogService) ListAll(ctx context.Context) ([]*blog.Post, error) {
	return s.repo.List(ctx, false)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Published {
		return nil, blog.ErrPostNotFound
	}

	views, err := s.repo.IncrementViews(ctx, p.ID)
	if err != nil {
		// The read itself succeeded; a lost view bump is not worth a 500.
		logger.Warn("increment views failed", map[string]interface{}{
			"post_id": p.ID.String(),
			"error":   err.Error(),
		})
	} else {
		p.Views = views
	}

	return p, nil
}

func (s *blogService) Get(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, blog.ErrPostNotFound
	}
	return p, nil
}

func (s *blogService) Create(ctx context.Context, req blog.CreateRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	p := &blog.Post{
		ID:            uuid.New(),
		Title:         req.Title,
		Slug:          utils.GenerateSlug(req.Title),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Tags:          normalizeTags(req.Tags),
		Published:     published,
		ReadTime:      calculateReadTime(req.Content),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req blog.UpdateRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, blog.ErrPostNotFound
	}

	if req.Title != nil && *req.Title != p.Title {
		p.Title = *req.Title
		p.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		p.Content = *req.Content
		p.ReadTime = calculateReadTime(*req.Content)
	}
	if req.FeaturedImage != nil {
		p.FeaturedImage = *req.FeaturedImage
	}
	if req.Tags != nil {
		p.Tags = normalizeTags(*req.Tags)
	}
	if req.Published != nil {
		p.Published = *req.Published
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

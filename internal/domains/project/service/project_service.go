package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/utils"
)

type projectService struct {
	repo project.Repository
}

func NewProjectService(repo project.Repository) project.Service {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context) ([]*project.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, project.ErrProjectNotFound
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &project.Project{
		ID:           uuid.New(),
		Title:        req.Title,
		Slug:         utils.GenerateSlug(req.Title),
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		Features:     req.Features,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Featured:     req.Featured,
		Order:        req.Order,
	}
	if p.Features == nil {
		p.Features = []string{}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req project.UpdateRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, project.ErrProjectNotFound
	}

	if req.Title != nil && *req.Title != p.Title {
		p.Title = *req.Title
		p.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Technologies != nil {
		p.Technologies = *req.Technologies
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.LiveURL != nil {
		p.LiveURL = *req.LiveURL
	}
	if req.GithubURL != nil {
		p.GithubURL = *req.GithubURL
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Order != nil {
		p.Order = *req.Order
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

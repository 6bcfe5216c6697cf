package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]*project.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*project.Project)}
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	out := make([]*project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if p, ok := r.projects[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *project.Project) error {
	for _, existing := range r.projects {
		if existing.Slug == p.Slug {
			return project.ErrSlugExists
		}
	}
	copied := *p
	r.projects[p.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, p *project.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return project.ErrProjectNotFound
	}
	for id, existing := range r.projects {
		if id != p.ID && existing.Slug == p.Slug {
			return project.ErrSlugExists
		}
	}
	copied := *p
	r.projects[p.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.projects[id]; !ok {
		return project.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func createProjectReq() project.CreateRequest {
	return project.CreateRequest{
		Title:        "Portfolio Website",
		Description:  "Personal portfolio built with a Go backend",
		Technologies: []string{"Go", "PostgreSQL"},
	}
}

func TestCreateDerivesSlug(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	p, err := svc.Create(context.Background(), createProjectReq())
	require.NoError(t, err)

	assert.Equal(t, "portfolio-website", p.Slug)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.NotNil(t, p.Features)
}

func TestCreateRequiresTechnologies(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	req := createProjectReq()
	req.Technologies = nil
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateDuplicateTitle(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, createProjectReq())
	require.NoError(t, err)

	_, err = svc.Create(ctx, createProjectReq())
	assert.ErrorIs(t, err, project.ErrSlugExists)
}

func TestUpdatePartial(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, createProjectReq())
	require.NoError(t, err)

	featured := true
	updated, err := svc.Update(ctx, created.ID, project.UpdateRequest{Featured: &featured})
	require.NoError(t, err)

	assert.True(t, updated.Featured)
	// Slug untouched when the title did not change
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Description, updated.Description)
}

func TestUpdateTitleRecomputesSlug(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, createProjectReq())
	require.NoError(t, err)

	newTitle := "Rebuilt Portfolio"
	updated, err := svc.Update(ctx, created.ID, project.UpdateRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "rebuilt-portfolio", updated.Slug)
}

func TestUpdateMissingProject(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	title := "Anything"
	_, err := svc.Update(context.Background(), uuid.New(), project.UpdateRequest{Title: &title})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestGetAndDelete(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, createProjectReq())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

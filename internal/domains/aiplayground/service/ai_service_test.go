package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/aiplayground"
	"portfolio-backend/internal/infrastructure/ai"
)

type stubAIClient struct {
	result     *ai.GenerateResult
	err        error
	lastPrompt string
}

func (c *stubAIClient) GenerateText(ctx context.Context, prompt string) (*ai.GenerateResult, error) {
	c.lastPrompt = prompt
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

func (c *stubAIClient) Configured() bool { return true }

func (c *stubAIClient) Model() string { return "gemini-1.5-flash" }

type recordingAIRepo struct {
	entries []*aiplayground.UsageLog
}

func (r *recordingAIRepo) Create(ctx context.Context, entry *aiplayground.UsageLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func TestGenerateText(t *testing.T) {
	client := &stubAIClient{result: &ai.GenerateResult{Text: "generated answer", TotalTokens: 42}}
	repo := &recordingAIRepo{}
	svc := NewAIService(client, repo)

	resp, err := svc.GenerateText(context.Background(),
		aiplayground.TextRequest{Prompt: "write a haiku"}, "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, "generated answer", resp.Text)
	assert.Equal(t, "gemini-1.5-flash", resp.Model)
	assert.Equal(t, 42, resp.Tokens)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, aiplayground.TypeText, entry.Type)
	assert.Equal(t, "write a haiku", entry.Prompt)
	assert.Equal(t, "203.0.113.7", entry.IPAddress)
	assert.True(t, entry.Success)
	assert.Equal(t, 42, entry.Tokens)
}

func TestGenerateTextPromptLimits(t *testing.T) {
	svc := NewAIService(&stubAIClient{}, &recordingAIRepo{})
	ctx := context.Background()

	_, err := svc.GenerateText(ctx, aiplayground.TextRequest{Prompt: ""}, "")
	assert.Error(t, err)

	tooLong := strings.Repeat("a", 2001)
	_, err = svc.GenerateText(ctx, aiplayground.TextRequest{Prompt: tooLong}, "")
	assert.Error(t, err)
}

func TestDescribeImageWrapsPrompt(t *testing.T) {
	client := &stubAIClient{result: &ai.GenerateResult{Text: "a vivid description"}}
	repo := &recordingAIRepo{}
	svc := NewAIService(client, repo)

	resp, err := svc.DescribeImage(context.Background(),
		aiplayground.ImageRequest{Prompt: "a fox in the snow"}, "")
	require.NoError(t, err)
	assert.Equal(t, "a vivid description", resp.Text)

	// The provider sees the enriched prompt; the log keeps the original
	assert.Contains(t, client.lastPrompt, "a fox in the snow")
	assert.NotEqual(t, "a fox in the snow", client.lastPrompt)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "a fox in the snow", repo.entries[0].Prompt)
	assert.Equal(t, aiplayground.TypeImage, repo.entries[0].Type)
}

func TestFailedGenerationIsLogged(t *testing.T) {
	client := &stubAIClient{err: ai.ErrQuotaExceeded}
	repo := &recordingAIRepo{}
	svc := NewAIService(client, repo)

	_, err := svc.GenerateText(context.Background(),
		aiplayground.TextRequest{Prompt: "hello"}, "203.0.113.7")
	assert.ErrorIs(t, err, ai.ErrQuotaExceeded)

	require.Len(t, repo.entries, 1)
	assert.False(t, repo.entries[0].Success)
}

func TestHealthReportsConfiguration(t *testing.T) {
	svc := NewAIService(&stubAIClient{}, &recordingAIRepo{})

	status := svc.Health(context.Background())
	assert.True(t, status.Configured)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "gemini-1.5-flash", status.Model)
}

func TestModelsCatalog(t *testing.T) {
	svc := NewAIService(&stubAIClient{}, &recordingAIRepo{})

	models := svc.Models()
	require.NotEmpty(t, models)
	for _, m := range models {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.DisplayName)
	}
}

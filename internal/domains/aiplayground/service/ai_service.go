package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/aiplayground"
	"portfolio-backend/internal/infrastructure/ai"
	"portfolio-backend/pkg/logger"
)

type aiService struct {
	client ai.Client
	repo   aiplayground.Repository
}

func NewAIService(client ai.Client, repo aiplayground.Repository) aiplayground.Service {
	return &aiService{client: client, repo: repo}
}

func (s *aiService) GenerateText(ctx context.Context, req aiplayground.TextRequest, clientIP string) (*aiplayground.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.generate(ctx, aiplayground.TypeText, req.Prompt, req.Prompt, clientIP)
}

func (s *aiService) DescribeImage(ctx context.Context, req aiplayground.ImageRequest, clientIP string) (*aiplayground.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Image generation is not available on the free tier, so ask the
	// text model for a detailed visual description instead.
	prompt := fmt.Sprintf(
		"Create a detailed visual description for an image of: %s. "+
			"Describe the composition, colors, lighting, and mood in a way "+
			"an artist could paint from.",
		req.Prompt,
	)

	return s.generate(ctx, aiplayground.TypeImage, req.Prompt, prompt, clientIP)
}

func (s *aiService) generate(ctx context.Context, usageType, originalPrompt, prompt, clientIP string) (*aiplayground.GenerateResponse, error) {
	result, err := s.client.GenerateText(ctx, prompt)

	entry := &aiplayground.UsageLog{
		ID:        uuid.New(),
		Type:      usageType,
		Prompt:    originalPrompt,
		IPAddress: clientIP,
		Success:   err == nil,
	}
	if result != nil {
		entry.Result = result.Text
		entry.Tokens = result.TotalTokens
	}
	s.logUsage(ctx, entry)

	if err != nil {
		return nil, err
	}

	return &aiplayground.GenerateResponse{
		Text:   result.Text,
		Model:  s.client.Model(),
		Tokens: result.TotalTokens,
	}, nil
}

// logUsage records the attempt; a failed write never fails the request.
func (s *aiService) logUsage(ctx context.Context, entry *aiplayground.UsageLog) {
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Warn("ai usage log write failed", map[string]interface{}{
			"type":  entry.Type,
			"error": err.Error(),
		})
	}
}

func (s *aiService) Models() []aiplayground.ModelInfo {
	return []aiplayground.ModelInfo{
		{
			Name:        "gemini-1.5-flash",
			DisplayName: "Gemini 1.5 Flash",
			Description: "Fast general-purpose text generation",
		},
		{
			Name:        "gemini-1.5-pro",
			DisplayName: "Gemini 1.5 Pro",
			Description: "Higher quality reasoning and longer context",
		},
	}
}

func (s *aiService) Health(ctx context.Context) aiplayground.HealthStatus {
	status := aiplayground.HealthStatus{
		Configured: s.client.Configured(),
		Model:      s.client.Model(),
		Status:     "ok",
	}
	if !status.Configured {
		status.Status = "not configured"
	}
	return status
}

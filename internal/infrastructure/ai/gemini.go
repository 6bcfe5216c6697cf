package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-backend/internal/config"
)

const httpTimeout = 60 * time.Second

// Provider errors mapped to HTTP statuses by the handler layer.
var (
	ErrNotConfigured  = errors.New("generative AI API key is not configured")
	ErrInvalidAPIKey  = errors.New("invalid generative AI API key")
	ErrQuotaExceeded  = errors.New("generative AI quota exceeded")
	ErrUnavailable    = errors.New("generative AI service unavailable")
	ErrEmptyCandidate = errors.New("generative AI returned no candidates")
)

// GenerateResult is the provider-neutral generation outcome.
type GenerateResult struct {
	Text        string
	TotalTokens int
}

// Client is the thin wrapper around the generative-AI provider.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (*GenerateResult, error)
	Configured() bool
	Model() string
}

// geminiClient calls the Gemini generateContent REST endpoint directly.
type geminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiClient(cfg *config.AIConfig) Client {
	return &geminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		http:    &http.Client{Timeout: httpTimeout},
	}
}

func (c *geminiClient) Configured() bool { return c.apiKey != "" }

func (c *geminiClient) Model() string { return c.model }

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (*GenerateResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("gemini encode: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("gemini read: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidAPIKey
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrQuotaExceeded
	case resp.StatusCode >= 500:
		return nil, ErrUnavailable
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		UsageMetadata struct {
			TotalTokenCount int `json:"totalTokenCount"`
		} `json:"usageMetadata"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("gemini decode: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyCandidate
	}

	return &GenerateResult{
		Text:        result.Candidates[0].Content.Parts[0].Text,
		TotalTokens: result.UsageMetadata.TotalTokenCount,
	}, nil
}

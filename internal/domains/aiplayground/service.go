package aiplayground

import "context"

// Service wraps the generative-AI provider. Every generation attempt is
// logged best-effort; a failed log write never fails the request.
type Service interface {
	GenerateText(ctx context.Context, req TextRequest, clientIP string) (*GenerateResponse, error)

	// DescribeImage returns a detailed visual description of the
	// requested image. Actual image generation is not available on the
	// free provider tier.
	DescribeImage(ctx context.Context, req ImageRequest, clientIP string) (*GenerateResponse, error)

	Models() []ModelInfo
	Health(ctx context.Context) HealthStatus
}

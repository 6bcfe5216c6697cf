package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/aiplayground"
	"portfolio-backend/internal/infrastructure/ai"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type AIHandler struct {
	service aiplayground.Service
}

func NewAIHandler(service aiplayground.Service) *AIHandler {
	return &AIHandler{service: service}
}

// GenerateText handles POST /api/ai/text (public, rate-limited)
func (h *AIHandler) GenerateText(c *gin.Context) {
	var req aiplayground.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.GenerateText(c.Request.Context(), req, clientIP(c))
	if err != nil {
		h.renderError(c, err, "Generate text failed")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DescribeImage handles POST /api/ai/image (public, rate-limited)
func (h *AIHandler) DescribeImage(c *gin.Context) {
	var req aiplayground.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.DescribeImage(c.Request.Context(), req, clientIP(c))
	if err != nil {
		h.renderError(c, err, "Describe image failed")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Models handles GET /api/ai/models
func (h *AIHandler) Models(c *gin.Context) {
	models := h.service.Models()
	response.SuccessWithCount(c, http.StatusOK, models, len(models))
}

// Health handles GET /api/ai/health
func (h *AIHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Health(c.Request.Context()))
}

func (h *AIHandler) renderError(c *gin.Context, err error, logMsg string) {
	switch {
	case isValidationError(err):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ai.ErrNotConfigured):
		response.Error(c, http.StatusServiceUnavailable, "AI service is not configured")
	case errors.Is(err, ai.ErrInvalidAPIKey):
		response.Unauthorized(c, "AI service rejected the configured API key")
	case errors.Is(err, ai.ErrQuotaExceeded):
		response.TooManyRequests(c, "AI quota exceeded, please try again later")
	case errors.Is(err, ai.ErrUnavailable), errors.Is(err, ai.ErrEmptyCandidate):
		response.Error(c, http.StatusServiceUnavailable, "AI service is temporarily unavailable")
	default:
		logger.Error(logMsg, err)
		response.InternalServerError(c)
	}
}

// clientIP prefers the value resolved by the ClientIP middleware and
// falls back to header extraction when the middleware is not mounted.
func clientIP(c *gin.Context) string {
	if ip := middleware.ClientIPFromContext(c.Request.Context()); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c)
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}

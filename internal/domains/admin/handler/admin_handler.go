package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/admin"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(service admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// authResponse carries the token pair at the top level of the envelope,
// matching the public API contract.
type authResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         admin.Profile `json:"user"`
}

// Register handles POST /api/admin/register (one-time use)
func (h *AdminHandler) Register(c *gin.Context) {
	var req admin.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide name, email, and password")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrRegistrationDisabled):
			response.Forbidden(c, "Admin registration is disabled")
		case errors.Is(err, admin.ErrAdminExists):
			response.BadRequest(c, "Admin already exists. Registration is not allowed.")
		case errors.Is(err, admin.ErrEmailExists):
			response.BadRequest(c, "Email already registered")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Register failed", err)
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Success:      true,
		Message:      "Admin registered successfully! IMPORTANT: Disable registration route now.",
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	})
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide email and password")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid credentials")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Login failed", err)
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Success:      true,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	})
}

// Refresh handles POST /api/admin/refresh
func (h *AdminHandler) Refresh(c *gin.Context) {
	var req admin.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.BadRequest(c, "Refresh token is required")
		return
	}

	accessToken, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidRefreshToken) {
			response.Unauthorized(c, "Invalid or expired refresh token")
			return
		}
		logger.Error("Refresh failed", err)
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"accessToken": accessToken,
	})
}

// Logout handles POST /api/admin/logout (auth required)
func (h *AdminHandler) Logout(c *gin.Context) {
	adminID, ok := middleware.AdminIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Not authorized")
		return
	}

	if err := h.service.Logout(c.Request.Context(), adminID); err != nil && !errors.Is(err, admin.ErrAdminNotFound) {
		logger.Error("Logout failed", err)
		response.InternalServerError(c)
		return
	}

	response.Message(c, http.StatusOK, "Logged out successfully")
}

// Me handles GET /api/admin/me (auth required)
func (h *AdminHandler) Me(c *gin.Context) {
	adminID, ok := middleware.AdminIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Not authorized")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error("Me failed", err)
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    profile,
	})
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}

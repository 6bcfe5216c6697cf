package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact (public)
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	clientIP := middleware.ClientIPFromContext(c.Request.Context())
	if clientIP == "" {
		clientIP = utils.ExtractClientIP(c)
	}

	m, err := h.service.Submit(c.Request.Context(), req, clientIP)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Submit contact failed", err)
		response.InternalServerError(c)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated,
		"Thank you for your message! I will get back to you soon.", m)
}

// List handles GET /api/contact (admin)
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("List contacts failed", err)
		response.InternalServerError(c)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, messages, len(messages))
}

// MarkRead handles PATCH /api/contact/:id (admin)
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	m, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, contact.ErrMessageNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		logger.Error("Mark contact read failed", err)
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, m)
}

// Delete handles DELETE /api/contact/:id (admin)
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, contact.ErrMessageNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		logger.Error("Delete contact failed", err)
		response.InternalServerError(c)
		return
	}

	response.Message(c, http.StatusOK, "Message deleted successfully")
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/posts (public, published only)
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		logger.Error("List posts failed", err)
		response.InternalServerError(c)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, posts, len(posts))
}

// ListAll handles GET /api/posts/all (admin, drafts included)
func (h *BlogHandler) ListAll(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("List all posts failed", err)
		response.InternalServerError(c)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, posts, len(posts))
}

// GetBySlug handles GET /api/posts/:slug (public). Bumps the view
// counter on each successful read.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		logger.Error("Get post failed", err)
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Get handles GET /api/posts/id/:id (admin, drafts included)
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		logger.Error("Get post failed", err)
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Create handles POST /api/posts (admin)
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blog.ErrSlugExists):
			response.Conflict(c, "A post with this title already exists")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Create post failed", err)
			response.InternalServerError(c)
		}
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// Update handles PUT /api/posts/:id (admin)
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	var req blog.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, blog.ErrPostNotFound):
			response.NotFound(c, "Post not found")
		case errors.Is(err, blog.ErrSlugExists):
			response.Conflict(c, "A post with this title already exists")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Update post failed", err)
			response.InternalServerError(c)
		}
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id (admin)
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		logger.Error("Delete post failed", err)
		response.InternalServerError(c)
		return
	}

	response.Message(c, http.StatusOK, "Post deleted successfully")
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}

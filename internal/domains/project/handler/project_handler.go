package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/projects (public)
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("List projects failed", err)
		response.InternalServerError(c)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, projects, len(projects))
}

// Get handles GET /api/projects/:id (public)
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		logger.Error("Get project failed", err)
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Create handles POST /api/projects (admin)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req project.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrSlugExists):
			response.Conflict(c, "A project with this title already exists")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Create project failed", err)
			response.InternalServerError(c)
		}
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// Update handles PUT /api/projects/:id (admin)
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	var req project.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			response.NotFound(c, "Project not found")
		case errors.Is(err, project.ErrSlugExists):
			response.Conflict(c, "A project with this title already exists")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Update project failed", err)
			response.InternalServerError(c)
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Delete handles DELETE /api/projects/:id (admin)
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		logger.Error("Delete project failed", err)
		response.InternalServerError(c)
		return
	}

	response.Message(c, http.StatusOK, "Project deleted successfully")
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}

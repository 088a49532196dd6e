package handlers

import (
	"errors"
	"net/http"

	"peticiona-backend/models"
	"peticiona-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles HTTP requests for style templates
type TemplateHandler struct {
	templateService *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// CreateTemplateRequest represents the request body for creating a template
type CreateTemplateRequest struct {
	UserID    string               `json:"user_id" binding:"required"`
	Name      string               `json:"name" binding:"required"`
	Settings  models.StyleSettings `json:"settings"`
	IsDefault bool                 `json:"is_default"`
}

// CreateTemplate handles POST /api/templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user_id format")
		return
	}

	tmpl, err := h.templateService.CreateTemplate(c.Request.Context(), service.CreateTemplateRequest{
		UserID:    userID,
		Name:      req.Name,
		Settings:  req.Settings,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		h.handleError(c, err, "CREATE_FAILED")
		return
	}

	respondData(c, http.StatusCreated, tmpl)
}

// GetTemplate handles GET /api/templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "template")
	if !ok {
		return
	}

	tmpl, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "RETRIEVAL_FAILED")
		return
	}

	respondData(c, http.StatusOK, tmpl)
}

// UpdateTemplateRequest represents the request body for updating a template
type UpdateTemplateRequest struct {
	Name      *string               `json:"name"`
	Settings  *models.StyleSettings `json:"settings"`
	IsDefault *bool                 `json:"is_default"`
}

// UpdateTemplate handles PUT /api/templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "template")
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	tmpl, err := h.templateService.UpdateTemplate(c.Request.Context(), service.UpdateTemplateRequest{
		ID:        id,
		Name:      req.Name,
		Settings:  req.Settings,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		h.handleError(c, err, "UPDATE_FAILED")
		return
	}

	respondData(c, http.StatusOK, tmpl)
}

// ListTemplates handles GET /api/users/:id/templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err, "LIST_FAILED")
		return
	}

	respondData(c, http.StatusOK, templates)
}

func (h *TemplateHandler) handleError(c *gin.Context, err error, code string) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
	case errors.Is(err, service.ErrInvalidTemplate):
		respondError(c, http.StatusBadRequest, "INVALID_TEMPLATE", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, code, err.Error())
	}
}

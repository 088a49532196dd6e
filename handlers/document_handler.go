package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"peticiona-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for stored petitions
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// CreateDocumentRequest represents the request body for creating a document
type CreateDocumentRequest struct {
	UserID     string     `json:"user_id" binding:"required"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	TemplateID *uuid.UUID `json:"template_id"`
}

// CreateDocument handles POST /api/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user_id format")
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), service.CreateDocumentRequest{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		handleDocumentError(c, err, "CREATE_FAILED")
		return
	}

	respondData(c, http.StatusCreated, doc)
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), id)
	if err != nil {
		handleDocumentError(c, err, "RETRIEVAL_FAILED")
		return
	}

	respondData(c, http.StatusOK, doc)
}

// UpdateDocumentRequest represents the request body for updating a document
type UpdateDocumentRequest struct {
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	TemplateID *uuid.UUID `json:"template_id"`
}

// UpdateDocument handles PUT /api/documents/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), service.UpdateDocumentRequest{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		handleDocumentError(c, err, "UPDATE_FAILED")
		return
	}

	respondData(c, http.StatusOK, doc)
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), id); err != nil {
		handleDocumentError(c, err, "DELETE_FAILED")
		return
	}

	respondData(c, http.StatusOK, gin.H{"id": id})
}

// ListDocuments handles GET /api/users/:id/documents?limit=&offset=
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), service.ListDocumentsRequest{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleDocumentError(c, err, "LIST_FAILED")
		return
	}

	respondData(c, http.StatusOK, docs)
}

// GetFormattedDocument handles GET /api/documents/:id/formatted
func (h *DocumentHandler) GetFormattedDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	result, err := h.documentService.FormatDocument(c.Request.Context(), id)
	if err != nil {
		handleDocumentError(c, err, "FORMAT_FAILED")
		return
	}

	respondData(c, http.StatusOK, result)
}

func handleDocumentError(c *gin.Context, err error, code string) {
	switch {
	case errors.Is(err, service.ErrDocumentNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
	case errors.Is(err, service.ErrFileNotFound):
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "Document has no stored file")
	case errors.Is(err, service.ErrEmptyContent):
		respondError(c, http.StatusBadRequest, "EMPTY_CONTENT", "Document content is empty")
	case errors.Is(err, service.ErrUnsupportedFileType):
		respondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE", err.Error())
	case errors.Is(err, service.ErrFileTooLarge):
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, code, err.Error())
	}
}

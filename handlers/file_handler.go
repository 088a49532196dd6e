package handlers

import (
	"fmt"
	"net/http"

	"peticiona-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles raw draft uploads and downloads
type FileHandler struct {
	documentService *service.DocumentService
	maxFileSize     int64
}

// NewFileHandler creates a new file handler
func NewFileHandler(documentService *service.DocumentService, maxFileSize int64) *FileHandler {
	return &FileHandler{
		documentService: documentService,
		maxFileSize:     maxFileSize,
	}
}

// UploadDocument handles POST /api/documents/upload (multipart: file, user_id,
// optional title and template_id)
func (h *FileHandler) UploadDocument(c *gin.Context) {
	userID, err := uuid.Parse(c.PostForm("user_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_USER_ID", "A valid user_id is required")
		return
	}

	var templateID *uuid.UUID
	if raw := c.PostForm("template_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_TEMPLATE_ID", "Invalid template_id format")
			return
		}
		templateID = &id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}

	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", err.Error())
		return
	}
	defer file.Close()

	doc, err := h.documentService.UploadDocument(c.Request.Context(), service.UploadDocumentRequest{
		UserID:     userID,
		Title:      c.PostForm("title"),
		Filename:   fileHeader.Filename,
		Data:       file,
		TemplateID: templateID,
	})
	if err != nil {
		handleDocumentError(c, err, "UPLOAD_FAILED")
		return
	}

	respondData(c, http.StatusCreated, doc)
}

// GetDocumentFile handles GET /api/documents/:id/file
func (h *FileHandler) GetDocumentFile(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	file, reader, err := h.documentService.DownloadDocumentFile(c.Request.Context(), id)
	if err != nil {
		handleDocumentError(c, err, "DOWNLOAD_FAILED")
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Filename),
	})
}

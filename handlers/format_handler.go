package handlers

import (
	"errors"
	"net/http"

	"peticiona-backend/service"

	"github.com/gin-gonic/gin"
)

// FormatHandler handles HTTP requests for stateless formatting
type FormatHandler struct {
	formattingService *service.FormattingService
}

// NewFormatHandler creates a new format handler
func NewFormatHandler(formattingService *service.FormattingService) *FormatHandler {
	return &FormatHandler{formattingService: formattingService}
}

// Format handles POST /api/format
func (h *FormatHandler) Format(c *gin.Context) {
	var req service.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.formattingService.Format(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FORMAT_FAILED", err.Error())
		return
	}

	respondData(c, http.StatusOK, result)
}

// AnalyzeRequest represents the request body for analyzing a petition
type AnalyzeRequest struct {
	Content string `json:"content"`
}

// Analyze handles POST /api/analyze
func (h *FormatHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report := h.formattingService.Analyze(c.Request.Context(), req.Content)
	respondData(c, http.StatusOK, gin.H{
		"report":   report,
		"complete": report.Complete(),
	})
}

// FormatBatchRequest represents the request body for batch formatting
type FormatBatchRequest struct {
	Documents []service.FormatRequest `json:"documents" binding:"required"`
}

// FormatBatch handles POST /api/format/batch
func (h *FormatHandler) FormatBatch(c *gin.Context) {
	var req FormatBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	results, err := h.formattingService.FormatBatch(c.Request.Context(), req.Documents)
	if err != nil {
		if errors.Is(err, service.ErrBatchTooLarge) {
			respondError(c, http.StatusBadRequest, "BATCH_TOO_LARGE", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "FORMAT_FAILED", err.Error())
		return
	}

	respondData(c, http.StatusOK, results)
}

// Preview handles POST /api/preview and returns an HTML fragment
func (h *FormatHandler) Preview(c *gin.Context) {
	var req service.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.formattingService.PreviewHTML(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "PREVIEW_FAILED", err.Error())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"peticiona-backend/models"
	"peticiona-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftHandler handles HTTP requests for AI drafting jobs
type DraftHandler struct {
	draftService *service.DraftService
	logger       *zap.Logger

	// runJob executes a created job; it defaults to a detached goroutine
	runJob func(jobID uuid.UUID)
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService, logger *zap.Logger) *DraftHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &DraftHandler{
		draftService: draftService,
		logger:       logger,
	}
	h.runJob = func(jobID uuid.UUID) {
		go h.process(jobID)
	}
	return h
}

// GenerateDraftRequest represents the request body for drafting a petition
type GenerateDraftRequest struct {
	UserID string `json:"user_id" binding:"required"`
	models.DraftInput
}

// GenerateDraft handles POST /api/drafts
func (h *DraftHandler) GenerateDraft(c *gin.Context) {
	var req GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user_id format")
		return
	}

	result, err := h.draftService.GenerateDraft(c.Request.Context(), service.GenerateDraftRequest{
		UserID: userID,
		Input:  req.DraftInput,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingRequiredData) {
			respondError(c, http.StatusBadRequest, "MISSING_REQUIRED_DATA", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "GENERATION_FAILED", err.Error())
		return
	}

	h.runJob(result.JobID)

	respondData(c, http.StatusAccepted, gin.H{
		"job_id":  result.JobID,
		"status":  models.JobStatusPending,
		"message": "Drafting job created. Poll /api/jobs/:id for updates.",
	})
}

// GetJobStatus handles GET /api/jobs/:id
func (h *DraftHandler) GetJobStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.draftService.GetJobStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Generation job not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "RETRIEVAL_FAILED", err.Error())
		return
	}

	respondData(c, http.StatusOK, job)
}

// process runs a job outside the request lifetime; failures are stored on the job
func (h *DraftHandler) process(jobID uuid.UUID) {
	if err := h.draftService.ProcessDraft(context.Background(), jobID); err != nil {
		h.logger.Error("drafting job failed", zap.String("job_id", jobID.String()), zap.Error(err))
	}
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationJobStatus represents the status of a drafting job
type GenerationJobStatus string

const (
	JobStatusPending    GenerationJobStatus = "pending"
	JobStatusInProgress GenerationJobStatus = "in_progress"
	JobStatusCompleted  GenerationJobStatus = "completed"
	JobStatusFailed     GenerationJobStatus = "failed"
)

// Step statuses
const (
	StepPending    = "pending"
	StepInProgress = "in_progress"
	StepCompleted  = "completed"
	StepFailed     = "failed"
)

// GenerationStep represents a step in the drafting process
type GenerationStep struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

// GenerationSteps represents a list of generation steps
type GenerationSteps []GenerationStep

// Value implements driver.Valuer for JSONB
func (g GenerationSteps) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements sql.Scanner for JSONB
func (g *GenerationSteps) Scan(value interface{}) error {
	bytes, ok := jsonBytes(value)
	if !ok || len(bytes) == 0 {
		*g = make(GenerationSteps, 0)
		return nil
	}
	return json.Unmarshal(bytes, g)
}

// DraftInput holds the case data a drafting job writes the petition from
type DraftInput struct {
	ActionType          string     `json:"action_type"`
	Court               string     `json:"court,omitempty"`
	Author              string     `json:"author"`
	AuthorQualification string     `json:"author_qualification,omitempty"`
	Defendant           string     `json:"defendant"`
	Facts               string     `json:"facts"`
	LegalBasis          string     `json:"legal_basis,omitempty"`
	Requests            []string   `json:"requests,omitempty"`
	LawyerName          string     `json:"lawyer_name,omitempty"`
	OABNumber           string     `json:"oab_number,omitempty"`
	TemplateID          *uuid.UUID `json:"template_id,omitempty"`
}

// Value implements driver.Valuer for JSONB
func (d DraftInput) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *DraftInput) Scan(value interface{}) error {
	bytes, ok := jsonBytes(value)
	if !ok || len(bytes) == 0 {
		*d = DraftInput{}
		return nil
	}
	return json.Unmarshal(bytes, d)
}

// GenerationJob represents an AI drafting job
type GenerationJob struct {
	ID           uuid.UUID           `json:"id"`
	UserID       uuid.UUID           `json:"user_id"`
	DocumentID   *uuid.UUID          `json:"document_id,omitempty"` // set once the draft is stored
	Status       GenerationJobStatus `json:"status"`
	CurrentStep  *string             `json:"current_step,omitempty"`
	Steps        GenerationSteps     `json:"steps"`
	Input        DraftInput          `json:"input"`
	Report       *AnalysisReport     `json:"report,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}

// jsonBytes extracts the raw bytes pgx hands to a JSONB scanner
func jsonBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}

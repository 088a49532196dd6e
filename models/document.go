package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a stored petition draft
type Document struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	FileID     *uuid.UUID `json:"file_id,omitempty"` // original upload, if any
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

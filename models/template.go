package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateSettings is a named set of style settings owned by a user
type TemplateSettings struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Name      string        `json:"name"`
	Settings  StyleSettings `json:"settings"`
	IsDefault bool          `json:"is_default"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

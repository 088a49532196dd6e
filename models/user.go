package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a lawyer account that owns templates and documents
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	OABNumber    *string   `json:"oab_number,omitempty"` // e.g. "OAB/SP 123.456"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

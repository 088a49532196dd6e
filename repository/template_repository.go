package repository

import (
	"context"

	"peticiona-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TemplateRepository handles database operations for style templates
type TemplateRepository struct {
	db *pgxpool.Pool
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = `id, user_id, name, settings, is_default, created_at, updated_at`

// Create creates a new template
func (r *TemplateRepository) Create(ctx context.Context, tmpl *models.TemplateSettings) error {
	query := `
		INSERT INTO templates (user_id, name, settings, is_default)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		tmpl.UserID,
		tmpl.Name,
		tmpl.Settings,
		tmpl.IsDefault,
	).Scan(&tmpl.ID, &tmpl.CreatedAt, &tmpl.UpdatedAt)
}

// GetByID retrieves a template by ID. Returns pgx.ErrNoRows when absent.
func (r *TemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TemplateSettings, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = $1`

	tmpl, err := scanTemplate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// Update updates a template's name, settings and default flag
func (r *TemplateRepository) Update(ctx context.Context, tmpl *models.TemplateSettings) error {
	query := `
		UPDATE templates SET
			name = $2,
			settings = $3,
			is_default = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRow(
		ctx, query,
		tmpl.ID,
		tmpl.Name,
		tmpl.Settings,
		tmpl.IsDefault,
	).Scan(&tmpl.UpdatedAt)
}

// ListByUserID retrieves all templates for a user, default template first
func (r *TemplateRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.TemplateSettings, error) {
	query := `SELECT ` + templateColumns + `
		FROM templates
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.TemplateSettings
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	return templates, rows.Err()
}

func scanTemplate(row pgx.Row) (*models.TemplateSettings, error) {
	tmpl := &models.TemplateSettings{}
	err := row.Scan(
		&tmpl.ID,
		&tmpl.UserID,
		&tmpl.Name,
		&tmpl.Settings,
		&tmpl.IsDefault,
		&tmpl.CreatedAt,
		&tmpl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

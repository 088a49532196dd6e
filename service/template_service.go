package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"peticiona-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TemplateRepository persists style templates
type TemplateRepository interface {
	TemplateLookup
	Create(ctx context.Context, tmpl *models.TemplateSettings) error
	Update(ctx context.Context, tmpl *models.TemplateSettings) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.TemplateSettings, error)
}

// TemplateService handles business logic for style templates
type TemplateService struct {
	templateRepo TemplateRepository
}

// TemplateServiceOption is a functional option for TemplateService
type TemplateServiceOption func(*TemplateService)

// WithTemplateRepository sets the template repository
func WithTemplateRepository(repo TemplateRepository) TemplateServiceOption {
	return func(s *TemplateService) {
		s.templateRepo = repo
	}
}

// NewTemplateService creates a new template service
func NewTemplateService(opts ...TemplateServiceOption) *TemplateService {
	s := &TemplateService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTemplateRequest represents a request to create a template
type CreateTemplateRequest struct {
	UserID    uuid.UUID
	Name      string
	Settings  models.StyleSettings
	IsDefault bool
}

// CreateTemplate validates and stores a new template. Missing settings take defaults.
func (s *TemplateService) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*models.TemplateSettings, error) {
	if s.templateRepo == nil {
		return nil, errors.New("template repository not set")
	}

	if err := req.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	tmpl := &models.TemplateSettings{
		UserID:    req.UserID,
		Name:      strings.TrimSpace(req.Name),
		Settings:  req.Settings.WithDefaults(),
		IsDefault: req.IsDefault,
	}
	if err := validateTemplate(tmpl); err != nil {
		return nil, err
	}

	if err := s.templateRepo.Create(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tmpl, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*models.TemplateSettings, error) {
	if s.templateRepo == nil {
		return nil, errors.New("template repository not set")
	}

	tmpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return tmpl, nil
}

// UpdateTemplateRequest represents a partial template update. Nil fields are kept.
type UpdateTemplateRequest struct {
	ID        uuid.UUID
	Name      *string
	Settings  *models.StyleSettings
	IsDefault *bool
}

// UpdateTemplate applies the provided fields to an existing template
func (s *TemplateService) UpdateTemplate(ctx context.Context, req UpdateTemplateRequest) (*models.TemplateSettings, error) {
	tmpl, err := s.GetTemplate(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tmpl.Name = strings.TrimSpace(*req.Name)
	}
	if req.Settings != nil {
		if err := req.Settings.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		}
		tmpl.Settings = req.Settings.WithDefaults()
	}
	if req.IsDefault != nil {
		tmpl.IsDefault = *req.IsDefault
	}
	if err := validateTemplate(tmpl); err != nil {
		return nil, err
	}

	if err := s.templateRepo.Update(ctx, tmpl); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return tmpl, nil
}

// ListTemplates lists a user's templates
func (s *TemplateService) ListTemplates(ctx context.Context, userID uuid.UUID) ([]*models.TemplateSettings, error) {
	if s.templateRepo == nil {
		return nil, errors.New("template repository not set")
	}

	templates, err := s.templateRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	if templates == nil {
		templates = []*models.TemplateSettings{}
	}
	return templates, nil
}

func validateTemplate(tmpl *models.TemplateSettings) error {
	if tmpl.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if !tmpl.Settings.ChapterNumbering.Valid() {
		return fmt.Errorf("%w: unknown chapter numbering %q", ErrInvalidTemplate, tmpl.Settings.ChapterNumbering)
	}
	return nil
}

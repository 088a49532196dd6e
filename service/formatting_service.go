package service

import (
	"context"
	"errors"
	"fmt"

	"peticiona-backend/formatter"
	"peticiona-backend/models"
	"peticiona-backend/renderer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxBatchSize = 50
	batchConcurrency    = 8
)

// TemplateLookup resolves a template ID to its style settings
type TemplateLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.TemplateSettings, error)
}

// FormattingService formats and analyzes petition text
type FormattingService struct {
	templates    TemplateLookup
	cache        *formatter.Cache
	logger       *zap.Logger
	maxBatchSize int
}

// FormattingServiceOption is a functional option for FormattingService
type FormattingServiceOption func(*FormattingService)

// FormattingWithTemplates sets the template lookup used to resolve TemplateID
func FormattingWithTemplates(templates TemplateLookup) FormattingServiceOption {
	return func(s *FormattingService) {
		s.templates = templates
	}
}

// FormattingWithCache sets the memoizing cache. A nil cache formats directly.
func FormattingWithCache(cache *formatter.Cache) FormattingServiceOption {
	return func(s *FormattingService) {
		s.cache = cache
	}
}

// FormattingWithLogger sets the logger
func FormattingWithLogger(logger *zap.Logger) FormattingServiceOption {
	return func(s *FormattingService) {
		s.logger = logger
	}
}

// FormattingWithMaxBatchSize sets the largest batch FormatBatch accepts
func FormattingWithMaxBatchSize(n int) FormattingServiceOption {
	return func(s *FormattingService) {
		s.maxBatchSize = n
	}
}

// NewFormattingService creates a new formatting service
func NewFormattingService(opts ...FormattingServiceOption) *FormattingService {
	s := &FormattingService{
		logger:       zap.NewNop(),
		maxBatchSize: defaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FormatRequest represents a request to format petition text.
// Settings wins over TemplateID; with neither, defaults apply.
type FormatRequest struct {
	Content    string                `json:"content"`
	TemplateID *uuid.UUID            `json:"template_id,omitempty"`
	Settings   *models.StyleSettings `json:"settings,omitempty"`
}

// FormatResult represents the formatted document
type FormatResult struct {
	Blocks   []models.Block        `json:"blocks"`
	Report   models.AnalysisReport `json:"report"`
	Settings models.StyleSettings  `json:"settings"`
}

// Format structures the content into styled blocks and analyzes it.
// Content never makes formatting fail.
func (s *FormattingService) Format(ctx context.Context, req FormatRequest) (*FormatResult, error) {
	settings := s.resolveSettings(ctx, req)

	blocks := s.cache.Format(req.Content, settings)
	if blocks == nil {
		blocks = []models.Block{}
	}

	return &FormatResult{
		Blocks:   blocks,
		Report:   s.cache.Analyze(req.Content),
		Settings: settings,
	}, nil
}

// Analyze reports the structural completeness of the content
func (s *FormattingService) Analyze(ctx context.Context, content string) models.AnalysisReport {
	return s.cache.Analyze(content)
}

// FormatBatch formats several documents concurrently. Results keep input order.
func (s *FormattingService) FormatBatch(ctx context.Context, reqs []FormatRequest) ([]*FormatResult, error) {
	if len(reqs) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d documents, limit %d", ErrBatchTooLarge, len(reqs), s.maxBatchSize)
	}

	results := make([]*FormatResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.Format(gctx, req)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("batch formatted",
		zap.Int("documents", len(reqs)),
		zap.Any("cache", s.cache.Stats()),
	)

	return results, nil
}

// PreviewHTML formats the content and renders it as an HTML page fragment
func (s *FormattingService) PreviewHTML(ctx context.Context, req FormatRequest) (string, error) {
	result, err := s.Format(ctx, req)
	if err != nil {
		return "", err
	}

	out, err := renderer.RenderHTML(result.Blocks, result.Settings)
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return out, nil
}

// resolveSettings picks explicit settings, then the template, then defaults.
// A failed template lookup is logged and falls back to defaults.
func (s *FormattingService) resolveSettings(ctx context.Context, req FormatRequest) models.StyleSettings {
	if req.Settings != nil {
		return req.Settings.WithDefaults()
	}
	if req.TemplateID == nil {
		return models.DefaultStyleSettings()
	}
	if s.templates == nil {
		s.logger.Warn("no template store configured, using defaults",
			zap.String("template_id", req.TemplateID.String()))
		return models.DefaultStyleSettings()
	}

	tmpl, err := s.templates.GetByID(ctx, *req.TemplateID)
	if err != nil {
		fields := []zap.Field{zap.String("template_id", req.TemplateID.String())}
		if !isNotFound(err) {
			fields = append(fields, zap.Error(err))
		}
		s.logger.Warn("template not found, using defaults", fields...)
		return models.DefaultStyleSettings()
	}

	return tmpl.Settings.WithDefaults()
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrTemplateNotFound)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"peticiona-backend/models"
	"peticiona-backend/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	defaultMaxUploadBytes = 5 * 1024 * 1024
	untitledDocument      = "Petição sem título"
)

var allowedDraftExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// DocumentRepository persists petition documents
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileRepository persists uploaded draft file records
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentService handles business logic for stored petitions
type DocumentService struct {
	documentRepo   DocumentRepository
	fileRepo       FileRepository
	storage        storage.Storage
	formatting     *FormattingService
	logger         *zap.Logger
	maxUploadBytes int64
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocumentWithRepository sets the document repository
func DocumentWithRepository(repo DocumentRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.documentRepo = repo
	}
}

// DocumentWithFileRepository sets the file repository
func DocumentWithFileRepository(repo FileRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.fileRepo = repo
	}
}

// DocumentWithStorage sets the raw file storage
func DocumentWithStorage(store storage.Storage) DocumentServiceOption {
	return func(s *DocumentService) {
		s.storage = store
	}
}

// DocumentWithFormattingService sets the formatting service
func DocumentWithFormattingService(formatting *FormattingService) DocumentServiceOption {
	return func(s *DocumentService) {
		s.formatting = formatting
	}
}

// DocumentWithLogger sets the logger
func DocumentWithLogger(logger *zap.Logger) DocumentServiceOption {
	return func(s *DocumentService) {
		s.logger = logger
	}
}

// DocumentWithMaxUploadBytes sets the upload size limit
func DocumentWithMaxUploadBytes(n int64) DocumentServiceOption {
	return func(s *DocumentService) {
		s.maxUploadBytes = n
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{
		logger:         zap.NewNop(),
		maxUploadBytes: defaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.formatting == nil {
		s.formatting = NewFormattingService(FormattingWithLogger(s.logger))
	}
	return s
}

// CreateDocumentRequest represents a request to create a document
type CreateDocumentRequest struct {
	UserID     uuid.UUID
	Title      string
	Content    string
	TemplateID *uuid.UUID
}

// CreateDocument stores a new document
func (s *DocumentService) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	doc := &models.Document{
		UserID:     req.UserID,
		Title:      documentTitle(req.Title),
		Content:    req.Content,
		TemplateID: req.TemplateID,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// GetDocument retrieves a document by ID
func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

// UpdateDocumentRequest represents a partial document update. Nil fields are kept.
type UpdateDocumentRequest struct {
	ID         uuid.UUID
	Title      *string
	Content    *string
	TemplateID *uuid.UUID
}

// UpdateDocument applies the provided fields to an existing document
func (s *DocumentService) UpdateDocument(ctx context.Context, req UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.GetDocument(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		doc.Title = documentTitle(*req.Title)
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrEmptyContent
		}
		doc.Content = *req.Content
	}
	if req.TemplateID != nil {
		doc.TemplateID = req.TemplateID
	}

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

// ListDocumentsRequest represents a request to list a user's documents
type ListDocumentsRequest struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// ListDocuments lists a page of a user's documents
func (s *DocumentService) ListDocuments(ctx context.Context, req ListDocumentsRequest) ([]*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	docs, err := s.documentRepo.ListByUserID(ctx, req.UserID, req.Limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	return docs, nil
}

// DeleteDocument removes a document and its uploaded file, if any.
// A file that cannot be removed from storage is logged and left behind.
func (s *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if doc.FileID != nil {
		s.removeFile(ctx, *doc.FileID)
	}
	return nil
}

// UploadDocumentRequest represents a raw draft upload
type UploadDocumentRequest struct {
	UserID     uuid.UUID
	Title      string
	Filename   string
	Data       io.Reader
	TemplateID *uuid.UUID
}

// UploadDocument keeps the original file in storage and creates a document
// from its text
func (s *DocumentService) UploadDocument(ctx context.Context, req UploadDocumentRequest) (*models.Document, error) {
	if s.documentRepo == nil || s.fileRepo == nil || s.storage == nil {
		return nil, errors.New("document service not fully configured for uploads")
	}

	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !allowedDraftExtensions[ext] {
		return nil, fmt.Errorf("%w: %q (allowed: .txt, .md, .markdown)", ErrUnsupportedFileType, ext)
	}

	data, err := io.ReadAll(io.LimitReader(req.Data, s.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxUploadBytes)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: file is not UTF-8 text", ErrUnsupportedFileType)
	}

	title := req.Title
	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(filepath.Base(req.Filename), filepath.Ext(req.Filename))
	}

	doc, err := s.CreateDocument(ctx, CreateDocumentRequest{
		UserID:     req.UserID,
		Title:      title,
		Content:    string(data),
		TemplateID: req.TemplateID,
	})
	if err != nil {
		return nil, err
	}

	fileID := uuid.New()
	storagePath, err := s.storage.Upload(ctx, fileID, req.Filename, bytes.NewReader(data))
	if err != nil {
		s.rollbackDocument(ctx, doc.ID)
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	file := &models.File{
		ID:          fileID,
		UserID:      req.UserID,
		DocumentID:  &doc.ID,
		Filename:    req.Filename,
		MimeType:    storage.ContentType(req.Filename),
		Size:        int64(len(data)),
		StoragePath: storagePath,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		s.deleteStored(ctx, storagePath)
		s.rollbackDocument(ctx, doc.ID)
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	doc.FileID = &file.ID
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to link file to document: %w", err)
	}
	return doc, nil
}

// DownloadDocumentFile opens the original upload of a document.
// The caller closes the reader.
func (s *DocumentService) DownloadDocumentFile(ctx context.Context, id uuid.UUID) (*models.File, io.ReadCloser, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if doc.FileID == nil || s.fileRepo == nil || s.storage == nil {
		return nil, nil, ErrFileNotFound
	}

	file, err := s.fileRepo.GetByID(ctx, *doc.FileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to load file record: %w", err)
	}

	reader, err := s.storage.Download(ctx, file.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to download file: %w", err)
	}
	return file, reader, nil
}

// FormatDocument formats a stored document with its template
func (s *DocumentService) FormatDocument(ctx context.Context, id uuid.UUID) (*FormatResult, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.formatting.Format(ctx, FormatRequest{
		Content:    doc.Content,
		TemplateID: doc.TemplateID,
	})
}

func (s *DocumentService) removeFile(ctx context.Context, fileID uuid.UUID) {
	if s.fileRepo == nil {
		return
	}
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		s.logger.Warn("failed to load file record for cleanup",
			zap.String("file_id", fileID.String()), zap.Error(err))
		return
	}
	if err := s.fileRepo.Delete(ctx, fileID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Warn("failed to delete file record",
			zap.String("file_id", fileID.String()), zap.Error(err))
	}
	s.deleteStored(ctx, file.StoragePath)
}

func (s *DocumentService) deleteStored(ctx context.Context, storagePath string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, storagePath); err != nil {
		s.logger.Warn("failed to delete stored file",
			zap.String("storage_path", storagePath), zap.Error(err))
	}
}

func (s *DocumentService) rollbackDocument(ctx context.Context, id uuid.UUID) {
	if err := s.documentRepo.Delete(ctx, id); err != nil {
		s.logger.Warn("failed to roll back document",
			zap.String("document_id", id.String()), zap.Error(err))
	}
}

func documentTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return untitledDocument
	}
	return title
}

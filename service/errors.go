package service

import "errors"

var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrInvalidTemplate     = errors.New("invalid template")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrFileNotFound        = errors.New("document has no stored file")
	ErrEmptyContent        = errors.New("document content is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds upload limit")
	ErrBatchTooLarge       = errors.New("batch exceeds maximum size")
	ErrMissingRequiredData = errors.New("missing required data for drafting")
	ErrJobNotFound         = errors.New("generation job not found")
	ErrGenerationFailed    = errors.New("failed to generate content")
)

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ChapterNumbering represents the numbering policy applied to section headings
type ChapterNumbering string

const (
	NumberingNone    ChapterNumbering = "none"
	NumberingInteger ChapterNumbering = "integer"
	NumberingUnit    ChapterNumbering = "unit"
)

// Valid reports whether the policy is one of the known values
func (n ChapterNumbering) Valid() bool {
	switch n {
	case NumberingNone, NumberingInteger, NumberingUnit:
		return true
	default:
		return false
	}
}

// Prefixed reports whether headings get a numeric prefix under this policy.
// Unknown or empty policies never prefix.
func (n ChapterNumbering) Prefixed() bool {
	return n == NumberingInteger || n == NumberingUnit
}

// StyleSettings holds the template settings consumed by the formatter.
// The formatter only reads them.
type StyleSettings struct {
	DefaultFont           string           `json:"default_font" yaml:"default_font"`
	FirstLineIndent       string           `json:"first_line_indent" yaml:"first_line_indent"`
	JurisprudenceIndent   string           `json:"jurisprudence_indent" yaml:"jurisprudence_indent"`
	JurisprudenceFontSize float64          `json:"jurisprudence_font_size" yaml:"jurisprudence_font_size"`
	ChapterNumbering      ChapterNumbering `json:"chapter_numbering" yaml:"chapter_numbering"`
	Margin                string           `json:"margin" yaml:"margin"`
	LineHeight            float64          `json:"line_height" yaml:"line_height"`
	FontSize              float64          `json:"font_size" yaml:"font_size"`
}

// ErrUnsafeStyleValue is returned for a setting that cannot be placed in a
// single CSS declaration.
var ErrUnsafeStyleValue = errors.New("unsafe style value")

// cssUnsafeChars end a declaration or open a new rule. Quotes and angle
// brackets are escaped when the attribute is rendered.
const cssUnsafeChars = ";{}\\\n\r"

// SafeCSSValue reports whether v can be used as a single CSS property value
func SafeCSSValue(v string) bool {
	return !strings.ContainsAny(v, cssUnsafeChars)
}

// Validate rejects free-form settings that would inject extra CSS
func (s StyleSettings) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"default_font", s.DefaultFont},
		{"first_line_indent", s.FirstLineIndent},
		{"jurisprudence_indent", s.JurisprudenceIndent},
		{"margin", s.Margin},
	}
	for _, f := range fields {
		if !SafeCSSValue(f.value) {
			return fmt.Errorf("%w: %s %q", ErrUnsafeStyleValue, f.name, f.value)
		}
	}
	return nil
}

// DefaultStyleSettings returns the settings used when no template is available
func DefaultStyleSettings() StyleSettings {
	return StyleSettings{
		DefaultFont:           "times",
		FirstLineIndent:       "2.5cm",
		JurisprudenceIndent:   "4cm",
		JurisprudenceFontSize: 10,
		ChapterNumbering:      NumberingNone,
		Margin:                "3cm 2cm 2cm 3cm",
		LineHeight:            1.5,
		FontSize:              12,
	}
}

// WithDefaults returns a copy with every zero field taken from DefaultStyleSettings.
// String fields that fail SafeCSSValue are replaced by their default too.
// An unknown numbering policy is left as is; it renders like "none".
func (s StyleSettings) WithDefaults() StyleSettings {
	d := DefaultStyleSettings()
	if s.DefaultFont == "" || !SafeCSSValue(s.DefaultFont) {
		s.DefaultFont = d.DefaultFont
	}
	if s.FirstLineIndent == "" || !SafeCSSValue(s.FirstLineIndent) {
		s.FirstLineIndent = d.FirstLineIndent
	}
	if s.JurisprudenceIndent == "" || !SafeCSSValue(s.JurisprudenceIndent) {
		s.JurisprudenceIndent = d.JurisprudenceIndent
	}
	if s.JurisprudenceFontSize <= 0 {
		s.JurisprudenceFontSize = d.JurisprudenceFontSize
	}
	if s.ChapterNumbering == "" {
		s.ChapterNumbering = d.ChapterNumbering
	}
	if s.Margin == "" || !SafeCSSValue(s.Margin) {
		s.Margin = d.Margin
	}
	if s.LineHeight <= 0 {
		s.LineHeight = d.LineHeight
	}
	if s.FontSize <= 0 {
		s.FontSize = d.FontSize
	}
	return s
}

// Value implements driver.Valuer for JSONB
func (s StyleSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *StyleSettings) Scan(value interface{}) error {
	if value == nil {
		*s = DefaultStyleSettings()
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = DefaultStyleSettings()
		return nil
	}

	if len(bytes) == 0 {
		*s = DefaultStyleSettings()
		return nil
	}

	return json.Unmarshal(bytes, s)
}

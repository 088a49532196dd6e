package formatter

import (
	"strconv"

	"peticiona-backend/models"
)

// ParserState is the per-document accumulator carried line by line through
// the classification pass. A fresh value is used for every document.
type ParserState struct {
	ChapterCount      int
	SubChapterCount   int
	IsInQualification bool

	// qualificationClosed is set once a section heading appears inside the
	// qualification zone. It holds for the rest of the document: later lines
	// are never qualification paragraphs, even those still inside the zone.
	// IsInQualification itself is recomputed per line from the zone and this
	// flag.
	qualificationClosed bool
}

// enterLine recomputes the qualification flag for line index i
func (s *ParserState) enterLine(zone Zone, i int) {
	s.IsInQualification = zone.Contains(i) && !s.qualificationClosed
}

// openChapter records a section heading at line index i and returns the
// heading text as displayed under the numbering policy.
func (s *ParserState) openChapter(zone Zone, i int, text string, policy models.ChapterNumbering) string {
	if zone.Contains(i) {
		s.qualificationClosed = true
	}
	s.IsInQualification = false
	s.ChapterCount++
	s.SubChapterCount = 0

	if policy.Prefixed() {
		return strconv.Itoa(s.ChapterCount) + ". " + text
	}
	return text
}

// Package formatter turns a petition body into styled blocks and scores its
// completeness. Every function here is pure: no I/O, no shared state, no
// errors. Any string is valid input.
package formatter

import (
	"strings"

	"peticiona-backend/models"
)

// Format normalizes content, classifies each line and returns the styled
// blocks in document order. Empty lines produce no block.
func Format(content string, settings models.StyleSettings) []models.Block {
	p := NewParser(settings)
	return p.Parse(content)
}

// Parser runs the classification pass for a single document.
type Parser struct {
	settings models.StyleSettings
	state    ParserState
	zone     Zone
}

// NewParser creates a parser with fresh state
func NewParser(settings models.StyleSettings) *Parser {
	return &Parser{settings: settings}
}

// State returns the accumulator as left by the last Parse call
func (p *Parser) State() ParserState {
	return p.state
}

// Zone returns the zone detected by the last Parse call
func (p *Parser) Zone() Zone {
	return p.zone
}

// Parse formats content. Calling it again resets all state.
func (p *Parser) Parse(content string) []models.Block {
	lines := strings.Split(Normalize(content), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	p.state = ParserState{}
	p.zone = DetectZone(lines)

	blocks := make([]models.Block, 0, len(lines))
	for i, line := range lines {
		p.state.enterLine(p.zone, i)
		if line == "" {
			continue
		}
		blocks = append(blocks, p.classify(i, line))
	}
	return blocks
}

// classify applies the line rules in priority order; the first match wins.
func (p *Parser) classify(i int, line string) models.Block {
	switch {
	case isAddressing(line):
		return newBlock(models.RoleAddressing, line, p.settings)

	case isActionTitle(line):
		return newBlock(models.RoleActionTitle, line, p.settings)

	case isSubsection(line):
		return newBlock(models.RoleSubsection, line, p.settings)

	case isSectionHeading(line):
		text := p.state.openChapter(p.zone, i, stripRomanPrefix(line), p.settings.ChapterNumbering)
		return newBlock(models.RoleSectionHeading, text, p.settings)

	case isJurisprudenceQuote(line):
		return newBlock(models.RoleJurisprudenceQuote, stripQuoteMarker(line), p.settings)
	}

	if p.state.IsInQualification {
		return newBlock(models.RoleQualificationParagraph, EmphasizeParties(line), p.settings)
	}
	return newBlock(models.RoleBodyParagraph, line, p.settings)
}

package renderer

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"peticiona-backend/models"
)

// RenderTerminal renders blocks for a terminal. An empty style picks one
// from the terminal background.
func RenderTerminal(blocks []models.Block, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	out, err := r.Render(RenderMarkdown(blocks))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

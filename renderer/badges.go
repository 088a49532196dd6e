package renderer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"peticiona-backend/models"
)

var (
	passBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1)

	failBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#C62828")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().Faint(true)
)

// Badge is one pass/fail indicator of the quality report
type Badge struct {
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
}

// Badges lists the report flags in display order
func Badges(report models.AnalysisReport) []Badge {
	return []Badge{
		{Label: "Endereçamento", Passed: report.HasAddressing},
		{Label: "Dos Fatos", Passed: report.HasFacts},
		{Label: "Do Direito", Passed: report.HasLegalBasis},
		{Label: "Dos Pedidos", Passed: report.HasRequests},
		{Label: "Assinatura", Passed: report.HasSignature},
		{Label: "OAB", Passed: report.HasOAB},
	}
}

// RenderBadges renders the report as a row of badges followed by the counts
func RenderBadges(report models.AnalysisReport) string {
	badges := Badges(report)
	rendered := make([]string, 0, len(badges)*2)

	for i, badge := range badges {
		if i > 0 {
			rendered = append(rendered, " ")
		}
		if badge.Passed {
			rendered = append(rendered, passBadgeStyle.Render("✓ "+badge.Label))
		} else {
			rendered = append(rendered, failBadgeStyle.Render("✗ "+badge.Label))
		}
	}

	counts := countStyle.Render(fmt.Sprintf("%d palavras · %d parágrafos", report.WordCount, report.ParagraphCount))
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n" + counts
}

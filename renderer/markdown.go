package renderer

import (
	"strings"

	"peticiona-backend/models"
)

var (
	markdownInline = strings.NewReplacer(
		"<b>", "**", "</b>", "**",
		"<i>", "*", "</i>", "*",
	)
	stripInline = strings.NewReplacer(
		"<b>", "", "</b>", "",
		"<i>", "", "</i>", "",
	)
)

// RenderMarkdown converts blocks back to Markdown for terminals and plain-text
// exports. Headings become bold lines, quotes become block quotes.
func RenderMarkdown(blocks []models.Block) string {
	parts := make([]string, 0, len(blocks))

	for _, block := range blocks {
		switch block.Role {
		case models.RoleAddressing, models.RoleActionTitle, models.RoleSectionHeading, models.RoleSubsection:
			parts = append(parts, "**"+stripInline.Replace(block.Text)+"**")
		case models.RoleJurisprudenceQuote:
			parts = append(parts, "> "+markdownInline.Replace(block.Text))
		default:
			parts = append(parts, markdownInline.Replace(block.Text))
		}
	}

	return strings.Join(parts, "\n\n")
}

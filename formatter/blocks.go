package formatter

import "peticiona-backend/models"

const (
	alignCenter  = "center"
	alignJustify = "justify"
	alignLeft    = "left"

	weightBold   = "bold"
	weightNormal = "normal"

	noIndent = "0"
)

// newBlock maps a classified line to its styled block
func newBlock(role models.BlockRole, text string, settings models.StyleSettings) models.Block {
	block := models.Block{Role: role, Text: text}

	switch role {
	case models.RoleAddressing:
		block.Style = models.StyleAttributes{
			TextAlign:  alignCenter,
			FontWeight: weightBold,
			Margin:     "0 0 3em 0",
			TextIndent: noIndent,
		}
	case models.RoleActionTitle:
		block.Style = models.StyleAttributes{
			TextAlign:  alignCenter,
			FontWeight: weightBold,
			Margin:     "1em 0",
			TextIndent: noIndent,
		}
	case models.RoleSubsection:
		block.Style = models.StyleAttributes{
			TextAlign:  alignLeft,
			FontWeight: weightBold,
			Margin:     "0",
			TextIndent: noIndent,
		}
	case models.RoleSectionHeading:
		block.Style = models.StyleAttributes{
			TextAlign:  alignJustify,
			FontWeight: weightBold,
			Margin:     "1em 0",
			TextIndent: noIndent,
		}
	case models.RoleJurisprudenceQuote:
		block.Style = models.StyleAttributes{
			TextAlign:  alignJustify,
			FontWeight: weightNormal,
			Margin:     "0.5em 0",
			TextIndent: noIndent,
			MarginLeft: settings.JurisprudenceIndent,
			FontSize:   settings.JurisprudenceFontSize,
		}
	case models.RoleQualificationParagraph:
		block.Style = models.StyleAttributes{
			TextAlign:  alignJustify,
			FontWeight: weightNormal,
			Margin:     "0.5em 0",
			TextIndent: noIndent,
		}
	default:
		block.Style = models.StyleAttributes{
			TextAlign:  alignJustify,
			FontWeight: weightNormal,
			Margin:     "0.5em 0",
			TextIndent: settings.FirstLineIndent,
		}
	}

	return block
}

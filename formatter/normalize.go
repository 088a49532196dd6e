package formatter

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Canonical inline markers produced by Normalize and by the entity emphasizer.
const (
	StrongOpen  = "<b>"
	StrongClose = "</b>"
	EmOpen      = "<i>"
	EmClose     = "</i>"
)

var (
	// centerTagPattern matches <center>...</center> spans on a single line.
	centerTagPattern = regexp.MustCompile(`<center>(.*?)</center>`)

	// strongTagPattern and emTagPattern match the editor's custom emphasis tags.
	strongTagPattern = regexp.MustCompile(`<strong>(.*?)</strong>`)
	emTagPattern     = regexp.MustCompile(`<em>(.*?)</em>`)

	// nbspPattern matches named and numeric non-breaking-space entities.
	nbspPattern = regexp.MustCompile(`&nbsp;|&#160;`)

	boldStarPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscorePattern = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern     = regexp.MustCompile(`\*(.+?)\*`)
	italicUnderPattern    = regexp.MustCompile(`_(.+?)_`)
)

// Normalize strips the editor's custom tags and converts markdown emphasis into
// canonical <b>/<i> markers. Substitutions run in a fixed order over the whole
// text. The empty string normalizes to itself.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Decomposed accents would otherwise slip past the classification rules.
	text = norm.NFC.String(text)

	text = centerTagPattern.ReplaceAllString(text, "$1")
	text = strongTagPattern.ReplaceAllString(text, "$1")
	text = emTagPattern.ReplaceAllString(text, "$1")
	text = nbspPattern.ReplaceAllString(text, " ")

	text = boldStarPattern.ReplaceAllString(text, StrongOpen+"$1"+StrongClose)
	text = boldUnderscorePattern.ReplaceAllString(text, StrongOpen+"$1"+StrongClose)
	text = italicStarPattern.ReplaceAllString(text, EmOpen+"$1"+EmClose)
	text = italicUnderPattern.ReplaceAllString(text, EmOpen+"$1"+EmClose)

	return text
}

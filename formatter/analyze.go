package formatter

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"peticiona-backend/models"
)

var (
	analysisAddressingPattern = regexp.MustCompile(`(?i)excelent[íi]ssim[oa]|\bexm[oa]\b`)
	analysisFactsPattern      = regexp.MustCompile(`(?i)dos\s+fatos`)
	analysisLegalBasisPattern = regexp.MustCompile(`(?i)do\s+direito|dos\s+fundamentos\s+jur[íi]dicos|da\s+fundamenta[çc][ãa]o\s+jur[íi]dica`)
	analysisRequestsPattern   = regexp.MustCompile(`(?i)dos\s+pedidos|do\s+pedido|dos\s+requerimentos`)

	// analysisSignaturePattern matches any mention of the bar association.
	analysisSignaturePattern = regexp.MustCompile(`(?i)\boab\b`)

	// analysisOABNumberPattern matches a full registration such as
	// "OAB/SP nº 12345" or "OAB-RJ 123.456".
	analysisOABNumberPattern = regexp.MustCompile(`(?i)\boab\s*[/-]\s*[a-z]{2}\s*(?:n\.?\s*[º°o]?\.?\s*)?\d[\d.]*`)

	// wordSeparatorPattern matches runs of whitespace, including the Unicode
	// space separators an editor may paste in.
	wordSeparatorPattern = regexp.MustCompile(`[\s\p{Zs}\x{feff}\x{2028}\x{2029}]+`)

	// paragraphSeparatorPattern matches one or more blank lines.
	paragraphSeparatorPattern = regexp.MustCompile(`\n\s*\n`)
)

// Analyze reports which canonical sections the raw content contains along with
// word and paragraph counts. Markup is not stripped, but the section markers are
// matched against the NFC form so decomposed accents agree with Format.
//
// Counts are split counts over the text as typed: empty content yields
// WordCount 1 and ParagraphCount 1.
func Analyze(content string) models.AnalysisReport {
	composed := norm.NFC.String(content)
	return models.AnalysisReport{
		HasAddressing:  analysisAddressingPattern.MatchString(composed),
		HasFacts:       analysisFactsPattern.MatchString(composed),
		HasLegalBasis:  analysisLegalBasisPattern.MatchString(composed),
		HasRequests:    analysisRequestsPattern.MatchString(composed),
		HasSignature:   analysisSignaturePattern.MatchString(composed),
		HasOAB:         analysisOABNumberPattern.MatchString(composed),
		WordCount:      len(wordSeparatorPattern.Split(strings.TrimSpace(content), -1)),
		ParagraphCount: len(paragraphSeparatorPattern.Split(content, -1)),
	}
}

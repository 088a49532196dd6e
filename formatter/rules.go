package formatter

import (
	"regexp"
	"unicode/utf8"
)

var (
	// actionParenPattern matches a parenthesized title such as "(AÇÃO DE COBRANÇA)".
	actionParenPattern = regexp.MustCompile(`^\([^()]+\)$`)

	// actionKeywordPattern matches lines opening with an upper-case action type.
	actionKeywordPattern = regexp.MustCompile(`^(?:AÇÃO|ACAO|MANDADO DE SEGURANÇA|HABEAS CORPUS|RECLAMAÇÃO TRABALHISTA|RECLAMACAO TRABALHISTA|EMBARGOS|AGRAVO|APELAÇÃO|RECURSO)(?:\s|$)`)

	// subsectionPattern matches chained labels followed by text: "1.1 Título",
	// "II.I Título", "1.A Título", "2.3.1. Título".
	subsectionPattern = regexp.MustCompile(`^(?:\d+|[IVXLCDM]+|[A-Za-z])(?:\.(?:\d+|[IVXLCDM]+|[A-Za-z]))+\.?\s+\S`)

	// romanDashHeadingPattern matches "II – DO DIREITO" style headings.
	romanDashHeadingPattern = regexp.MustCompile(`^[IVXLCDM]+\s*[-–—]\s*\P{Ll}+$`)

	// romanDashPrefixPattern is the prefix stripped from displayed heading text.
	romanDashPrefixPattern = regexp.MustCompile(`^[IVXLCDM]+\s*[-–—]\s*`)

	// ofTheHeadingPattern matches headings opening with DO/DA/DOS/DAS.
	ofTheHeadingPattern = regexp.MustCompile(`^(?:DOS?|DAS?)\s+\P{Ll}+$`)

	// capsHeadingPattern matches a bare upper-case phrase: capital letters and
	// whitespace only, so document numbers and abbreviations stay paragraphs.
	capsHeadingPattern = regexp.MustCompile(`^[\p{Lu}\s]*\p{Lu}[\p{Lu}\s]*$`)

	// quotePrefixPattern matches the block-quote marker and following spaces.
	quotePrefixPattern = regexp.MustCompile(`^>\s*`)
)

const (
	capsHeadingMinLen = 4
	capsHeadingMaxLen = 49
)

func isActionTitle(line string) bool {
	return actionParenPattern.MatchString(line) || actionKeywordPattern.MatchString(line)
}

func isSubsection(line string) bool {
	return subsectionPattern.MatchString(line)
}

func isSectionHeading(line string) bool {
	if romanDashHeadingPattern.MatchString(line) || ofTheHeadingPattern.MatchString(line) {
		return true
	}
	n := utf8.RuneCountInString(line)
	return n >= capsHeadingMinLen && n <= capsHeadingMaxLen && capsHeadingPattern.MatchString(line)
}

func isJurisprudenceQuote(line string) bool {
	return len(line) > 0 && line[0] == '>'
}

func stripRomanPrefix(line string) string {
	return romanDashPrefixPattern.ReplaceAllString(line, "")
}

func stripQuoteMarker(line string) string {
	return quotePrefixPattern.ReplaceAllString(line, "")
}

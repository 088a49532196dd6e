package formatter

import "regexp"

// emphasisRule bolds the first match of pattern by expanding replacement.
type emphasisRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// labelValue is the value following a party label, up to comma, period or newline.
const labelValue = `([^,.\n]+)`

// partyLabelRules run in order, each at most once per paragraph.
var partyLabelRules = []emphasisRule{
	{
		name:        "nome",
		pattern:     regexp.MustCompile(`(Nome:\s*)` + labelValue),
		replacement: "${1}" + StrongOpen + "${2}" + StrongClose,
	},
	{
		name:        "requerente",
		pattern:     regexp.MustCompile(`(REQUERENTE:\s*)` + labelValue),
		replacement: "${1}" + StrongOpen + "${2}" + StrongClose,
	},
	{
		name:        "autor",
		pattern:     regexp.MustCompile(`(AUTORA?:\s*)` + labelValue),
		replacement: "${1}" + StrongOpen + "${2}" + StrongClose,
	},
	{
		name:        "reu",
		pattern:     regexp.MustCompile(`(R[ÉE]U:\s*)` + labelValue),
		replacement: "${1}" + StrongOpen + "${2}" + StrongClose,
	},
	{
		name:        "requerido",
		pattern:     regexp.MustCompile(`(REQUERIDO:\s*)` + labelValue),
		replacement: "${1}" + StrongOpen + "${2}" + StrongClose,
	},
}

var (
	// connectorNameRule bolds the name after "em face de", "contra", etc.,
	// leaving the connector itself plain.
	connectorNameRule = emphasisRule{
		name:        "connector",
		pattern:     regexp.MustCompile(`^((?i:em face de|contra|a parte|ao r[ée]u|ao requerido)\s+)(\p{L}[\p{L}'’\-\s]*),`),
		replacement: "${1}" + StrongOpen + "${2}" + StrongClose + ",",
	}

	// leadingNameRule bolds a bare name opening the paragraph, e.g. "JOÃO SILVA, brasileiro".
	leadingNameRule = emphasisRule{
		name:        "leading_name",
		pattern:     regexp.MustCompile(`^(\p{L}[\p{L}'’\-\s]*),`),
		replacement: StrongOpen + "${1}" + StrongClose + ",",
	}
)

// apply replaces the first match only.
func (r emphasisRule) apply(text string) string {
	loc := r.pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	var dst []byte
	dst = r.pattern.ExpandString(dst, r.replacement, text, loc)
	return text[:loc[0]] + string(dst) + text[loc[1]:]
}

// EmphasizeParties bolds party names in a qualification paragraph. The label
// rules are independent; the connector and leading-name rules are mutually
// exclusive, the connector case taking precedence.
func EmphasizeParties(text string) string {
	for _, rule := range partyLabelRules {
		text = rule.apply(text)
	}

	if connectorNameRule.pattern.MatchString(text) {
		return connectorNameRule.apply(text)
	}
	return leadingNameRule.apply(text)
}

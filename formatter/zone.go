package formatter

import (
	"regexp"
	"strings"
)

var (
	// addressingPattern matches the opening honorific addressed to the court,
	// e.g. "EXCELENTÍSSIMO SENHOR DOUTOR JUIZ" or "EXMO. SR. JUIZ".
	addressingPattern = regexp.MustCompile(`(?i)^(?:excelent[íi]ssim[oa]|exm[oa]\b)`)

	// factsHeadingPattern matches a line that is exactly the facts heading.
	factsHeadingPattern = regexp.MustCompile(`(?i)^(?:dos\s+fatos|fatos|da\s+s[íi]ntese\s+f[áa]tica)\s*:?$`)

	// factsMarkerPattern matches a line carrying the upper-case facts marker,
	// e.g. "I – DOS FATOS" or "2. DOS FATOS E DO DIREITO".
	factsMarkerPattern = regexp.MustCompile(`DOS\s+FATOS`)
)

// Zone records where the addressing line and the facts heading sit. Lines
// strictly between the two form the qualification zone.
type Zone struct {
	HasAddressing   bool
	HasFacts        bool
	AddressingIndex int // -1 when absent
	FactsIndex      int // -1 when absent
}

// Valid reports whether the qualification zone is well defined
func (z Zone) Valid() bool {
	return z.HasAddressing && z.HasFacts && z.AddressingIndex < z.FactsIndex
}

// Contains reports whether line index i lies inside the qualification zone
func (z Zone) Contains(i int) bool {
	return z.Valid() && z.AddressingIndex < i && i < z.FactsIndex
}

func isAddressing(line string) bool {
	return addressingPattern.MatchString(line)
}

func isFactsHeading(line string) bool {
	return factsHeadingPattern.MatchString(line) || factsMarkerPattern.MatchString(line)
}

// DetectZone scans lines once and returns the first addressing line and the
// first facts heading. Lines are trimmed before matching and empty lines are
// ignored, but indices refer to positions in lines.
func DetectZone(lines []string) Zone {
	zone := Zone{AddressingIndex: -1, FactsIndex: -1}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !zone.HasAddressing && isAddressing(trimmed) {
			zone.HasAddressing = true
			zone.AddressingIndex = i
		}
		if !zone.HasFacts && isFactsHeading(trimmed) {
			zone.HasFacts = true
			zone.FactsIndex = i
		}
	}

	return zone
}

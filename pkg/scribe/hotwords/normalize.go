package hotwords

import (
	"strings"
	"unicode"
)

// Normalize lower-cases a candidate term if the original term consists
// solely of letters. Terms containing digits, hyphens, apostrophes or
// any other non-letter rune are dropped, not partially cleaned. The
// alphabetic check runs on the untransformed string.
func Normalize(term string) (string, bool) {
	if term == "" {
		return "", false
	}
	for _, r := range term {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return strings.ToLower(term), true
}

// NormalizeAll maps Normalize over candidates, keeping input order and
// skipping dropped terms.
func NormalizeAll(candidates []string) []string {
	var terms []string
	for _, c := range candidates {
		if t, ok := Normalize(c); ok {
			terms = append(terms, t)
		}
	}
	return terms
}

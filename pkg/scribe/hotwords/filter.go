// Package hotwords turns tagged document text into a ranked hotword
// table for biasing a speech-recognition engine toward the proper
// nouns that actually appear in the document.
package hotwords

import (
	"unicode"

	"github.com/opencouncil/scribe/pkg/scribe/tag"
)

// FilterCandidates selects the texts of tokens worth boosting: proper
// nouns that are not stopwords, not punctuation, and not fully
// upper-case. Fully upper-case tokens are acronyms or headings, not
// names. Input order is preserved.
func FilterCandidates(tokens []tag.Token) []string {
	var candidates []string
	for _, t := range tokens {
		if t.POS != tag.ProperNoun || t.IsStop || t.IsPunct {
			continue
		}
		if isAllUpper(t.Text) {
			continue
		}
		candidates = append(candidates, t.Text)
	}
	return candidates
}

// isAllUpper reports whether s contains at least one cased rune and no
// lower-case runes.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

package tag

import (
	"strings"
	"unicode"
)

// Heuristic is a rule-based tagger driven by a lexicon model. It is a
// stand-in for a statistical tagger: capitalized words that are neither
// stopwords nor common vocabulary are classed as proper nouns.
type Heuristic struct {
	stopwords map[string]struct{}
	common    map[string]struct{}
}

// NewHeuristic builds a tagger from a loaded lexicon model.
func NewHeuristic(m *Model) *Heuristic {
	h := &Heuristic{
		stopwords: make(map[string]struct{}, len(m.Stopwords)),
		common:    make(map[string]struct{}, len(m.Common)),
	}
	for _, w := range m.Stopwords {
		h.stopwords[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range m.Common {
		h.common[strings.ToLower(w)] = struct{}{}
	}
	return h
}

// Tag splits text into word and punctuation tokens, preserving the
// original casing of each token.
func (h *Heuristic) Tag(text string) ([]Token, error) {
	var tokens []Token
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tokens = append(tokens, h.classify(current.String()))
		current.Reset()
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-':
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, Token{
				Text:    string(r),
				POS:     Punct,
				IsPunct: true,
			})
		}
	}
	flush()

	return tokens, nil
}

func (h *Heuristic) classify(word string) Token {
	lower := strings.ToLower(word)
	_, stop := h.stopwords[lower]

	tok := Token{Text: word, IsStop: stop}

	first, _ := firstRune(word)
	switch {
	case !unicode.IsLetter(first):
		tok.POS = Other
	case unicode.IsUpper(first) && !stop && !h.isCommon(lower):
		tok.POS = ProperNoun
	default:
		tok.POS = Noun
	}

	return tok
}

func (h *Heuristic) isCommon(lower string) bool {
	_, ok := h.common[lower]
	return ok
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

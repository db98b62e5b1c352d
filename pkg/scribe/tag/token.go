package tag

// Class is the coarse part-of-speech class assigned to a token.
type Class int

const (
	Other Class = iota
	Noun
	ProperNoun
	Punct
)

// String returns the class name used in logs and test output.
func (c Class) String() string {
	switch c {
	case Noun:
		return "NOUN"
	case ProperNoun:
		return "PROPN"
	case Punct:
		return "PUNCT"
	default:
		return "OTHER"
	}
}

// Token is one tagged unit of text. Tokens are produced once per run
// by a Tagger and consumed read-only downstream.
type Token struct {
	Text    string
	POS     Class
	IsStop  bool
	IsPunct bool
}

// Tagger splits a text into tagged tokens. Implementations may load
// models or perform I/O; the pipeline itself treats Tag as opaque.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

package hotwords

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencouncil/scribe/pkg/scribe/internalerr"
	"github.com/opencouncil/scribe/pkg/scribe/tag"
)

type stubSource struct {
	text string
	err  error
}

func (s stubSource) Text() (string, error) {
	return s.text, s.err
}

// stubTagger tags whitespace-separated words using a fixed set of
// proper nouns, standing in for the real tagging collaborator.
type stubTagger struct {
	proper map[string]bool
}

func (s stubTagger) Tag(text string) ([]tag.Token, error) {
	var tokens []tag.Token
	for _, w := range strings.Fields(text) {
		tok := tag.Token{Text: w, POS: tag.Noun}
		if s.proper[w] {
			tok.POS = tag.ProperNoun
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func TestGeneratorRescaledEndToEnd(t *testing.T) {
	gen := New(Options{
		Source:  stubSource{text: "Dallas Dallas Park Park Park City"},
		Tagger:  stubTagger{proper: map[string]bool{"Dallas": true, "Park": true, "City": true}},
		Rescale: true,
	})

	path := filepath.Join(t.TempDir(), "minutes.csv")
	if err := gen.Run(path); err != nil {
		t.Fatal(err)
	}

	words, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]float64, len(words))
	for _, w := range words {
		got[w.Word] = w.Boost
	}

	want := map[string]float64{"dallas": 10.5, "park": 20, "city": 1}
	if len(got) != len(want) {
		t.Fatalf("got terms %v, want %v", got, want)
	}
	for term, boost := range want {
		if math.Abs(got[term]-boost) > 1e-9 {
			t.Errorf("%q = %v, want %v", term, got[term], boost)
		}
	}
}

func TestGeneratorEmptyCandidatesRescaled(t *testing.T) {
	gen := New(Options{
		Source:  stubSource{text: "nothing capitalized here"},
		Tagger:  stubTagger{},
		Rescale: true,
	})

	path := filepath.Join(t.TempDir(), "minutes.csv")
	err := gen.Run(path)
	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no output should be written on failure")
	}
}

func TestGeneratorEmptyCandidatesRaw(t *testing.T) {
	gen := New(Options{
		Source: stubSource{text: "nothing capitalized here"},
		Tagger: stubTagger{},
	})

	path := filepath.Join(t.TempDir(), "minutes.csv")
	if err := gen.Run(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "word,frequency\n" {
		t.Errorf("raw variant should degrade to header-only file, got %q", string(data))
	}
}

func TestGeneratorDropsNonAlphabetic(t *testing.T) {
	gen := New(Options{
		Source: stubSource{text: "O'Brien O'Brien Dallas"},
		Tagger: stubTagger{proper: map[string]bool{"O'Brien": true, "Dallas": true}},
	})

	freqs, err := gen.Frequencies()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := freqs["o'brien"]; ok {
		t.Error("apostrophe term should have been dropped")
	}
	if freqs["dallas"] != 1 {
		t.Errorf("dallas = %d, want 1", freqs["dallas"])
	}
}

func TestGeneratorSourceFailure(t *testing.T) {
	gen := New(Options{
		Source: stubSource{err: internalerr.ErrSourceUnavailable},
		Tagger: stubTagger{},
	})

	_, err := gen.Frequencies()
	if !errors.Is(err, internalerr.ErrSourceUnavailable) {
		t.Errorf("expected source error to propagate, got %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"minutes/2021-03-10.pdf", "minutes/2021-03-10.csv"},
		{"/data/meeting.txt", "/data/meeting.csv"},
		{"plain", "plain.csv"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package hotwords

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/opencouncil/scribe/pkg/scribe/extract"
	"github.com/opencouncil/scribe/pkg/scribe/tag"
)

// Defaults for the boost range, matching the transcription engine's
// useful hotword boost interval.
const (
	DefaultRangeMin = 1
	DefaultRangeMax = 20
)

// Options configures a Generator.
type Options struct {
	Source   extract.Source
	Tagger   tag.Tagger
	RangeMin int
	RangeMax int
	Rescale  bool
}

// Generator runs the hotword pipeline for one document: extract text,
// tag, filter proper-noun candidates, normalize, count, optionally
// rescale, and serialize. Each Generator owns its run's state; nothing
// is shared across runs.
type Generator struct {
	source   extract.Source
	tagger   tag.Tagger
	rangeMin int
	rangeMax int
	rescale  bool
}

// New creates a Generator with the given dependencies.
func New(opts Options) *Generator {
	if opts.RangeMin == 0 && opts.RangeMax == 0 {
		opts.RangeMin = DefaultRangeMin
		opts.RangeMax = DefaultRangeMax
	}
	return &Generator{
		source:   opts.Source,
		tagger:   opts.Tagger,
		rangeMin: opts.RangeMin,
		rangeMax: opts.RangeMax,
		rescale:  opts.Rescale,
	}
}

// Frequencies runs the pipeline up to the frequency table: term counts
// for every surviving proper-noun candidate in the document.
func (g *Generator) Frequencies() (map[string]int, error) {
	text, err := g.source.Text()
	if err != nil {
		return nil, err
	}

	tokens, err := g.tagger.Tag(text)
	if err != nil {
		return nil, fmt.Errorf("tag document: %w", err)
	}

	candidates := FilterCandidates(tokens)
	return CountTerms(NormalizeAll(candidates)), nil
}

// Run executes the full pipeline and writes the hotword table to
// outPath. With rescaling enabled an empty candidate set is an error;
// without it the table degrades to a header-only file.
func (g *Generator) Run(outPath string) error {
	freqs, err := g.Frequencies()
	if err != nil {
		return err
	}

	if !g.rescale {
		return WriteFrequencies(outPath, freqs)
	}

	weights, err := Rescale(freqs, g.rangeMin, g.rangeMax)
	if err != nil {
		return err
	}
	return WriteBoosts(outPath, weights)
}

// OutputPath derives the hotword table location from the input document
// path: same directory, same base name, .csv extension.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
}

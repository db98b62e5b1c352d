package tag

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/opencouncil/scribe/pkg/scribe/internalerr"
)

// BuiltinModel is the lexicon shipped inside the binary. It is installed
// into the model directory on first use so users can edit it in place.
const BuiltinModel = "en-council-sm"

//go:embed lexicon_en.yaml
var builtinLexicon []byte

// Model is a lexicon model for the heuristic tagger: a stopword list and
// a list of common words that should never be treated as proper nouns.
type Model struct {
	Name      string   `yaml:"name"`
	Stopwords []string `yaml:"stopwords"`
	Common    []string `yaml:"common"`
}

// LoadModel loads the named lexicon model from dir. A missing built-in
// model is installed once from the embedded copy before retrying; any
// other missing model fails immediately. This is the single remedial
// action permitted for an absent model artifact.
func LoadModel(name, dir string) (*Model, error) {
	path := filepath.Join(dir, name+".yaml")

	m, err := loadModelFile(path)
	if err == nil {
		return m, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load model %q: %w", name, err)
	}

	if name != BuiltinModel {
		return nil, fmt.Errorf("model %q not found in %s: %w", name, dir, internalerr.ErrTaggerUnavailable)
	}

	if err := installBuiltin(path); err != nil {
		return nil, fmt.Errorf("install model %q: %v: %w", name, err, internalerr.ErrTaggerUnavailable)
	}

	m, err = loadModelFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model %q after install: %v: %w", name, err, internalerr.ErrTaggerUnavailable)
	}
	return m, nil
}

func loadModelFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func installBuiltin(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, builtinLexicon, 0644)
}

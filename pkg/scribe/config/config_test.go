package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencouncil/scribe/pkg/scribe/internalerr"
)

func TestDefaults(t *testing.T) {
	c := Default()

	if c.RangeMin != 1 || c.RangeMax != 20 {
		t.Errorf("default range = [%d, %d], want [1, 20]", c.RangeMin, c.RangeMax)
	}
	if !c.Rescale {
		t.Error("rescaling should default to enabled")
	}
	if c.TaggerModel == "" {
		t.Error("default tagger model missing")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.yaml")
	content := "range_max: 10\nrescale: false\ntagger_model: en-council-lg\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.RangeMax != 10 || c.Rescale || c.TaggerModel != "en-council-lg" {
		t.Errorf("file values not applied: %+v", c)
	}
	// Fields absent from the file keep defaults.
	if c.RangeMin != 1 {
		t.Errorf("range_min = %d, want default 1", c.RangeMin)
	}
	if c.API.BaseURL == "" {
		t.Error("api defaults lost")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateRange(t *testing.T) {
	c := Default()
	c.RangeMin = 20
	c.RangeMax = 1

	if err := c.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	// An inverted range is fine when rescaling is off: the bounds are
	// never used.
	c.Rescale = false
	if err := c.Validate(); err != nil {
		t.Errorf("raw variant should ignore range bounds: %v", err)
	}
}

func TestLoaderBuildsTagger(t *testing.T) {
	cfg := Default()
	cfg.ModelDir = t.TempDir()

	comp, err := (&Loader{Config: cfg}).Load()
	if err != nil {
		t.Fatal(err)
	}
	if comp.Tagger == nil {
		t.Fatal("loader returned nil tagger")
	}

	tokens, err := comp.Tagger.Tag("Councilwoman Mendelsohn arrived")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Errorf("expected 3 tokens, got %d", len(tokens))
	}
}

func TestLoaderMergesStoplist(t *testing.T) {
	dir := t.TempDir()
	slPath := filepath.Join(dir, "extra.yaml")
	if err := os.WriteFile(slPath, []byte("terms: [Mendelsohn]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.ModelDir = dir
	cfg.Stoplist = slPath

	comp, err := (&Loader{Config: cfg}).Load()
	if err != nil {
		t.Fatal(err)
	}

	tokens, err := comp.Tagger.Tag("Mendelsohn arrived")
	if err != nil {
		t.Fatal(err)
	}
	if !tokens[0].IsStop {
		t.Error("stoplist term not marked as stopword")
	}
}

func TestLoaderMissingModel(t *testing.T) {
	cfg := Default()
	cfg.ModelDir = t.TempDir()
	cfg.TaggerModel = "en-core-web-lg"

	_, err := (&Loader{Config: cfg}).Load()
	if !errors.Is(err, internalerr.ErrTaggerUnavailable) {
		t.Errorf("expected ErrTaggerUnavailable, got %v", err)
	}
}

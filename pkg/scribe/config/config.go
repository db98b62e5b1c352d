package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opencouncil/scribe/pkg/scribe/hotwords"
	"github.com/opencouncil/scribe/pkg/scribe/internalerr"
	"github.com/opencouncil/scribe/pkg/scribe/tag"
)

// API configures the hosted transcription service client.
type API struct {
	BaseURL  string `yaml:"base_url"`
	TokenEnv string `yaml:"token_env"`
}

// Config holds the recognized scribe options.
type Config struct {
	RangeMin    int    `yaml:"range_min"`
	RangeMax    int    `yaml:"range_max"`
	Rescale     bool   `yaml:"rescale"`
	TaggerModel string `yaml:"tagger_model"`
	ModelDir    string `yaml:"model_dir"`
	Stoplist    string `yaml:"stoplist"`
	API         API    `yaml:"api"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		RangeMin:    hotwords.DefaultRangeMin,
		RangeMax:    hotwords.DefaultRangeMax,
		Rescale:     true,
		TaggerModel: tag.BuiltinModel,
		ModelDir:    "models",
		API: API{
			BaseURL:  "https://api.assemblyai.com/v2",
			TokenEnv: "AAI_TOKEN",
		},
	}
}

// Load reads a YAML config file over the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects option combinations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Rescale && c.RangeMin >= c.RangeMax {
		return fmt.Errorf("range_min %d must be below range_max %d: %w",
			c.RangeMin, c.RangeMax, internalerr.ErrInvalidConfig)
	}
	if c.TaggerModel == "" {
		return fmt.Errorf("tagger_model must not be empty: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stoplist is an extra stopword list merged into the tagger model.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads extra stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

package config

import (
	"fmt"

	"github.com/opencouncil/scribe/pkg/scribe/tag"
)

// Loader turns a Config into initialized pipeline components. Model
// loading is an explicit step here so a missing model surfaces as an
// initialization error, not mid-pipeline.
type Loader struct {
	Config Config
}

// Components holds the constructed collaborators.
type Components struct {
	Tagger *tag.Heuristic
}

// Load resolves the tagger model and optional extra stoplist.
func (l *Loader) Load() (*Components, error) {
	model, err := tag.LoadModel(l.Config.TaggerModel, l.Config.ModelDir)
	if err != nil {
		return nil, err
	}

	if l.Config.Stoplist != "" {
		sl, err := LoadStoplist(l.Config.Stoplist)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		model.Stopwords = append(model.Stopwords, sl.Terms...)
	}

	return &Components{Tagger: tag.NewHeuristic(model)}, nil
}

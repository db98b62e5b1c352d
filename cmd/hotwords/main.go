package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/opencouncil/scribe/pkg/scribe/config"
	"github.com/opencouncil/scribe/pkg/scribe/extract"
	"github.com/opencouncil/scribe/pkg/scribe/hotwords"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		rangeMin   = flag.Int("range-min", 0, "lowest boost value")
		rangeMax   = flag.Int("range-max", 0, "highest boost value")
		model      = flag.String("model", "", "tagger model name")
		modelDir   = flag.String("model-dir", "", "directory holding tagger models")
		stoplist   = flag.String("stoplist", "", "extra stopword list (YAML)")
		raw        = flag.Bool("raw", false, "write raw frequencies instead of rescaled boosts")
		output     = flag.String("out", "", "output path (default: input with .csv extension)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <minutes-file>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Generate a hotword table for speech transcription from meeting minutes.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags win over the config file.
	if *rangeMin != 0 {
		cfg.RangeMin = *rangeMin
	}
	if *rangeMax != 0 {
		cfg.RangeMax = *rangeMax
	}
	if *model != "" {
		cfg.TaggerModel = *model
	}
	if *modelDir != "" {
		cfg.ModelDir = *modelDir
	}
	if *stoplist != "" {
		cfg.Stoplist = *stoplist
	}
	if *raw {
		cfg.Rescale = false
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	loader := config.Loader{Config: cfg}
	comp, err := loader.Load()
	if err != nil {
		log.Fatal(err)
	}

	outPath := *output
	if outPath == "" {
		outPath = hotwords.OutputPath(input)
	}

	gen := hotwords.New(hotwords.Options{
		Source:   extract.ForPath(input),
		Tagger:   comp.Tagger,
		RangeMin: cfg.RangeMin,
		RangeMax: cfg.RangeMax,
		Rescale:  cfg.Rescale,
	})

	if err := gen.Run(outPath); err != nil {
		log.Fatal(err)
	}

	log.Printf("Wrote hotword table to %s", outPath)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/opencouncil/scribe/pkg/scribe/config"
	"github.com/opencouncil/scribe/pkg/scribe/hotwords"
	"github.com/opencouncil/scribe/pkg/scribe/jobs"
	"github.com/opencouncil/scribe/pkg/scribe/transcribe"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <submit|get|upload> [flags] <arg>

  submit <audio-url>   Submit an audio URL for transcription
  get <transcript-id>  Retrieve a transcript
  upload <audio-file>  Upload a local audio file

`, os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// .env is optional; the token can come from the environment directly.
	_ = godotenv.Load()

	cfg := config.Default()
	ctx := context.Background()

	switch os.Args[1] {
	case "submit":
		runSubmit(ctx, cfg, os.Args[2:])
	case "get":
		runGet(ctx, cfg, os.Args[2:])
	case "upload":
		runUpload(ctx, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func newClient(cfg config.Config, token string) *transcribe.Client {
	if token == "" {
		token = os.Getenv(cfg.API.TokenEnv)
	}
	if token == "" {
		log.Fatalf("API token required: set --token or %s", cfg.API.TokenEnv)
	}
	return transcribe.NewClient(cfg.API.BaseURL, token)
}

func runSubmit(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	var (
		token        = fs.String("token", "", "API token (default: environment)")
		hotwordsPath = fs.String("hotwords", "", "hotword CSV to submit as word boosts")
		boostParam   = fs.String("boost-param", "", "global boost strength (low, default, high)")
		dbPath       = fs.String("db", "", "SQLite job ledger (optional)")
	)
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("submit: audio URL required")
	}
	audioURL := fs.Arg(0)

	req := transcribe.SubmitRequest{
		AudioURL:   audioURL,
		BoostParam: *boostParam,
	}
	if *hotwordsPath != "" {
		words, err := hotwords.ReadFile(*hotwordsPath)
		if err != nil {
			log.Fatal(err)
		}
		for _, w := range words {
			req.WordBoost = append(req.WordBoost, w.Word)
		}
	}

	var store jobs.Store
	if *dbPath != "" {
		var err error
		store, err = jobs.OpenSQLite(ctx, *dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()

		if prev, found, err := store.GetByAudioURL(ctx, audioURL); err != nil {
			log.Fatal(err)
		} else if found {
			log.Fatalf("already submitted as job %s (transcript %s)", prev.ID, prev.TranscriptID)
		}
	}

	t, err := newClient(cfg, *token).Submit(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	if store != nil {
		job := jobs.NewJob(audioURL, t.ID, t.Status, len(req.WordBoost))
		if err := store.Insert(ctx, job); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("transcript %s: %s\n", t.ID, t.Status)
}

func runGet(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	var (
		token  = fs.String("token", "", "API token (default: environment)")
		dbPath = fs.String("db", "", "SQLite job ledger to update (optional)")
	)
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("get: transcript ID required")
	}
	id := fs.Arg(0)

	t, err := newClient(cfg, *token).Get(ctx, id)
	if err != nil {
		log.Fatal(err)
	}

	if *dbPath != "" {
		store, err := jobs.OpenSQLite(ctx, *dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()

		if job, found, err := store.GetByAudioURL(ctx, t.AudioURL); err != nil {
			log.Fatal(err)
		} else if found {
			if err := store.UpdateStatus(ctx, job.ID, t.Status); err != nil {
				log.Fatal(err)
			}
		}
	}

	if t.Error != "" {
		log.Fatalf("transcript %s: %s: %s", t.ID, t.Status, t.Error)
	}
	fmt.Printf("transcript %s: %s\n", t.ID, t.Status)
	if t.Text != "" {
		fmt.Println(t.Text)
	}
}

func runUpload(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	token := fs.String("token", "", "API token (default: environment)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("upload: audio file required")
	}

	u, err := newClient(cfg, *token).UploadFile(ctx, fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(u.UploadURL)
}

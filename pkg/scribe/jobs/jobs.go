// Package jobs records transcription submissions so a recording is not
// sent to the hosted API twice.
package jobs

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Job is one submitted transcription.
type Job struct {
	ID           string
	AudioURL     string
	TranscriptID string
	Status       string
	HotwordCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Store persists submitted jobs.
type Store interface {
	Close() error

	Insert(ctx context.Context, j Job) error
	Get(ctx context.Context, id string) (Job, bool, error)
	GetByAudioURL(ctx context.Context, url string) (Job, bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, limit int) ([]Job, error)
}

// NewJob builds a Job with a fresh ULID and creation timestamps.
func NewJob(audioURL, transcriptID, status string, hotwordCount int) Job {
	now := time.Now().UTC()
	return Job{
		ID:           ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		AudioURL:     audioURL,
		TranscriptID: transcriptID,
		Status:       status,
		HotwordCount: hotwordCount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

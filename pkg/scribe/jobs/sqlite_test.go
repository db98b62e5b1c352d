package jobs

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) Store {
	t.Helper()

	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "jobs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsertAndGet(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	job := NewJob("https://example.com/meeting.mp3", "t-123", "queued", 42)
	if err := store.Insert(ctx, job); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("inserted job not found")
	}
	if got.AudioURL != job.AudioURL || got.TranscriptID != "t-123" || got.HotwordCount != 42 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(job.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, job.CreatedAt)
	}
}

func TestGetByAudioURL(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	job := NewJob("https://example.com/a.mp3", "t-1", "queued", 0)
	if err := store.Insert(ctx, job); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.GetByAudioURL(ctx, "https://example.com/a.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if !found || got.ID != job.ID {
		t.Errorf("lookup by URL failed: found=%v job=%+v", found, got)
	}

	_, found, err = store.GetByAudioURL(ctx, "https://example.com/other.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("unknown URL should not be found")
	}
}

func TestDuplicateAudioURLRejected(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Insert(ctx, NewJob("https://example.com/a.mp3", "t-1", "queued", 0)); err != nil {
		t.Fatal(err)
	}
	if err := store.Insert(ctx, NewJob("https://example.com/a.mp3", "t-2", "queued", 0)); err == nil {
		t.Error("duplicate audio URL should violate the unique constraint")
	}
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	job := NewJob("https://example.com/a.mp3", "t-1", "queued", 0)
	if err := store.Insert(ctx, job); err != nil {
		t.Fatal(err)
	}
	if err := store.UpdateStatus(ctx, job.ID, "completed"); err != nil {
		t.Fatal(err)
	}

	got, _, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "completed" {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("updated_at went backwards: %v < %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for i, url := range []string{"https://example.com/a.mp3", "https://example.com/b.mp3", "https://example.com/c.mp3"} {
		if err := store.Insert(ctx, NewJob(url, "t", "queued", i)); err != nil {
			t.Fatal(err)
		}
	}

	list, err := store.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("limit not applied: got %d jobs", len(list))
	}
}

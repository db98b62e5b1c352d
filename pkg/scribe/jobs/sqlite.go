package jobs

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteStore implements Store on a SQLite database.
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) a SQLite job ledger with
// WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	audio_url TEXT UNIQUE NOT NULL,
	transcript_id TEXT NOT NULL,
	status TEXT NOT NULL,
	hotword_count INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) Insert(ctx context.Context, j Job) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, audio_url, transcript_id, status, hotword_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.AudioURL, j.TranscriptID, j.Status, j.HotwordCount,
		j.CreatedAt.UTC().Format(time.RFC3339Nano),
		j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *sqliteStore) Get(ctx context.Context, id string) (Job, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, audio_url, transcript_id, status, hotword_count, created_at, updated_at
		FROM jobs WHERE id = ?`, id)
	return scanJob(row)
}

func (s *sqliteStore) GetByAudioURL(ctx context.Context, url string) (Job, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, audio_url, transcript_id, status, hotword_count, created_at, updated_at
		FROM jobs WHERE audio_url = ?`, url)
	return scanJob(row)
}

func (s *sqliteStore) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE jobs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC().Format(time.RFC3339Nano), id)
	return err
}

func (s *sqliteStore) List(ctx context.Context, limit int) ([]Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, audio_url, transcript_id, status, hotword_count, created_at, updated_at
		FROM jobs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Job
	for rows.Next() {
		j, ok, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		if ok {
			list = append(list, j)
		}
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(r rowScanner) (Job, bool, error) {
	var j Job
	var created, updated string

	err := r.Scan(&j.ID, &j.AudioURL, &j.TranscriptID, &j.Status, &j.HotwordCount, &created, &updated)
	if err == sql.ErrNoRows {
		return Job{}, false, nil
	}
	if err != nil {
		return Job{}, false, err
	}

	if j.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Job{}, false, err
	}
	if j.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return Job{}, false, err
	}
	return j, true, nil
}

package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteSubmissionRepo stores accepted submissions in a local SQLite file.
type SQLiteSubmissionRepo struct {
	db *sql.DB
}

// NewSQLiteSubmissionRepo opens (creating if needed) the database at path and migrates it.
func NewSQLiteSubmissionRepo(path string) (*SQLiteSubmissionRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repo: open db: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repo: enable WAL: %w", err)
	}

	r := &SQLiteSubmissionRepo{db: db}
	if err := r.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteSubmissionRepo) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at)`,
	}
	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return fmt.Errorf("repo: migrate: %w", err)
		}
	}
	return nil
}

// Save inserts a record.
func (r *SQLiteSubmissionRepo) Save(ctx context.Context, rec *dmn.Record) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO results (id, x, y, steps, email, message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.X, rec.Y, rec.Steps, rec.Email, rec.Message, rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("repo: insert result: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (r *SQLiteSubmissionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo: count results: %w", err)
	}
	return n, nil
}

// Recent returns up to limit records, newest first.
func (r *SQLiteSubmissionRepo) Recent(ctx context.Context, limit int) ([]dmn.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, x, y, steps, email, message, created_at FROM results ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repo: query results: %w", err)
	}
	defer rows.Close()

	records := make([]dmn.Record, 0, limit)
	for rows.Next() {
		var (
			rec       dmn.Record
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &rec.X, &rec.Y, &rec.Steps, &rec.Email, &rec.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("repo: scan result: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("repo: bad result id %q: %w", id, err)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database.
func (r *SQLiteSubmissionRepo) Close() error {
	return r.db.Close()
}

// Package database holds the SQLite-backed activity log.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/contre95/soundgate/src/features/activity"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteEventLog is a SQLite implementation of the activity store.
type SqliteEventLog struct {
	db *sql.DB
}

// NewSqliteEventLog opens (creating if needed) the activity database.
func NewSqliteEventLog(path string) (*SqliteEventLog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		return nil, err
	}
	return &SqliteEventLog{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			entry_id TEXT,
			detail TEXT,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// RecordEvent stores one activity event.
func (l *SqliteEventLog) RecordEvent(ctx context.Context, event activity.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO events (id, kind, entry_id, detail, created_at) VALUES (?, ?, ?, ?, ?)`,
		event.ID, event.Kind, event.EntryID, event.Detail, event.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// RecentEvents returns the newest events first.
func (l *SqliteEventLog) RecentEvents(ctx context.Context, limit int) ([]activity.Event, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, kind, entry_id, detail, created_at FROM events ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []activity.Event
	for rows.Next() {
		var e activity.Event
		var created string
		if err := rows.Scan(&e.ID, &e.Kind, &e.EntryID, &e.Detail, &created); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			e.CreatedAt = t
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Close closes the underlying database.
func (l *SqliteEventLog) Close() error {
	return l.db.Close()
}

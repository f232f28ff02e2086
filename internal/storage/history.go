package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/timekeeper"
	_ "modernc.org/sqlite"
)

const historyFileName = "history.db"

// ErrNoHistory indicates the store holds no entries yet.
var ErrNoHistory = errors.New("no history recorded")

// HistoryStore is an append-only SQLite log of timeline transitions.
type HistoryStore struct {
	db *sql.DB
}

// HistoryPath returns the history database location for appName.
func HistoryPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, historyFileName), nil
}

// OpenHistory opens or creates the history database at path.
// ":memory:" gives a private in-memory store.
func OpenHistory(path string) (*HistoryStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// One connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run history migrations: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Close closes the database connection.
func (store *HistoryStore) Close() error {
	return store.db.Close()
}

// Record appends entry to the log.
func (store *HistoryStore) Record(entry timekeeper.Entry) error {
	serialized, err := json.Marshal(entry.Timeline)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}

	_, err = store.db.Exec(
		`INSERT INTO history (action, timeline, recorded_at) VALUES (?, ?, ?)`,
		string(entry.Action),
		string(serialized),
		entry.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// Latest returns the most recent entry, or ErrNoHistory.
func (store *HistoryStore) Latest() (timekeeper.Entry, error) {
	row := store.db.QueryRow(
		`SELECT action, timeline, recorded_at FROM history ORDER BY id DESC LIMIT 1`,
	)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return timekeeper.Entry{}, ErrNoHistory
	}
	return entry, err
}

// List returns up to limit of the most recent entries, oldest first.
// A non-positive limit returns the whole log.
func (store *HistoryStore) List(limit int) ([]timekeeper.Entry, error) {
	query := `SELECT action, timeline, recorded_at FROM (
		SELECT id, action, timeline, recorded_at FROM history ORDER BY id DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	query += `) ORDER BY id ASC`

	rows, err := store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []timekeeper.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded entries.
func (store *HistoryStore) Count() (int, error) {
	var count int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (timekeeper.Entry, error) {
	var (
		action     string
		serialized string
		recordedAt string
	)
	if err := row.Scan(&action, &serialized, &recordedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timekeeper.Entry{}, err
		}
		return timekeeper.Entry{}, fmt.Errorf("scan history entry: %w", err)
	}

	var timeline model.Timeline
	if err := json.Unmarshal([]byte(serialized), &timeline); err != nil {
		return timekeeper.Entry{}, fmt.Errorf("parse timeline: %w", err)
	}

	at, err := time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return timekeeper.Entry{}, fmt.Errorf("parse recorded time: %w", err)
	}

	return timekeeper.Entry{
		Action:   timekeeper.Action(action),
		Timeline: timeline,
		At:       at,
	}, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	slot       TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// SnapshotRepository stores the whole course collection as a single
// named slot in a local SQLite database. It is the durable counterpart
// of the in-memory store: write the whole payload, read the whole
// payload, nothing else.
type SnapshotRepository struct {
	db   *sql.DB
	slot string
}

// NewSnapshotRepository opens (or creates) the SQLite database at the
// given path and prepares the snapshot table.
func NewSnapshotRepository(path, slot string) (*SnapshotRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to snapshot database: %w", err)
	}

	// SQLite allows one writer at a time; keep a single connection to
	// avoid SQLITE_BUSY errors.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply snapshot schema: %w", err)
	}

	return &SnapshotRepository{db: db, slot: slot}, nil
}

// Load reads the snapshot payload for the configured slot.
// The second return value is false when no snapshot has been written yet.
func (r *SnapshotRepository) Load(ctx context.Context) ([]byte, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE slot = ?`, r.slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading snapshot: %w", err)
	}
	return payload, true, nil
}

// Save writes the snapshot payload for the configured slot, replacing
// any previous snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		r.slot, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("error writing snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SnapshotRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

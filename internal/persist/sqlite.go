package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// rootKey is the fixed slot under which the snapshot is stored.
const rootKey = "sprintdeck/state"

// slotDDL creates the single key-value table holding serialized slots.
const slotDDL = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SlotStore is a sqlite-backed Adapter keeping the snapshot under a
// fixed root key.
type SlotStore struct {
	db *sql.DB
}

// Open opens or creates the slot database at the given path. It sets
// pragmas for WAL mode and busy timeout and initializes the schema.
func Open(path string) (*SlotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening slot database: %w", err)
	}

	// SQLite is single-writer; limit the pool to one connection to avoid
	// lock contention and make the single-connection intent explicit.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(slotDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing slot schema: %w", err)
	}

	return &SlotStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SlotStore) Close() error {
	return s.db.Close()
}

// Load reads the snapshot from the root slot. A missing row, a corrupt
// blob, or an unknown layout version all load as "not found" so a bad
// slot never blocks startup.
func (s *SlotStore) Load() (Snapshot, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, rootKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("reading slot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return Snapshot{}, false, nil
	}
	if snap.Version != snapshotVersion {
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Save serializes the snapshot into the root slot, replacing any
// previous value.
func (s *SlotStore) Save(snap Snapshot) error {
	snap.Version = snapshotVersion
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		rootKey, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("writing slot: %w", err)
	}
	return nil
}

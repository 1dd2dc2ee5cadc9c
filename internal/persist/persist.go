// Package persist stores the durable slice of application state. Only
// the auth session survives restarts; every other collection is
// re-seeded from fixtures at startup. The snapshot is a JSON blob kept
// in a single-key sqlite slot so the on-disk footprint is one file.
package persist

import "github.com/sprintdeck/sprintdeck/internal/model"

// snapshotVersion is bumped when the snapshot layout changes. Older or
// unknown versions load as empty rather than failing startup.
const snapshotVersion = 1

// Snapshot is the persisted subset of store state.
type Snapshot struct {
	Version int            `json:"version"`
	Session *model.Session `json:"session,omitempty"`
}

// NewSnapshot returns a snapshot at the current layout version.
func NewSnapshot(session *model.Session) Snapshot {
	return Snapshot{Version: snapshotVersion, Session: session}
}

// Adapter is the persistence collaborator the application consumes.
// Load reports found=false on first run; implementations must treat a
// missing or unreadable slot as "no persisted state", never as a fatal
// error. Save is best-effort: callers log failures and move on.
type Adapter interface {
	Load() (Snapshot, bool, error)
	Save(Snapshot) error
}

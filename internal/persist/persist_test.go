package persist

import (
	"testing"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

func mustOpen(t *testing.T) *SlotStore {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptyOnFirstRun(t *testing.T) {
	s := mustOpen(t)

	snap, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("Load on empty slot reported found=true")
	}
	if snap.Session != nil {
		t.Errorf("empty snapshot has session: %+v", snap.Session)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := mustOpen(t)

	session := &model.Session{
		User: model.User{
			ID:        "u1",
			Name:      "Dana Reyes",
			Email:     "dana@example.com",
			Role:      "admin",
			CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		Token: "tok-123",
	}

	if err := s.Save(NewSnapshot(session)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snap, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("Load reported found=false after Save")
	}
	if snap.Session == nil {
		t.Fatal("loaded snapshot has no session")
	}
	if snap.Session.User.Email != "dana@example.com" || snap.Session.Token != "tok-123" {
		t.Errorf("round trip mismatch: %+v", snap.Session)
	}
	if !snap.Session.User.CreatedAt.Equal(session.User.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", snap.Session.User.CreatedAt, session.User.CreatedAt)
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	s := mustOpen(t)

	first := &model.Session{User: model.User{ID: "u1"}, Token: "old"}
	second := &model.Session{User: model.User{ID: "u2"}, Token: "new"}

	if err := s.Save(NewSnapshot(first)); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := s.Save(NewSnapshot(second)); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	snap, found, err := s.Load()
	if err != nil || !found {
		t.Fatalf("Load = (%v, %v), want found", err, found)
	}
	if snap.Session.User.ID != "u2" || snap.Session.Token != "new" {
		t.Errorf("loaded stale snapshot: %+v", snap.Session)
	}
}

func TestClearedSessionPersists(t *testing.T) {
	s := mustOpen(t)

	if err := s.Save(NewSnapshot(&model.Session{Token: "tok"})); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Logging out persists an empty session, not a missing slot.
	if err := s.Save(NewSnapshot(nil)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snap, found, err := s.Load()
	if err != nil || !found {
		t.Fatalf("Load = (%v, %v), want found", err, found)
	}
	if snap.Session != nil {
		t.Errorf("session survived logout: %+v", snap.Session)
	}
}

func TestCorruptSlotLoadsAsEmpty(t *testing.T) {
	s := mustOpen(t)

	_, err := s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)`,
		rootKey, "{not json", "2026-03-01T00:00:00Z",
	)
	if err != nil {
		t.Fatalf("seeding corrupt slot: %v", err)
	}

	snap, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load on corrupt slot failed: %v", err)
	}
	if found || snap.Session != nil {
		t.Errorf("corrupt slot loaded as found: %+v", snap)
	}
}

func TestUnknownVersionLoadsAsEmpty(t *testing.T) {
	s := mustOpen(t)

	_, err := s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)`,
		rootKey, `{"version":99,"session":{"user":{"id":"u1"},"token":"t"}}`, "2026-03-01T00:00:00Z",
	)
	if err != nil {
		t.Fatalf("seeding future slot: %v", err)
	}

	_, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("future-version slot loaded as found")
	}
}

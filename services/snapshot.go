// Package services file: services/snapshot.go
package services

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go-officials-portal/logger"
	"go-officials-portal/models"
)

// ---------------- snapshot persistence ----------------

// storeSnapshot is the subset of store state persisted across restarts.
// Entity collections are deliberately excluded; they reset to seed data on
// every restart.
type storeSnapshot struct {
	Flags          map[string]bool   `json:"flags"`
	Branding       models.Branding   `json:"branding"`
	RateLimits     models.RateLimits `json:"rateLimits"`
	EventNotes     map[string]string `json:"eventNotes"`
	ActiveUserID   string            `json:"activeUserId"`
	CurrentRole    models.Role       `json:"currentRole"`
	CurrentPersona string            `json:"currentPersona"`
}

// loadSnapshot overlays the persisted subset onto the freshly seeded store.
// A missing or unreadable snapshot is not an error; the store just starts
// from seed state. Caller must hold the mutex (or be the constructor).
func (s *DemoStore) loadSnapshot() {
	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn.Printf("loadSnapshot: could not read %s: %v", s.snapshotPath, err)
		}
		return
	}

	var snap storeSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Error.Printf("loadSnapshot: could not parse %s: %v", s.snapshotPath, err)
		return
	}

	if snap.Flags != nil {
		s.flags = snap.Flags
	}
	if snap.EventNotes != nil {
		s.eventNotes = snap.EventNotes
	}
	if snap.Branding.OrgName != "" {
		s.branding = snap.Branding
	}
	if snap.RateLimits.RequestsPerHour > 0 {
		s.rateLimits = snap.RateLimits
	}
	if snap.ActiveUserID != "" {
		s.activeUserID = snap.ActiveUserID
	}
	if snap.CurrentRole != "" {
		s.currentRole = models.NormalizeRole(string(snap.CurrentRole))
	}
	if snap.CurrentPersona != "" {
		s.currentPersona = snap.CurrentPersona
	}

	logger.Info.Printf("loadSnapshot: restored persisted state from %s", s.snapshotPath)
}

// persist writes the persisted subset back to disk. Write failures are
// logged and swallowed; persistence is best effort. Caller must hold the
// mutex. A store built without a snapshot path skips persistence.
func (s *DemoStore) persist() {
	if s.snapshotPath == "" {
		return
	}

	snap := storeSnapshot{
		Flags:          s.flags,
		Branding:       s.branding,
		RateLimits:     s.rateLimits,
		EventNotes:     s.eventNotes,
		ActiveUserID:   s.activeUserID,
		CurrentRole:    s.currentRole,
		CurrentPersona: s.currentPersona,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		logger.Error.Printf("persist: could not encode snapshot: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0700); err != nil {
		logger.Error.Printf("persist: could not create snapshot dir: %v", err)
		return
	}
	if err := os.WriteFile(s.snapshotPath, data, 0600); err != nil {
		logger.Error.Printf("persist: could not write %s: %v", s.snapshotPath, err)
	}
}

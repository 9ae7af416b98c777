// Package services holds the portal's demo state and its operations.
// File: services/store.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"go-officials-portal/logger"
	"go-officials-portal/models"
)

// ---------------- demo store ----------------

// DemoStore is the single mutable source of truth for all demo collections
// and the active persona. It is constructed explicitly and injected into the
// controllers; there is no package-level instance.
//
// Gin serves handlers concurrently, so every operation takes the store mutex
// for the duration of its read-modify-write.
type DemoStore struct {
	mu sync.Mutex

	leagues       []models.League
	schools       []models.School
	teams         []models.Team
	venues        []models.Venue
	users         []models.User
	events        []models.Event
	requests      []models.Request
	assignments   []models.Assignment
	announcements []models.Announcement

	flags      map[string]bool
	eventNotes map[string]string
	branding   models.Branding
	rateLimits models.RateLimits

	personas       []models.Persona
	currentPersona string
	activeUserID   string
	currentRole    models.Role

	activity *activityLog

	snapshotPath string
	onActivity   func(models.ActivityEntry)

	// test seams
	now   func() time.Time
	newID func() string
}

// NewDemoStore builds a store from seed data, then overlays the persisted
// snapshot (if any) from snapshotPath. An empty snapshotPath disables
// persistence entirely.
func NewDemoStore(snapshotPath string) *DemoStore {
	s := &DemoStore{
		snapshotPath: snapshotPath,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
		activity:     newActivityLog(ActivityLogCap),
	}
	s.applySeed(defaultSeed(s.now()))
	if snapshotPath != "" {
		s.loadSnapshot()
	}
	logger.Info.Printf("NewDemoStore: store initialized (persona=%s role=%s)", s.currentPersona, s.currentRole)
	return s
}

// applySeed resets every collection and the active identity to seed state.
// Caller must hold the mutex (or be the constructor).
func (s *DemoStore) applySeed(seed seedData) {
	s.leagues = seed.leagues
	s.schools = seed.schools
	s.teams = seed.teams
	s.venues = seed.venues
	s.users = seed.users
	s.events = seed.events
	s.requests = seed.requests
	s.assignments = seed.assignments
	s.announcements = seed.announcements
	s.flags = seed.flags
	s.eventNotes = make(map[string]string)
	s.branding = seed.branding
	s.rateLimits = seed.rateLimits
	s.personas = seed.personas

	// the demo opens as the Athletic Director persona
	s.currentPersona = "Athletic Director"
	s.activeUserID = "user-ad-1"
	s.currentRole = models.RoleAD
}

// SetActivityHook registers a callback invoked for every new activity entry.
// Used to push entries to the live feed; nil disables the hook.
func (s *DemoStore) SetActivityHook(hook func(models.ActivityEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onActivity = hook
}

// appendActivity records one entry describing a mutation. Caller must hold
// the mutex.
func (s *DemoStore) appendActivity(message string) models.ActivityEntry {
	entry := models.ActivityEntry{
		ID:        "act-" + s.newID(),
		Message:   message,
		Timestamp: s.now(),
	}
	s.activity.push(entry)
	if s.onActivity != nil {
		s.onActivity(entry)
	}
	return entry
}

// actorName resolves the display name for the acting user, falling back to
// the current role when the persona and user diverge or no user is active.
func (s *DemoStore) actorName() string {
	for _, u := range s.users {
		if u.ID == s.activeUserID {
			return u.Name
		}
	}
	return string(s.currentRole)
}

func (s *DemoStore) findUser(id string) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *DemoStore) findEvent(id string) (models.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// ---------------- selectors ----------------

// CurrentRole returns the acting role.
func (s *DemoStore) CurrentRole() models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRole
}

// CurrentPersona returns the active persona label.
func (s *DemoStore) CurrentPersona() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPersona
}

// ActiveUser returns the active user record, if one is set.
func (s *DemoStore) ActiveUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(s.activeUserID)
}

// Personas returns the preset persona list.
func (s *DemoStore) Personas() []models.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Persona, len(s.personas))
	copy(out, s.personas)
	return out
}

// Users returns a copy of the user collection.
func (s *DemoStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Events returns a copy of the event collection, most recent first.
func (s *DemoStore) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventByID looks up one event.
func (s *DemoStore) EventByID(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findEvent(id)
}

// Requests returns a copy of the request collection, most recent first.
func (s *DemoStore) Requests() []models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestByID looks up one request.
func (s *DemoStore) RequestByID(id string) (models.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return models.Request{}, false
}

// Assignments returns a copy of the assignment collection, most recent first.
func (s *DemoStore) Assignments() []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// Announcements returns a copy of the announcements.
func (s *DemoStore) Announcements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}

// Leagues returns a copy of the league collection.
func (s *DemoStore) Leagues() []models.League {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.League, len(s.leagues))
	copy(out, s.leagues)
	return out
}

// Schools returns a copy of the school collection.
func (s *DemoStore) Schools() []models.School {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.School, len(s.schools))
	copy(out, s.schools)
	return out
}

// Teams returns a copy of the team collection.
func (s *DemoStore) Teams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// Venues returns a copy of the venue collection.
func (s *DemoStore) Venues() []models.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Venue, len(s.venues))
	copy(out, s.venues)
	return out
}

// Activity returns the activity feed, newest first, capped at ActivityLogCap.
func (s *DemoStore) Activity() []models.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activity.snapshot()
}

// Flags returns a copy of the feature flag map.
func (s *DemoStore) Flags() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.flags))
	for k, v := range s.flags {
		out[k] = v
	}
	return out
}

// Branding returns the current branding settings.
func (s *DemoStore) Branding() models.Branding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.branding
}

// RateLimits returns the current rate limit settings.
func (s *DemoStore) RateLimits() models.RateLimits {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rateLimits
}

// EventNotes returns the per-event notes override, if any.
func (s *DemoStore) EventNotes(eventID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes, ok := s.eventNotes[eventID]
	return notes, ok
}

// ---------------- generic mutations ----------------

// LogAction appends an arbitrary activity entry. Used by callers that want a
// feed line without a dedicated operation.
func (s *DemoStore) LogAction(message string) models.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Debug.Printf("LogAction: %s", message)
	return s.appendActivity(message)
}

// Wipe empties every entity collection. Settings and the active identity
// survive; the wipe itself is recorded in the feed.
func (s *DemoStore) Wipe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leagues = nil
	s.schools = nil
	s.teams = nil
	s.venues = nil
	s.users = nil
	s.events = nil
	s.requests = nil
	s.assignments = nil
	s.announcements = nil
	logger.Warn.Printf("Wipe: all demo collections cleared by %s", s.currentRole)
	s.appendActivity("All demo data wiped")
}

// Reseed restores every collection and the active identity to seed state and
// clears the feed, leaving a single entry describing the reset.
func (s *DemoStore) Reseed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applySeed(defaultSeed(s.now()))
	s.activity.clear()
	logger.Info.Println("Reseed: demo data restored to seed state")
	s.appendActivity("Demo data reset to seed state")
	s.persist()
}

// Package models file: models/entities.go
package models

import "time"

// ----------------------- user model -----------------------

// User is a portal account. Mutated only through explicit role-update
// operations restricted to a super-admin actor.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         Role     `json:"role"`
	Status       string   `json:"status"`
	Sports       []string `json:"sports"`
	Availability []string `json:"availability"`
}

// ----------------------- reference collections -----------------------

// League groups schools for scheduling purposes.
type League struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

// School is a member institution.
type School struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Mascot   string `json:"mascot"`
	LeagueID string `json:"leagueId"`
}

// Team is a school's squad for one sport and level.
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SchoolID string `json:"schoolId"`
	Sport    string `json:"sport"`
	Level    string `json:"level"`
}

// Venue is where events take place.
type Venue struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ----------------------- event model -----------------------

// Event is a scheduled contest. Immutable once created, except for the
// per-event notes overrides held by the store.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	LeagueID  string    `json:"leagueId"`
	SchoolID  string    `json:"schoolId"`
	TeamID    string    `json:"teamId"`
	VenueID   string    `json:"venueId"`
	Sport     string    `json:"sport"`
	Level     string    `json:"level"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedBy string    `json:"createdBy"`
}

// ----------------------- request model -----------------------

// RequestStatus is the lifecycle state of a work request.
type RequestStatus string

// PENDING is the only non-terminal state; APPROVED and DECLINED are terminal.
const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestDeclined RequestStatus = "DECLINED"
)

// Request is an official's ask to work an event.
type Request struct {
	ID          string        `json:"id"`
	EventID     string        `json:"eventId"`
	UserID      string        `json:"userId"`
	Status      RequestStatus `json:"status"`
	SubmittedAt time.Time     `json:"submittedAt"`
	Message     string        `json:"message"`
}

// Assignment records an approved official for an event. Created only as a
// side effect of approving a request, never directly.
type Assignment struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	UserID      string    `json:"userId"`
	Position    string    `json:"position"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

// ----------------------- activity model -----------------------

// ActivityEntry is one human-readable line in the portal activity feed.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ----------------------- announcements -----------------------

// Announcement is a broadcast message shown on the dashboard.
type Announcement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	PostedAt time.Time `json:"postedAt"`
	Audience string    `json:"audience"`
}

// ----------------------- settings -----------------------

// Branding holds the organization's display settings. Persisted.
type Branding struct {
	OrgName      string `json:"orgName"`
	PrimaryColor string `json:"primaryColor"`
	LogoURL      string `json:"logoUrl"`
}

// RateLimits caps request activity. Persisted.
type RateLimits struct {
	RequestsPerHour int `json:"requestsPerHour"`
	BulkBatchSize   int `json:"bulkBatchSize"`
}

// ----------------------- persona model -----------------------

// Persona is a preset identity the demo can switch to.
type Persona struct {
	Label  string `json:"label"`
	UserID string `json:"userId"`
}

// Package services file: services/seed.go
package services

import (
	"time"

	"go-officials-portal/models"
)

// seedData is the deterministic starting state for every fresh store.
// Entity collections are not persisted between runs; they reset to this
// data on restart.
type seedData struct {
	leagues       []models.League
	schools       []models.School
	teams         []models.Team
	venues        []models.Venue
	users         []models.User
	events        []models.Event
	requests      []models.Request
	assignments   []models.Assignment
	announcements []models.Announcement
	flags         map[string]bool
	personas      []models.Persona
	branding      models.Branding
	rateLimits    models.RateLimits
}

func defaultSeed(now time.Time) seedData {
	return seedData{
		leagues: []models.League{
			{ID: "league-1", Name: "Metro Athletic Conference", Sport: "Multi-sport"},
		},
		schools: []models.School{
			{ID: "school-1", Name: "Riverside High", City: "Riverside", Mascot: "Hawks", LeagueID: "league-1"},
			{ID: "school-2", Name: "Hillcrest High", City: "Hillcrest", Mascot: "Lions", LeagueID: "league-1"},
		},
		teams: []models.Team{
			{ID: "team-1", Name: "Riverside Hawks Varsity", SchoolID: "school-1", Sport: "Basketball", Level: "Varsity"},
			{ID: "team-2", Name: "Hillcrest Lions Varsity", SchoolID: "school-2", Sport: "Basketball", Level: "Varsity"},
		},
		venues: []models.Venue{
			{ID: "venue-1", Name: "Riverside Gymnasium", Address: "100 River Rd"},
		},
		users: []models.User{
			{ID: "user-super-1", Name: "Sam Porter", Email: "sam@metroathletics.org", Role: models.RoleSuperAdmin, Status: "active"},
			{ID: "user-admin-1", Name: "Alex Reyes", Email: "alex@metroathletics.org", Role: models.RoleAdmin, Status: "active"},
			{ID: "user-ad-1", Name: "Dana Whitfield", Email: "dana@riversidehigh.edu", Role: models.RoleAD, Status: "active"},
			{ID: "user-coach-1", Name: "Chris Okafor", Email: "chris@riversidehigh.edu", Role: models.RoleCoach, Status: "active",
				Sports: []string{"Basketball"}},
			{ID: "user-official-1", Name: "Jordan Lee", Email: "jordan.lee@officials.org", Role: models.RoleOfficial, Status: "active",
				Sports: []string{"Basketball", "Volleyball"}, Availability: []string{"weeknights", "weekends"}},
		},
		events: []models.Event{
			{
				ID: "event-1", Title: "Riverside Hawks vs Hillcrest Lions",
				LeagueID: "league-1", SchoolID: "school-1", TeamID: "team-1", VenueID: "venue-1",
				Sport: "Basketball", Level: "Varsity",
				Start: now.Add(48 * time.Hour), End: now.Add(50 * time.Hour),
				Status: "scheduled", CreatedBy: "user-ad-1",
			},
			{
				ID: "event-2", Title: "Hillcrest Lions vs Riverside Hawks",
				LeagueID: "league-1", SchoolID: "school-2", TeamID: "team-2", VenueID: "venue-1",
				Sport: "Basketball", Level: "Varsity",
				Start: now.Add(96 * time.Hour), End: now.Add(98 * time.Hour),
				Status: "scheduled", CreatedBy: "user-ad-1",
			},
		},
		requests: []models.Request{
			{
				ID: "request-1", EventID: "event-1", UserID: "user-official-1",
				Status: models.RequestPending, SubmittedAt: now.Add(-2 * time.Hour),
				Message: "Available to officiate this game.",
			},
		},
		announcements: []models.Announcement{
			{
				ID: "ann-1", Title: "Welcome to the portal",
				Body:     "Schedule, request, and confirm officiating work in one place.",
				PostedAt: now.Add(-24 * time.Hour), Audience: "all",
			},
		},
		flags: map[string]bool{
			"liveFeed":        true,
			"bulkActions":     true,
			"sampleGenerator": true,
		},
		personas: []models.Persona{
			{Label: "Super Admin", UserID: "user-super-1"},
			{Label: "League Admin", UserID: "user-admin-1"},
			{Label: "Athletic Director", UserID: "user-ad-1"},
			{Label: "Coach", UserID: "user-coach-1"},
			{Label: "Official", UserID: "user-official-1"},
		},
		branding: models.Branding{
			OrgName:      "Metro Athletic Conference",
			PrimaryColor: "#1d4ed8",
		},
		rateLimits: models.RateLimits{
			RequestsPerHour: 20,
			BulkBatchSize:   25,
		},
	}
}

// Package services file: services/sample_service.go
package services

import (
	"fmt"
	"time"

	"go-officials-portal/logger"
	"go-officials-portal/models"
)

// ---------------- sample data generation ----------------

// Fixed palettes cycled by index. Shape is deterministic; only the generated
// ids are not.
var (
	sampleNames   = []string{"Westfield", "Oakmont", "Lakeside", "Summit", "Brookdale"}
	sampleCities  = []string{"Westfield", "Oakmont", "Lakeside", "Summit Park", "Brookdale"}
	sampleMascots = []string{"Wolves", "Eagles", "Pioneers", "Bears", "Chargers"}
	sampleSports  = []string{"Basketball", "Volleyball", "Soccer", "Wrestling"}
)

// GenerateSample adds count synthetic schools, teams, and events to the
// store, cycling through the fixed palettes. Generated events are scheduled
// at now + i hour increments. Purely additive: nothing is removed or
// deduplicated. One summary entry covers the whole batch.
func (s *DemoStore) GenerateSample(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count <= 0 {
		logger.Warn.Printf("GenerateSample: ignoring non-positive count %d", count)
		return
	}

	now := s.now()
	for i := 0; i < count; i++ {
		name := sampleNames[i%len(sampleNames)]
		city := sampleCities[i%len(sampleCities)]
		mascot := sampleMascots[i%len(sampleMascots)]
		sport := sampleSports[i%len(sampleSports)]

		school := models.School{
			ID:     "school-" + s.newID(),
			Name:   fmt.Sprintf("%s High", name),
			City:   city,
			Mascot: mascot,
		}
		team := models.Team{
			ID:       "team-" + s.newID(),
			Name:     fmt.Sprintf("%s %s Varsity", name, mascot),
			SchoolID: school.ID,
			Sport:    sport,
			Level:    "Varsity",
		}
		event := models.Event{
			ID:       "event-" + s.newID(),
			Title:    fmt.Sprintf("%s %s Scrimmage", name, mascot),
			SchoolID: school.ID,
			TeamID:   team.ID,
			Sport:    sport,
			Level:    "Varsity",
			Start:    now.Add(time.Duration(i) * time.Hour),
			End:      now.Add(time.Duration(i)*time.Hour + 2*time.Hour),
			Status:   "scheduled",
		}

		s.schools = append([]models.School{school}, s.schools...)
		s.teams = append([]models.Team{team}, s.teams...)
		s.events = append([]models.Event{event}, s.events...)
	}

	logger.Info.Printf("GenerateSample: generated %d schools/teams/events", count)
	s.appendActivity(fmt.Sprintf("Generated %d sample schools, teams, and events", count))
}

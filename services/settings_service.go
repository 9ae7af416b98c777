// Package services file: services/settings_service.go
package services

import (
	"fmt"

	"go-officials-portal/logger"
	"go-officials-portal/models"
)

// ---------------- settings mutations ----------------

// ToggleFlag flips a feature flag in place and returns the new value.
// Toggling a flag that was never set creates it as enabled.
func (s *DemoStore) ToggleFlag(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[name] = !s.flags[name]
	state := "disabled"
	if s.flags[name] {
		state = "enabled"
	}

	logger.Info.Printf("ToggleFlag: %s %s", name, state)
	s.appendActivity(fmt.Sprintf("Feature flag %s %s", name, state))
	s.persist()
	return s.flags[name]
}

// SetBranding replaces the branding settings.
func (s *DemoStore) SetBranding(branding models.Branding) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.branding = branding
	logger.Info.Printf("SetBranding: org=%q", branding.OrgName)
	s.appendActivity(fmt.Sprintf("Branding updated for %s", branding.OrgName))
	s.persist()
}

// SetRateLimits replaces the rate limit settings.
func (s *DemoStore) SetRateLimits(limits models.RateLimits) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rateLimits = limits
	logger.Info.Printf("SetRateLimits: %d/hour, batch %d", limits.RequestsPerHour, limits.BulkBatchSize)
	s.appendActivity(fmt.Sprintf("Rate limits set to %d requests/hour, batches of %d",
		limits.RequestsPerHour, limits.BulkBatchSize))
	s.persist()
}

// UpdateNotes sets the per-event notes override. A missing event is silently
// ignored with ErrNotFound.
func (s *DemoStore) UpdateNotes(eventID, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.findEvent(eventID)
	if !ok {
		logger.Warn.Printf("UpdateNotes: unknown event %s", eventID)
		return ErrNotFound
	}

	s.eventNotes[eventID] = notes
	logger.Info.Printf("UpdateNotes: notes updated for event %s", eventID)
	s.appendActivity(fmt.Sprintf("Notes updated for %s", event.Title))
	s.persist()
	return nil
}

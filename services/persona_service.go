// Package services file: services/persona_service.go
package services

import (
	"fmt"

	"go-officials-portal/logger"
	"go-officials-portal/models"
)

// ---------------- persona switching ----------------

// SetPersona switches the active identity to one of the preset personas.
// An unknown label leaves the persona, active user, and role untouched and
// returns ErrNotFound.
func (s *DemoStore) SetPersona(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var persona models.Persona
	found := false
	for _, p := range s.personas {
		if p.Label == label {
			persona = p
			found = true
			break
		}
	}
	if !found {
		logger.Warn.Printf("SetPersona: unknown persona label %q", label)
		return ErrNotFound
	}

	user, ok := s.findUser(persona.UserID)
	if !ok {
		logger.Error.Printf("SetPersona: persona %q points at missing user %s", label, persona.UserID)
		return ErrNotFound
	}

	s.currentPersona = persona.Label
	s.activeUserID = user.ID
	s.currentRole = models.NormalizeRole(string(user.Role))

	logger.Info.Printf("SetPersona: switched to %q (user=%s role=%s)", label, user.ID, s.currentRole)
	s.appendActivity(fmt.Sprintf("Switched persona to %s (%s)", persona.Label, user.Name))
	s.persist()
	return nil
}

// SetRole overrides the current role without changing the active persona or
// user. The override may diverge from the active user's stored role; this is
// a demo-only escape hatch for exercising role-gated screens.
func (s *DemoStore) SetRole(role string) models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := models.NormalizeRole(role)
	s.currentRole = normalized

	logger.Info.Printf("SetRole: current role overridden to %s", normalized)
	s.appendActivity(fmt.Sprintf("Role override set to %s", normalized))
	s.persist()
	return normalized
}

// UpdateUserRole changes a stored user's role. Restricted to a SUPER_ADMIN
// actor; anyone else gets a permission-denied feed entry. A missing user is
// silently ignored.
func (s *DemoStore) UpdateUserRole(userID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentRole != models.RoleSuperAdmin {
		logger.Warn.Printf("UpdateUserRole: role %s attempted to change user roles", s.currentRole)
		s.appendActivity(fmt.Sprintf("Permission denied: %s cannot change user roles", s.currentRole))
		return ErrPermissionDenied
	}

	normalized := models.NormalizeRole(role)
	for i, u := range s.users {
		if u.ID == userID {
			s.users[i].Role = normalized
			logger.Info.Printf("UpdateUserRole: user %s role set to %s", userID, normalized)
			s.appendActivity(fmt.Sprintf("%s changed %s's role to %s", s.actorName(), u.Name, normalized))
			return nil
		}
	}

	logger.Warn.Printf("UpdateUserRole: unknown user %s", userID)
	return ErrNotFound
}

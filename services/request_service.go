// Package services file: services/request_service.go
package services

import (
	"fmt"

	"go-officials-portal/logger"
	"go-officials-portal/models"
)

// ---------------- request lifecycle ----------------

// Requests move PENDING -> APPROVED or PENDING -> DECLINED, exactly once.
// There is no transition out of a terminal state and no re-open operation.

// RequestToWork submits a new PENDING work request for the given event on
// behalf of the acting user.
//
// Only the OFFICIAL role may submit; any other role gets a permission-denied
// feed entry and ErrPermissionDenied. A second pending request for the same
// (user, event) pair is rejected with a feed entry and ErrDuplicateRequest.
// A missing event is silently ignored with ErrNotFound.
func (s *DemoStore) RequestToWork(eventID string) (models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentRole != models.RoleOfficial {
		logger.Warn.Printf("RequestToWork: role %s attempted to submit a request", s.currentRole)
		s.appendActivity(fmt.Sprintf("Permission denied: %s cannot submit work requests", s.currentRole))
		return models.Request{}, ErrPermissionDenied
	}

	event, ok := s.findEvent(eventID)
	if !ok {
		logger.Warn.Printf("RequestToWork: unknown event %s", eventID)
		return models.Request{}, ErrNotFound
	}

	actor := s.actorName()
	for _, r := range s.requests {
		if r.UserID == s.activeUserID && r.EventID == eventID && r.Status == models.RequestPending {
			logger.Info.Printf("RequestToWork: duplicate pending request for user=%s event=%s", s.activeUserID, eventID)
			s.appendActivity(fmt.Sprintf("Duplicate request ignored: %s already has a pending request for %s", actor, event.Title))
			return models.Request{}, ErrDuplicateRequest
		}
	}

	request := models.Request{
		ID:          "req-" + s.newID(),
		EventID:     eventID,
		UserID:      s.activeUserID,
		Status:      models.RequestPending,
		SubmittedAt: s.now(),
		Message:     "Available to officiate this event.",
	}
	// most-recent-first ordering drives the request list display
	s.requests = append([]models.Request{request}, s.requests...)

	logger.Info.Printf("RequestToWork: %s requested to work event %s", s.activeUserID, eventID)
	s.appendActivity(fmt.Sprintf("%s requested to work %s", actor, event.Title))
	return request, nil
}

// ApproveRequest transitions a PENDING request to APPROVED and creates one
// assignment for the requesting official, positioned by the event's sport.
//
// Only elevated roles (SUPER_ADMIN, ADMIN, AD) may approve. A missing or
// non-PENDING request, or a dangling event/user reference, changes nothing
// and returns ErrNotFound without a feed entry.
func (s *DemoStore) ApproveRequest(requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveRequest(requestID, true)
}

// DeclineRequest transitions a PENDING request to DECLINED. Same gating as
// ApproveRequest; no assignment is created.
func (s *DemoStore) DeclineRequest(requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveRequest(requestID, false)
}

// ApproveRequests applies ApproveRequest to each id in input order and
// returns the number that succeeded. Partial application is expected; there
// is no rollback.
func (s *DemoStore) ApproveRequests(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := 0
	for _, id := range ids {
		if err := s.resolveRequest(id, true); err == nil {
			applied++
		}
	}
	logger.Info.Printf("ApproveRequests: applied %d of %d", applied, len(ids))
	return applied
}

// DeclineRequests applies DeclineRequest to each id in input order and
// returns the number that succeeded.
func (s *DemoStore) DeclineRequests(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := 0
	for _, id := range ids {
		if err := s.resolveRequest(id, false); err == nil {
			applied++
		}
	}
	logger.Info.Printf("DeclineRequests: applied %d of %d", applied, len(ids))
	return applied
}

// resolveRequest holds the shared approve/decline transition. Caller must
// hold the mutex.
func (s *DemoStore) resolveRequest(requestID string, approve bool) error {
	if !s.currentRole.IsElevated() {
		logger.Warn.Printf("resolveRequest: role %s attempted to resolve request %s", s.currentRole, requestID)
		s.appendActivity(fmt.Sprintf("Permission denied: %s cannot approve or decline requests", s.currentRole))
		return ErrPermissionDenied
	}

	idx := -1
	for i, r := range s.requests {
		if r.ID == requestID {
			idx = i
			break
		}
	}
	if idx == -1 || s.requests[idx].Status != models.RequestPending {
		// silent: the UI only offers live pending ids
		return ErrNotFound
	}

	request := s.requests[idx]
	event, eventOK := s.findEvent(request.EventID)
	user, userOK := s.findUser(request.UserID)
	if !eventOK || !userOK {
		logger.Error.Printf("resolveRequest: dangling reference on request %s (event=%v user=%v)", requestID, eventOK, userOK)
		return ErrNotFound
	}

	actor := s.actorName()
	if approve {
		s.requests[idx].Status = models.RequestApproved
		assignment := models.Assignment{
			ID:          "asg-" + s.newID(),
			EventID:     event.ID,
			UserID:      user.ID,
			Position:    fmt.Sprintf("%s Official", event.Sport),
			ConfirmedAt: s.now(),
		}
		s.assignments = append([]models.Assignment{assignment}, s.assignments...)
		logger.Info.Printf("resolveRequest: %s approved request %s", s.activeUserID, requestID)
		s.appendActivity(fmt.Sprintf("%s approved %s for %s", actor, user.Name, event.Title))
		return nil
	}

	s.requests[idx].Status = models.RequestDeclined
	logger.Info.Printf("resolveRequest: %s declined request %s", s.activeUserID, requestID)
	s.appendActivity(fmt.Sprintf("%s declined %s for %s", actor, user.Name, event.Title))
	return nil
}

// file: services/request_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-officials-portal/models"
	"go-officials-portal/services"
)

// newStore builds a fresh store with persistence disabled. Seed state: the
// Athletic Director persona is active and request-1 is PENDING for event-1
// on behalf of user-official-1.
func newStore(t *testing.T) *services.DemoStore {
	t.Helper()
	return services.NewDemoStore("")
}

func TestRequestToWork_CreatesPendingRequest(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetPersona("Official"))

	request, err := store.RequestToWork("event-2")
	require.NoError(t, err)

	assert.Equal(t, models.RequestPending, request.Status)
	assert.Equal(t, "event-2", request.EventID)
	assert.Equal(t, "user-official-1", request.UserID)
	assert.NotEmpty(t, request.ID)
	assert.False(t, request.SubmittedAt.IsZero())

	// most-recent-first ordering
	requests := store.Requests()
	assert.Equal(t, request.ID, requests[0].ID)
}

func TestRequestToWork_RequiresOfficialRole(t *testing.T) {
	store := newStore(t) // acting role is AD

	before := store.Requests()
	_, err := store.RequestToWork("event-2")

	assert.ErrorIs(t, err, services.ErrPermissionDenied)
	assert.Equal(t, before, store.Requests(), "requests should be untouched")

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "Permission denied")
}

func TestRequestToWork_DuplicatePendingRejected(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetPersona("Official"))

	// request-1 is already PENDING for (user-official-1, event-1) in seed
	_, err := store.RequestToWork("event-1")
	assert.ErrorIs(t, err, services.ErrDuplicateRequest)

	pending := 0
	for _, r := range store.Requests() {
		if r.UserID == "user-official-1" && r.EventID == "event-1" && r.Status == models.RequestPending {
			pending++
		}
	}
	assert.Equal(t, 1, pending, "at most one pending request per (user, event) pair")

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "Duplicate request")
}

func TestRequestToWork_PendingUniquenessProperty(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetPersona("Official"))

	// hammer the same events repeatedly
	targets := []string{"event-1", "event-2", "event-1", "event-2", "event-2"}
	for _, id := range targets {
		_, _ = store.RequestToWork(id)
	}

	seen := make(map[string]int)
	for _, r := range store.Requests() {
		if r.Status == models.RequestPending {
			seen[r.UserID+"/"+r.EventID]++
		}
	}
	for pair, count := range seen {
		assert.Equal(t, 1, count, "pair %s has %d pending requests", pair, count)
	}
}

func TestRequestToWork_UnknownEventSilentlyIgnored(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetPersona("Official"))

	activityBefore := len(store.Activity())
	_, err := store.RequestToWork("event-does-not-exist")

	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Len(t, store.Activity(), activityBefore, "referential misses are not user actions to report")
}

// Spec scenario: AD approves request-1 → APPROVED plus one assignment whose
// position carries the event's sport.
func TestApproveRequest_ApprovesAndAssigns(t *testing.T) {
	store := newStore(t) // acting role is AD

	assignmentsBefore := len(store.Assignments())
	require.NoError(t, store.ApproveRequest("request-1"))

	request, ok := store.RequestByID("request-1")
	require.True(t, ok)
	assert.Equal(t, models.RequestApproved, request.Status)

	assignments := store.Assignments()
	require.Len(t, assignments, assignmentsBefore+1)
	assert.Equal(t, "event-1", assignments[0].EventID)
	assert.Equal(t, "user-official-1", assignments[0].UserID)
	assert.Contains(t, assignments[0].Position, "Basketball")
	assert.False(t, assignments[0].ConfirmedAt.IsZero())

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "approved")
	assert.Contains(t, activity[0].Message, "Jordan Lee")
	assert.Contains(t, activity[0].Message, "Riverside Hawks vs Hillcrest Lions")
}

func TestApproveRequest_TerminalStateIsFinal(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.ApproveRequest("request-1"))

	assignmentsAfterFirst := len(store.Assignments())
	err := store.ApproveRequest("request-1")

	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Len(t, store.Assignments(), assignmentsAfterFirst, "no second assignment for a resolved request")
}

func TestApproveRequest_NonexistentChangesNothing(t *testing.T) {
	store := newStore(t)

	requestsBefore := store.Requests()
	assignmentsBefore := store.Assignments()
	activityBefore := len(store.Activity())

	err := store.ApproveRequest("request-unknown")

	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, requestsBefore, store.Requests())
	assert.Equal(t, assignmentsBefore, store.Assignments())
	assert.Len(t, store.Activity(), activityBefore)
}

// Spec scenario: an OFFICIAL trying to approve changes nothing and leaves a
// permission-denied feed entry.
func TestApproveRequest_OfficialDenied(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetPersona("Official"))

	assignmentsBefore := len(store.Assignments())
	err := store.ApproveRequest("request-1")

	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	request, ok := store.RequestByID("request-1")
	require.True(t, ok)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.Len(t, store.Assignments(), assignmentsBefore)

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "Permission denied")
}

func TestDeclineRequest_DeclinesWithoutAssignment(t *testing.T) {
	store := newStore(t)

	assignmentsBefore := len(store.Assignments())
	require.NoError(t, store.DeclineRequest("request-1"))

	request, ok := store.RequestByID("request-1")
	require.True(t, ok)
	assert.Equal(t, models.RequestDeclined, request.Status)
	assert.Len(t, store.Assignments(), assignmentsBefore)

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "declined")
}

func TestApproveRequests_PartialApplication(t *testing.T) {
	store := newStore(t)

	// a second pending request from the official
	require.NoError(t, store.SetPersona("Official"))
	second, err := store.RequestToWork("event-2")
	require.NoError(t, err)

	require.NoError(t, store.SetPersona("Athletic Director"))
	applied := store.ApproveRequests([]string{"request-1", "request-bogus", second.ID})

	assert.Equal(t, 2, applied)

	first, _ := store.RequestByID("request-1")
	assert.Equal(t, models.RequestApproved, first.Status)
	resolved, _ := store.RequestByID(second.ID)
	assert.Equal(t, models.RequestApproved, resolved.Status)
}

func TestDeclineRequests_SequentialInOrder(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.SetPersona("Official"))
	second, err := store.RequestToWork("event-2")
	require.NoError(t, err)

	require.NoError(t, store.SetPersona("League Admin"))
	applied := store.DeclineRequests([]string{"request-1", second.ID})

	assert.Equal(t, 2, applied)
	for _, id := range []string{"request-1", second.ID} {
		r, _ := store.RequestByID(id)
		assert.Equal(t, models.RequestDeclined, r.Status)
	}
	assert.Empty(t, store.Assignments(), "declines never create assignments")
}

// file: services/store_test.go
package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-officials-portal/models"
	"go-officials-portal/services"
)

func TestDemoStore_SeedState(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, "Athletic Director", store.CurrentPersona())
	assert.Equal(t, models.RoleAD, store.CurrentRole())

	request, ok := store.RequestByID("request-1")
	require.True(t, ok)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.Equal(t, "event-1", request.EventID)
	assert.Equal(t, "user-official-1", request.UserID)

	_, ok = store.EventByID("event-1")
	assert.True(t, ok)
	assert.NotEmpty(t, store.Personas())
	assert.NotEmpty(t, store.Flags())
}

func TestLogAction_AppendsEntry(t *testing.T) {
	store := newStore(t)

	entry := store.LogAction("Season schedule imported")

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Season schedule imported", entry.Message)

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Equal(t, entry.ID, activity[0].ID)
}

// The feed never exceeds its cap; oldest entries drop first and newest-first
// ordering is preserved.
func TestActivityFeed_CappedFIFO(t *testing.T) {
	store := newStore(t)

	total := services.ActivityLogCap + 15
	for i := 0; i < total; i++ {
		store.LogAction(fmt.Sprintf("action %d", i))
	}

	activity := store.Activity()
	require.Len(t, activity, services.ActivityLogCap)
	assert.Equal(t, fmt.Sprintf("action %d", total-1), activity[0].Message)
	assert.Equal(t, fmt.Sprintf("action %d", total-services.ActivityLogCap), activity[len(activity)-1].Message)
}

func TestToggleFlag_FlipsInPlace(t *testing.T) {
	store := newStore(t)
	require.True(t, store.Flags()["liveFeed"], "seed enables liveFeed")

	assert.False(t, store.ToggleFlag("liveFeed"))
	assert.True(t, store.ToggleFlag("liveFeed"))

	// toggling an unset flag creates it as enabled
	assert.True(t, store.ToggleFlag("betaScoreboard"))

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "betaScoreboard")
}

func TestSetBrandingAndRateLimits(t *testing.T) {
	store := newStore(t)

	store.SetBranding(models.Branding{OrgName: "Valley League", PrimaryColor: "#047857"})
	assert.Equal(t, "Valley League", store.Branding().OrgName)

	store.SetRateLimits(models.RateLimits{RequestsPerHour: 5, BulkBatchSize: 10})
	assert.Equal(t, 5, store.RateLimits().RequestsPerHour)
}

func TestUpdateNotes(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.UpdateNotes("event-1", "Bring extra whistles"))
	notes, ok := store.EventNotes("event-1")
	require.True(t, ok)
	assert.Equal(t, "Bring extra whistles", notes)

	err := store.UpdateNotes("event-ghost", "whatever")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWipe_EmptiesCollections(t *testing.T) {
	store := newStore(t)

	store.Wipe()

	assert.Empty(t, store.Events())
	assert.Empty(t, store.Requests())
	assert.Empty(t, store.Assignments())
	assert.Empty(t, store.Users())
	assert.Empty(t, store.Schools())

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "wiped")
}

func TestReseed_RestoresSeedState(t *testing.T) {
	store := newStore(t)
	store.Wipe()
	store.SetRole("COACH")

	store.Reseed()

	_, ok := store.RequestByID("request-1")
	assert.True(t, ok, "seed request restored")
	assert.Equal(t, models.RoleAD, store.CurrentRole(), "identity reset to seed")

	activity := store.Activity()
	require.Len(t, activity, 1, "reseed clears the feed down to its own entry")
	assert.Contains(t, activity[0].Message, "reset")
}

func TestSetActivityHook_ObservesMutations(t *testing.T) {
	store := newStore(t)

	var received []models.ActivityEntry
	store.SetActivityHook(func(e models.ActivityEntry) {
		received = append(received, e)
	})

	store.LogAction("hook check")

	require.Len(t, received, 1)
	assert.Equal(t, "hook check", received[0].Message)
}

// file: services/persona_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-officials-portal/models"
	"go-officials-portal/services"
)

func TestSetPersona_SwitchesIdentity(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.SetPersona("Official"))

	assert.Equal(t, "Official", store.CurrentPersona())
	assert.Equal(t, models.RoleOfficial, store.CurrentRole())

	user, ok := store.ActiveUser()
	require.True(t, ok)
	assert.Equal(t, "user-official-1", user.ID)

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "Switched persona to Official")
}

// Spec scenario: an unknown persona label leaves persona, active user, and
// role untouched.
func TestSetPersona_UnknownLabelUnchanged(t *testing.T) {
	store := newStore(t)

	personaBefore := store.CurrentPersona()
	roleBefore := store.CurrentRole()
	userBefore, _ := store.ActiveUser()
	activityBefore := len(store.Activity())

	err := store.SetPersona("Commissioner")

	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, personaBefore, store.CurrentPersona())
	assert.Equal(t, roleBefore, store.CurrentRole())
	userAfter, _ := store.ActiveUser()
	assert.Equal(t, userBefore.ID, userAfter.ID)
	assert.Len(t, store.Activity(), activityBefore)
}

// SetRole may diverge the current role from the active user's stored role.
// The divergence is the point: it exists to exercise role-gated screens.
func TestSetRole_DivergesFromActiveUser(t *testing.T) {
	store := newStore(t) // Athletic Director persona, role AD

	got := store.SetRole("COACH")

	assert.Equal(t, models.RoleCoach, got)
	assert.Equal(t, models.RoleCoach, store.CurrentRole())

	user, ok := store.ActiveUser()
	require.True(t, ok)
	assert.Equal(t, models.RoleAD, user.Role, "stored user role must not change")
	assert.Equal(t, "Athletic Director", store.CurrentPersona(), "persona must not change")
}

func TestSetRole_NormalizesUnknownInput(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, models.RoleUser, store.SetRole("head-honcho"))
	assert.Equal(t, models.RoleUser, store.SetRole("STAFF"))
}

func TestUpdateUserRole_RequiresSuperAdmin(t *testing.T) {
	store := newStore(t) // acting role is AD

	err := store.UpdateUserRole("user-coach-1", "ADMIN")
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	activity := store.Activity()
	require.NotEmpty(t, activity)
	assert.Contains(t, activity[0].Message, "Permission denied")
}

func TestUpdateUserRole_SuperAdminUpdates(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetPersona("Super Admin"))

	require.NoError(t, store.UpdateUserRole("user-coach-1", "ADMIN"))

	for _, u := range store.Users() {
		if u.ID == "user-coach-1" {
			assert.Equal(t, models.RoleAdmin, u.Role)
			return
		}
	}
	t.Fatal("user-coach-1 missing from store")
}

func TestUpdateUserRole_UnknownUser(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetPersona("Super Admin"))

	err := store.UpdateUserRole("user-ghost", "ADMIN")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
)

// fakeRoles scripts RoleFor responses per attempt and counts calls.
type fakeRoles struct {
	mu       sync.Mutex
	attempts int
	results  []func() (models.Role, error)
	fallback func() (models.Role, error)
}

func (f *fakeRoles) RoleFor(userID string) (models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if len(f.results) > 0 {
		next := f.results[0]
		f.results = f.results[1:]
		return next()
	}
	if f.fallback != nil {
		return f.fallback()
	}
	return "", ErrNoProfile
}

func (f *fakeRoles) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

var zeroRetry = RetryPolicy{MaxAttempts: 3, Interval: 0}

func TestSignInResolvesRoleBeforeReturning(t *testing.T) {
	roles := &fakeRoles{fallback: func() (models.Role, error) { return models.RoleAdminOps, nil }}
	store := NewStore(roles, zeroRetry)

	sess := store.SignIn(Identity{ID: "u1", Email: "ops@example.com"}, "tok")

	assert.False(t, sess.Loading, "sign-in ties loading to resolution; it must be cleared on return")
	assert.Equal(t, models.RoleAdminOps, sess.Role)
	assert.False(t, sess.RoleError)
	assert.Equal(t, 1, roles.callCount())
}

func TestRoleResolutionRetriesExactlyThreeTimes(t *testing.T) {
	roles := &fakeRoles{fallback: func() (models.Role, error) { return "", ErrNoProfile }}
	store := NewStore(roles, zeroRetry)

	sess := store.SignIn(Identity{ID: "u1"}, "tok")

	assert.Equal(t, 3, roles.callCount(), "always-empty lookup must be tried exactly 3 times")
	assert.True(t, sess.RoleError, "exhausted retries set the sticky role-error flag")
	assert.Empty(t, sess.Role)
	assert.False(t, sess.Loading, "role failure must not block the session")
}

func TestRoleResolvesOnSecondAttempt(t *testing.T) {
	roles := &fakeRoles{
		results: []func() (models.Role, error){
			func() (models.Role, error) { return "", ErrNoProfile },
			func() (models.Role, error) { return models.RoleCustomer, nil },
		},
	}
	store := NewStore(roles, zeroRetry)

	sess := store.SignIn(Identity{ID: "u1"}, "tok")

	assert.Equal(t, 2, roles.callCount())
	assert.Equal(t, models.RoleCustomer, sess.Role)
	assert.False(t, sess.RoleError)
}

func TestQueryErrorIsRetriedLikeMissingRow(t *testing.T) {
	roles := &fakeRoles{fallback: func() (models.Role, error) { return "", errors.New("connection reset") }}
	store := NewStore(roles, zeroRetry)

	sess := store.SignIn(Identity{ID: "u1"}, "tok")

	assert.Equal(t, 3, roles.callCount())
	assert.True(t, sess.RoleError)
}

func TestSignInClearsPriorRoleError(t *testing.T) {
	roles := &fakeRoles{
		results: []func() (models.Role, error){
			func() (models.Role, error) { return "", ErrNoProfile },
			func() (models.Role, error) { return "", ErrNoProfile },
			func() (models.Role, error) { return "", ErrNoProfile },
		},
		fallback: func() (models.Role, error) { return models.RoleCustomer, nil },
	}
	store := NewStore(roles, zeroRetry)

	first := store.SignIn(Identity{ID: "u1"}, "tok")
	require.True(t, first.RoleError)

	second := store.SignIn(Identity{ID: "u1"}, "tok")
	assert.False(t, second.RoleError)
	assert.Equal(t, models.RoleCustomer, second.Role)
}

func TestRestoreClearsLoadingBeforeResolutionCompletes(t *testing.T) {
	release := make(chan struct{})
	roles := &fakeRoles{fallback: func() (models.Role, error) {
		<-release
		return models.RoleSuperAdmin, nil
	}}
	store := NewStore(roles, zeroRetry)

	sess := store.Restore(Identity{ID: "u1"})

	// Startup path: loading is cleared immediately, independent of the
	// still-running resolution.
	assert.False(t, sess.Loading)
	assert.Empty(t, sess.Role)

	close(release)
	assert.Eventually(t, func() bool {
		got, ok := store.Get("u1")
		return ok && got.Role == models.RoleSuperAdmin
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRestoreKeepsExistingSession(t *testing.T) {
	roles := &fakeRoles{fallback: func() (models.Role, error) { return models.RoleCustomer, nil }}
	store := NewStore(roles, zeroRetry)

	store.SignIn(Identity{ID: "u1"}, "tok")
	calls := roles.callCount()

	sess := store.Restore(Identity{ID: "u1"})
	assert.Equal(t, models.RoleCustomer, sess.Role)
	assert.Equal(t, calls, roles.callCount(), "restore over a live session must not re-resolve")
}

func TestRefreshRoleRerunsResolution(t *testing.T) {
	roles := &fakeRoles{fallback: func() (models.Role, error) { return "", ErrNoProfile }}
	store := NewStore(roles, zeroRetry)

	sess := store.SignIn(Identity{ID: "u1"}, "tok")
	require.True(t, sess.RoleError)

	roles.mu.Lock()
	roles.fallback = func() (models.Role, error) { return models.RoleAdminOps, nil }
	roles.mu.Unlock()

	store.RefreshRole("u1")
	got, ok := store.Get("u1")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdminOps, got.Role)
	assert.False(t, got.RoleError)
}

func TestSignOutDropsSessionAndReturnsProviderToken(t *testing.T) {
	roles := &fakeRoles{fallback: func() (models.Role, error) { return models.RoleCustomer, nil }}
	store := NewStore(roles, zeroRetry)

	store.SignIn(Identity{ID: "u1"}, "provider-token")
	token := store.SignOut("u1")

	assert.Equal(t, "provider-token", token)
	_, ok := store.Get("u1")
	assert.False(t, ok)

	// Signing out an unknown user is a no-op.
	assert.Empty(t, store.SignOut("u2"))
}

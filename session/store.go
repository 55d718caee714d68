package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"gorm.io/gorm"
)

// ErrNoProfile is returned by a RoleSource when the profile row does not
// exist (yet) for an identity. Newly created accounts can hit this window.
var ErrNoProfile = errors.New("no profile record for user")

// RoleSource resolves an identity to its stored role.
type RoleSource interface {
	RoleFor(userID string) (models.Role, error)
}

// RetryPolicy bounds role resolution: a fixed number of attempts at a fixed
// interval, no backoff. Tests inject a zero interval.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

var DefaultRetry = RetryPolicy{MaxAttempts: 3, Interval: time.Second}

// Identity is what the auth provider vouches for.
type Identity struct {
	ID       string
	Email    string
	FullName string
}

// Session is the server-held state for one signed-in identity. Role stays
// empty until resolution succeeds; RoleError sticks once retries run out.
type Session struct {
	Identity      Identity
	Role          models.Role
	Loading       bool
	RoleError     bool
	ProviderToken string
	CreatedAt     time.Time
}

// Store owns all live sessions. It is created once at startup and handed to
// the middleware and auth handlers; sign-out tears the session down.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	roles    RoleSource
	retry    RetryPolicy
}

func NewStore(roles RoleSource, retry RetryPolicy) *Store {
	if retry.MaxAttempts < 1 {
		retry = DefaultRetry
	}
	return &Store{
		sessions: make(map[string]*Session),
		roles:    roles,
		retry:    retry,
	}
}

// SignIn establishes a session for a fresh login. Any prior role-error flag
// is cleared and the role is resolved before SignIn returns, so the loading
// flag here is tied to the resolution outcome.
func (s *Store) SignIn(id Identity, providerToken string) Session {
	s.mu.Lock()
	sess := &Session{
		Identity:      id,
		Loading:       true,
		ProviderToken: providerToken,
		CreatedAt:     time.Now(),
	}
	s.sessions[id.ID] = sess
	s.mu.Unlock()

	s.resolveRole(id.ID)

	s.mu.Lock()
	sess.Loading = false
	out := *sess
	s.mu.Unlock()
	return out
}

// Restore re-establishes a session for a bearer token that outlived the
// process (the app-start path). Unlike SignIn, the loading flag is cleared
// immediately and resolution runs in the background, so callers can see an
// established session whose role is still empty.
func (s *Store) Restore(id Identity) Session {
	s.mu.Lock()
	if existing, ok := s.sessions[id.ID]; ok {
		out := *existing
		s.mu.Unlock()
		return out
	}
	sess := &Session{Identity: id, Loading: false, CreatedAt: time.Now()}
	s.sessions[id.ID] = sess
	out := *sess
	s.mu.Unlock()

	go s.resolveRole(id.ID)
	return out
}

// RefreshRole re-runs role resolution for a live session.
func (s *Store) RefreshRole(userID string) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if ok {
		sess.RoleError = false
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	s.resolveRole(userID)
}

// SignOut drops the session and returns the provider token so the caller
// can revoke the remote session too.
func (s *Store) SignOut(userID string) (providerToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		providerToken = sess.ProviderToken
		delete(s.sessions, userID)
	}
	return providerToken
}

// Get returns a snapshot of the session, if one is held.
func (s *Store) Get(userID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// resolveRole queries the role source up to MaxAttempts times at the fixed
// interval. A missing row and a query error are treated the same: both can
// mean the profile trigger has not caught up yet. Exhaustion sets the sticky
// role-error flag; the session itself stays usable.
func (s *Store) resolveRole(userID string) {
	var lastErr error
	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		role, err := s.roles.RoleFor(userID)
		if err == nil {
			s.mu.Lock()
			if sess, ok := s.sessions[userID]; ok {
				sess.Role = role
				sess.RoleError = false
			}
			s.mu.Unlock()
			return
		}
		lastErr = err
		if attempt < s.retry.MaxAttempts {
			time.Sleep(s.retry.Interval)
		}
	}

	log.Printf("❌ Role resolution failed for %s after %d attempts: %v", userID, s.retry.MaxAttempts, lastErr)
	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		sess.RoleError = true
	}
	s.mu.Unlock()
}

// GormRoles is the production RoleSource backed by the profiles table.
type GormRoles struct {
	DB *gorm.DB
}

func (g GormRoles) RoleFor(userID string) (models.Role, error) {
	var profile models.Profile
	err := g.DB.Select("id", "role").First(&profile, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNoProfile
	}
	if err != nil {
		return "", err
	}
	if profile.Role == "" {
		return "", ErrNoProfile
	}
	return profile.Role, nil
}

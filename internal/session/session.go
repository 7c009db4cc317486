// Package session holds the single logged-in user and mirrors it into one
// persisted key so it survives restarts.
package session

import (
	"context"                        // Context for persister calls
	"errors"                         // Error inspection
	"fmt"                            // Error wrapping
	"social_network/internal/auth"   // Authenticator capability
	"social_network/internal/domain" // Domain models
	"sync"                           // Mutex for concurrent handlers

	"github.com/sirupsen/logrus" // Logging
)

// ErrNoSnapshot is returned by a Persister when nothing is stored
var ErrNoSnapshot = errors.New("no session snapshot")

// Persister stores the serialized snapshot of the current user
type Persister interface {
	Load(ctx context.Context) (domain.User, error) // ErrNoSnapshot when absent
	Save(ctx context.Context, user domain.User) error
	Clear(ctx context.Context) error
}

// Store is the session: at most one current user
type Store struct {
	mu      sync.RWMutex
	current *domain.User
	auth    auth.Authenticator
	persist Persister
}

func NewStore(authenticator auth.Authenticator, persister Persister) *Store {
	return &Store{auth: authenticator, persist: persister}
}

// Restore adopts the persisted snapshot, if any, without checking it against
// the directory.
func (s *Store) Restore(ctx context.Context) error {
	u, err := s.persist.Load(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	logrus.WithField("username", u.Username).Info("Session restored")
	return nil
}

// Login replaces the session on success; on failure the session is unchanged
func (s *Store) Login(ctx context.Context, username, password string) (domain.User, error) {
	p, err := s.auth.Authenticate(username, password)
	if err != nil {
		return domain.User{}, err
	}
	if p.Role != domain.RoleUser || p.User == nil {
		return domain.User{}, domain.ErrForbidden
	}
	u := *p.User
	if err := s.persist.Save(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("persist session: %w", err)
	}
	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return u, nil
}

// Logoff clears the session and removes the persisted snapshot
func (s *Store) Logoff(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.persist.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the logged-in user
func (s *Store) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

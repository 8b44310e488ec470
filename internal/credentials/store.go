package credentials

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/neko3da4/CHRFORGE/internal/bus"
)

// EventUpdated is broadcast with the new access token whenever it changes.
const EventUpdated = "update:authtoken"

var (
	ErrNoRefreshToken     = errors.New("credentials: no refresh token")
	ErrRefreshUnavailable = errors.New("credentials: refresh capability not configured")
)

// RefreshFunc exchanges a refresh token for a new access token. The exchange
// protocol is opaque to this package; implementations must be idempotent.
type RefreshFunc func(ctx context.Context, refreshToken string) (string, error)

// Store holds the token pair behind a lock and announces access-token
// changes on the bus.
type Store struct {
	mu        sync.RWMutex
	token     string
	refresh   string
	bus       *bus.Bus
	refreshFn RefreshFunc
}

// NewStore initializes an empty store. A nil bus disables notification,
// a nil refresh leaves Refresh unavailable.
func NewStore(b *bus.Bus, refresh RefreshFunc) *Store {
	return &Store{bus: b, refreshFn: refresh}
}

// Token returns the current access token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// RefreshToken returns the current refresh token.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// SetToken stores a new access token and broadcasts EventUpdated when the
// value changed. Re-storing the same token is silent, so a subscriber may
// feed broadcasts back into the store without looping.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	changed := s.token != token
	s.token = token
	b := s.bus
	s.mu.Unlock()

	if changed && b != nil {
		b.Emit(EventUpdated, token)
	}
}

// SetRefreshToken stores a new refresh token.
func (s *Store) SetRefreshToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = token
}

// Refresh invokes the refresh capability with the stored refresh token and
// stores the access token it returns.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	fn := s.refreshFn
	refresh := s.refresh
	s.mu.RUnlock()

	if fn == nil {
		return ErrRefreshUnavailable
	}
	if refresh == "" {
		return ErrNoRefreshToken
	}
	token, err := fn(ctx, refresh)
	if err != nil {
		return fmt.Errorf("credentials: refresh: %w", err)
	}
	s.SetToken(token)
	return nil
}

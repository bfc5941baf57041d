// Package store implements the Domain Store: the single owner of every
// household collection and of the current-user pointer.
//
// Every mutation runs under one lock from read to write, so it is applied
// atomically against the latest state. Mutations never fail: unknown IDs and
// a missing current user are silent no-ops. Callers observe effects by
// reading a fresh Snapshot.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/zaryabali001/roommate/internal/models"
)

// Store holds the authoritative household state.
type Store struct {
	mu    sync.Mutex
	state models.Snapshot

	// designatedUserID is the user Login attaches.
	designatedUserID string
	// designatedUser is used when the designated ID is missing from Users.
	designatedUser *models.User

	clock     Clock
	ids       IDGenerator
	observers []Observer
	logger    *slog.Logger
}

// New builds a store from seed. A nil seed yields an empty, logged-out store.
func New(seed *models.Seed, opts ...Option) *Store {
	s := &Store{
		clock:  SystemClock{},
		ids:    UUIDGenerator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(seed)
	return s
}

// load replaces the whole state with seed. Callers hold the lock or own s exclusively.
func (s *Store) load(seed *models.Seed) {
	if seed == nil {
		seed = &models.Seed{}
	}
	// Cloning through a Snapshot keeps the store from aliasing the seed's slices.
	state := models.Snapshot{
		Users:         seed.Users,
		Group:         seed.Group,
		Todos:         seed.Todos,
		Expenses:      seed.Expenses,
		ShoppingItems: seed.ShoppingItems,
		CleaningDuty:  seed.CleaningDuty,
		LostAndFound:  seed.LostAndFound,
		Notices:       seed.Notices,
		Documents:     seed.Documents,
		BillReminders: seed.BillReminders,
	}.Clone()

	s.designatedUserID = seed.CurrentUserID
	s.designatedUser = nil
	if u, ok := state.FindUser(seed.CurrentUserID); ok {
		s.designatedUser = &u
		state.CurrentUser = &u
		state.Authenticated = true
	}
	s.state = state
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Authenticated
}

// CurrentUser returns a copy of the logged-in user.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentUser == nil {
		return models.User{}, false
	}
	return *s.state.CurrentUser, true
}

// Now reads the store clock.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// mutate runs fn under the lock and reports the outcome to the observers.
// fn returns the affected entity ID and whether anything changed.
func (s *Store) mutate(ctx context.Context, op Op, fn func(now time.Time) (string, bool)) {
	s.mu.Lock()
	now := s.clock.Now()
	entityID, applied := fn(now)
	ev := Event{
		Op:       op,
		Applied:  applied,
		EntityID: entityID,
		UserID:   s.state.CurrentUserID(),
		At:       now,
	}
	s.mu.Unlock()

	if applied {
		s.logger.Debug("Store mutation applied", "op", op, "entity_id", entityID, "user_id", ev.UserID)
	} else {
		s.logger.Debug("Store mutation skipped", "op", op, "entity_id", entityID, "user_id", ev.UserID)
	}
	for _, o := range s.observers {
		o.Mutated(ctx, ev)
	}
}

// Reset replaces the whole state with seed, as at startup. A logged-out
// session stays logged out; a logged-in one switches to the seed's current
// user, or is logged out when the seed has none.
func (s *Store) Reset(ctx context.Context, seed *models.Seed) {
	s.mutate(ctx, OpReset, func(time.Time) (string, bool) {
		wasAuthenticated := s.state.Authenticated
		s.load(seed)
		if !wasAuthenticated {
			s.state.Authenticated = false
			s.state.CurrentUser = nil
		}
		return "", true
	})
}

// Login marks the session authenticated and attaches the designated user.
// Credentials are not checked. Without a designated user nothing changes.
func (s *Store) Login(ctx context.Context, creds models.Credentials) {
	s.mutate(ctx, OpLogin, func(time.Time) (string, bool) {
		var user *models.User
		if u, ok := s.state.FindUser(s.designatedUserID); ok {
			user = &u
		} else if s.designatedUser != nil {
			u := *s.designatedUser
			user = &u
		}
		if user == nil {
			return "", false
		}
		s.state.Authenticated = true
		s.state.CurrentUser = user
		return user.ID, true
	})
}

// Logout clears the session. It is idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.mutate(ctx, OpLogout, func(time.Time) (string, bool) {
		s.state.Authenticated = false
		s.state.CurrentUser = nil
		return "", true
	})
}

// UpdateUserPresence sets the current user's presence, both on the current
// user and on the matching entry of Users.
func (s *Store) UpdateUserPresence(ctx context.Context, status models.PresenceStatus) {
	s.mutate(ctx, OpUpdatePresence, func(time.Time) (string, bool) {
		if s.state.CurrentUser == nil {
			return "", false
		}
		updated := *s.state.CurrentUser
		updated.PresenceStatus = status
		s.state.CurrentUser = &updated

		users := make([]models.User, len(s.state.Users))
		for i, u := range s.state.Users {
			if u.ID == updated.ID {
				u = updated
			}
			users[i] = u
		}
		s.state.Users = users
		return updated.ID, true
	})
}

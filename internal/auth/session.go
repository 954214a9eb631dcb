// Package auth implements the session manager: login, registration, logout,
// and session restore over the user record store. A Session is an explicit
// object created at app start and threaded through the presentation layer;
// there is no ambient global user.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/svilenkov/healthconnect/internal/logging"
	"github.com/svilenkov/healthconnect/internal/users"
)

// Session tracks the signed-in user. The in-memory user is a cache of the
// persisted session pointer; both are updated together through the methods
// below. Methods serialize through an internal mutex, so concurrent calls
// within one process cannot interleave a check with a write.
type Session struct {
	store *users.Store
	log   logging.Logger

	mu      sync.RWMutex
	user    *users.User
	loading bool
}

func NewSession(store *users.Store, log logging.Logger) *Session {
	return &Session{store: store, log: log, loading: true}
}

// Restore loads the persisted session pointer once at startup. Any failure
// is treated as "no session"; the store already degrades unreadable data to
// nil. After Restore returns, IsLoading reports false.
func (s *Session) Restore(ctx context.Context) *users.User {
	u := s.store.GetCurrentUser(ctx)

	s.mu.Lock()
	s.user = u
	s.loading = false
	s.mu.Unlock()

	if u != nil {
		s.log.Info(ctx, "session restored", "email", u.Email)
	}
	return u
}

// Login signs the user in. The email is trimmed and lower-cased for the
// lookup only; the stored record keeps its original casing. On success the
// in-memory user is set and the session pointer persisted.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))

	existing := s.store.GetUser(ctx, email)
	if existing == nil {
		return ErrNoAccount
	}
	if existing.Password != password {
		return ErrIncorrectPassword
	}

	s.user = existing
	if err := s.store.SetCurrentUser(ctx, *existing); err != nil {
		s.log.Error(ctx, "login error", "email", email, "error", err)
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	return nil
}

// Register creates a new account. Fields are validated first (the first
// failing field's message is returned), then the email is checked for an
// existing account. Registration does not sign the new user in.
func (s *Session) Register(ctx context.Context, fullName, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ValidateRegistration(fullName, email, password); err != nil {
		return err
	}

	if existing := s.store.GetUser(ctx, email); existing != nil {
		return ErrAccountExists
	}

	newUser := users.User{FullName: fullName, Email: email, Password: password}
	if err := s.store.SaveUser(ctx, newUser); err != nil {
		s.log.Error(ctx, "registration error", "email", email, "error", err)
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	return nil
}

// Logout clears the in-memory user, then the persisted session pointer.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.store.ClearCurrentUser(ctx)
}

// User returns the signed-in user, or nil.
func (s *Session) User() *users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsLoading reports whether the initial session restore is still pending.
func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

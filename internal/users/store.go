package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/svilenkov/healthconnect/internal/kvstore"
	"github.com/svilenkov/healthconnect/internal/logging"
)

const (
	usersKey       = "@users"
	currentUserKey = "@current_user"
)

// Store persists the user list and the session pointer. Reads fail open:
// missing or corrupt data degrades to "no users" / "no session" and is only
// logged. Writes fail loud and propagate to the caller.
type Store struct {
	kv  kvstore.Store
	log logging.Logger
}

func NewStore(kv kvstore.Store, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// SaveUser appends user to the stored list. Input validation is the
// caller's responsibility.
func (s *Store) SaveUser(ctx context.Context, user User) error {
	err := s.kv.Update(ctx, usersKey, func(old []byte) ([]byte, error) {
		list := s.decodeUsers(ctx, old)
		list = append(list, user)
		return json.Marshal(list)
	})
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetUser returns the first stored user whose email matches
// case-insensitively, or nil when there is none.
func (s *Store) GetUser(ctx context.Context, email string) *User {
	for _, u := range s.GetAllUsers(ctx) {
		if strings.EqualFold(u.Email, email) {
			return &u
		}
	}
	return nil
}

// GetAllUsers returns every registered user. Missing or unreadable data is
// treated as an empty list.
func (s *Store) GetAllUsers(ctx context.Context) []User {
	raw, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		s.log.Error(ctx, "error reading user list", "error", err)
		return nil
	}
	return s.decodeUsers(ctx, raw)
}

func (s *Store) decodeUsers(ctx context.Context, raw []byte) []User {
	if raw == nil {
		return nil
	}
	var list []User
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Error(ctx, "error decoding user list", "error", err)
		return nil
	}
	return list
}

// SetCurrentUser persists the session pointer.
func (s *Store) SetCurrentUser(ctx context.Context, user User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode current user: %w", err)
	}
	if err := s.kv.Set(ctx, currentUserKey, raw); err != nil {
		return fmt.Errorf("failed to save current user: %w", err)
	}
	return nil
}

// GetCurrentUser returns the persisted session pointer, or nil when no one
// is signed in or the data is unreadable.
func (s *Store) GetCurrentUser(ctx context.Context) *User {
	raw, err := s.kv.Get(ctx, currentUserKey)
	if err != nil {
		s.log.Error(ctx, "error reading current user", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Error(ctx, "error decoding current user", "error", err)
		return nil
	}
	return &u
}

// ClearCurrentUser removes the session pointer.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}

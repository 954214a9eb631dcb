// Package firstlogin decides whether a user signing in still needs the
// one-time permission bootstrap, and runs it when they do.
package firstlogin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/svilenkov/healthconnect/internal/kvstore"
	"github.com/svilenkov/healthconnect/internal/logging"
)

const trackerKey = "@first_login"

// Tracker records, per email, whether the first-login bootstrap has run.
// The record is a single email→true map under one store key.
type Tracker struct {
	kv  kvstore.Store
	log logging.Logger
}

func NewTracker(kv kvstore.Store, log logging.Logger) *Tracker {
	return &Tracker{kv: kv, log: log}
}

// IsFirstLogin reports whether the bootstrap still has to run for email.
// Read or parse failures count as "first login": re-prompting for
// permissions is preferable to silently skipping the bootstrap.
func (t *Tracker) IsFirstLogin(ctx context.Context, email string) bool {
	raw, err := t.kv.Get(ctx, trackerKey)
	if err != nil {
		t.log.Error(ctx, "error checking first login", "error", err)
		return true
	}
	if raw == nil {
		return true
	}

	var completed map[string]bool
	if err := json.Unmarshal(raw, &completed); err != nil {
		t.log.Error(ctx, "error decoding first login records", "error", err)
		return true
	}
	return !completed[email]
}

// SetComplete marks the bootstrap as done for email. The whole map is read,
// updated, and written back; write failures propagate.
func (t *Tracker) SetComplete(ctx context.Context, email string) error {
	err := t.kv.Update(ctx, trackerKey, func(old []byte) ([]byte, error) {
		completed := map[string]bool{}
		if old != nil {
			if err := json.Unmarshal(old, &completed); err != nil {
				t.log.Warn(ctx, "resetting corrupt first login records", "error", err)
				completed = map[string]bool{}
			}
		}
		completed[email] = true
		return json.Marshal(completed)
	})
	if err != nil {
		return fmt.Errorf("failed to record first login: %w", err)
	}
	return nil
}

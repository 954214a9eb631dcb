package firstlogin

import (
	"context"
	"sync"
	"time"

	"github.com/svilenkov/healthconnect/internal/logging"
	"github.com/svilenkov/healthconnect/internal/permissions"
	"github.com/svilenkov/healthconnect/internal/platform"
)

// State is the bootstrap progress for the current session.
type State int

const (
	StateUnchecked State = iota
	StateRequesting
	StateDone
)

// Bootstrapper runs the one-time permission sequence after a user's first
// successful sign-in: request notifications, wait a short delay, request
// location, then mark the tracker complete. The sequence is best-effort:
// failures are logged and swallowed, and the state always reaches Done.
type Bootstrapper struct {
	tracker *Tracker
	perms   *permissions.Manager
	delay   time.Duration
	log     logging.Logger

	mu        sync.Mutex
	state     State
	requested bool
}

func NewBootstrapper(tracker *Tracker, perms *permissions.Manager, delay time.Duration, log logging.Logger) *Bootstrapper {
	return &Bootstrapper{tracker: tracker, perms: perms, delay: delay, log: log}
}

// Run executes the bootstrap for email and returns the permission results
// for the presentation layer to display. It returns nil when there is
// nothing to do: empty email, bootstrap already requested this session, or
// the tracker says this is not a first login.
func (b *Bootstrapper) Run(ctx context.Context, email string) []permissions.Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if email == "" || b.requested {
		b.state = StateDone
		return nil
	}

	if !b.tracker.IsFirstLogin(ctx, email) {
		b.state = StateDone
		return nil
	}

	b.state = StateRequesting

	results := make([]permissions.Result, 0, 2)
	results = append(results, b.perms.Request(ctx, platform.PermissionNotifications))

	select {
	case <-time.After(b.delay):
	case <-ctx.Done():
		b.state = StateDone
		return results
	}

	results = append(results, b.perms.Request(ctx, platform.PermissionLocation))

	if err := b.tracker.SetComplete(ctx, email); err != nil {
		b.log.Error(ctx, "error recording first login completion", "email", email, "error", err)
	}

	b.requested = true
	b.state = StateDone
	return results
}

// State returns the bootstrap progress for the current session.
func (b *Bootstrapper) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// HasRequested reports whether permissions were already requested in this
// session.
func (b *Bootstrapper) HasRequested() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requested
}

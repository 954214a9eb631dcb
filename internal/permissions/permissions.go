// Package permissions implements the check-then-request permission flows.
// Each flow queries the current platform state first, prompts only when the
// permission was not already granted, and normalizes the outcome to a Result.
// Platform failures are downgraded to a denied-like Result, never propagated.
package permissions

import (
	"context"
	"strings"

	"github.com/svilenkov/healthconnect/internal/logging"
	"github.com/svilenkov/healthconnect/internal/platform"
)

// Result is the user-facing outcome of one permission flow. The caller (the
// presentation layer) decides how to display it.
type Result struct {
	Granted bool
	Message string
}

// Manager runs permission flows against the platform API.
type Manager struct {
	platform platform.Platform
	log      logging.Logger
}

func NewManager(p platform.Platform, log logging.Logger) *Manager {
	return &Manager{platform: p, log: log}
}

// Request runs the flow for one permission kind:
//
//  1. query current status
//  2. if not already granted, issue an interactive request
//  3. normalize to a Result
//
// After a notifications grant on android, the default notification channel
// is configured as a side effect.
func (m *Manager) Request(ctx context.Context, p platform.Permission) Result {
	status, err := m.platform.CheckPermission(ctx, p)
	if err != nil {
		m.log.Error(ctx, "error checking permission", "permission", p, "error", err)
		return Result{Granted: false, Message: errorMessage(p)}
	}

	if status != platform.StatusGranted {
		status, err = m.platform.RequestPermission(ctx, p)
		if err != nil {
			m.log.Error(ctx, "error requesting permission", "permission", p, "error", err)
			return Result{Granted: false, Message: errorMessage(p)}
		}
	}

	if status != platform.StatusGranted {
		return Result{Granted: false, Message: deniedMessage(p)}
	}

	if p == platform.PermissionNotifications && m.platform.OS() == "android" {
		if err := m.platform.EnsureDefaultChannel(ctx); err != nil {
			// the grant stands even if channel setup fails
			m.log.Warn(ctx, "error configuring notification channel", "error", err)
		}
	}

	return Result{Granted: true, Message: grantedMessage(p)}
}

func label(p platform.Permission) string {
	if p == platform.PermissionLocation {
		return "Location"
	}
	return "Notification"
}

func grantedMessage(p platform.Permission) string {
	return label(p) + " permissions granted!"
}

func deniedMessage(p platform.Permission) string {
	return label(p) + " permissions denied. You can enable them in settings."
}

func errorMessage(p platform.Permission) string {
	return "Error requesting " + strings.ToLower(label(p)) + " permissions"
}

// Package notifications sends local notifications through the platform
// scheduler, gated on the notification permission.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/svilenkov/healthconnect/internal/logging"
	"github.com/svilenkov/healthconnect/internal/platform"
)

// ErrPermissionRequired is returned when notifications are not granted.
// The caller should point the user at the settings screen rather than retry.
var ErrPermissionRequired = errors.New("Please enable notifications in settings to receive updates.")

type Sender struct {
	platform platform.Platform
	log      logging.Logger
}

func NewSender(p platform.Platform, log logging.Logger) *Sender {
	return &Sender{platform: p, log: log}
}

// Send delivers a local notification immediately. The permission status is
// checked first; a missing grant is a typed failure, not a prompt.
func (s *Sender) Send(ctx context.Context, title, body string) error {
	status, err := s.platform.CheckPermission(ctx, platform.PermissionNotifications)
	if err != nil {
		return fmt.Errorf("failed to check notification permission: %w", err)
	}
	if status != platform.StatusGranted {
		return ErrPermissionRequired
	}

	n := platform.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Timestamp: time.Now(),
	}
	if err := s.platform.ScheduleNotification(ctx, n); err != nil {
		s.log.Error(ctx, "error sending notification", "error", err)
		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.log.Debug(ctx, "notification sent", "id", n.ID)
	return nil
}

// SendTest delivers the canned test notification from the home screen.
func (s *Sender) SendTest(ctx context.Context) error {
	return s.Send(ctx, "💊 HealthConnect", "This is a test notification from your health companion!")
}

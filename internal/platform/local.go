package platform

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/svilenkov/healthconnect/internal/kvstore"
	"github.com/svilenkov/healthconnect/internal/logging"
)

const (
	permissionKeyPrefix = "@platform_permission_"
	channelKey          = "@platform_channel_default"
)

// LocalOptions configures the Local platform stand-in.
type LocalOptions struct {
	OS       string
	Position Position
	Place    Place
	In       *bufio.Reader
	Out      io.Writer
}

// Local simulates the device services on a desktop terminal: permission
// grants are persisted in the key-value store, the OS permission dialog is a
// y/n prompt, notifications print as banner lines, and the GPS/geocoder
// return configured values.
type Local struct {
	kv   kvstore.Store
	log  logging.Logger
	opts LocalOptions
}

func NewLocal(kv kvstore.Store, log logging.Logger, opts LocalOptions) *Local {
	return &Local{kv: kv, log: log, opts: opts}
}

func (l *Local) OS() string {
	return l.opts.OS
}

func (l *Local) CheckPermission(ctx context.Context, p Permission) (Status, error) {
	raw, err := l.kv.Get(ctx, permissionKeyPrefix+string(p))
	if err != nil {
		return "", fmt.Errorf("failed to read %s permission: %w", p, err)
	}
	if raw == nil {
		return StatusUndetermined, nil
	}
	return Status(raw), nil
}

func (l *Local) RequestPermission(ctx context.Context, p Permission) (Status, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(l.opts.Out, "Allow HealthConnect to access %s? [y/n]\n> ", p)
	line, err := l.opts.In.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read permission answer: %w", err)
	}

	status := StatusDenied
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		status = StatusGranted
	}

	if err := l.kv.Set(ctx, permissionKeyPrefix+string(p), []byte(status)); err != nil {
		return "", fmt.Errorf("failed to persist %s permission: %w", p, err)
	}
	return status, nil
}

// EnsureDefaultChannel records the default notification channel settings,
// mirroring what the mobile app configures on android after a grant.
func (l *Local) EnsureDefaultChannel(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	channel := struct {
		Name       string `json:"name"`
		Importance string `json:"importance"`
	}{Name: "default", Importance: "max"}

	raw, err := json.Marshal(channel)
	if err != nil {
		return err
	}
	if err := l.kv.Set(ctx, channelKey, raw); err != nil {
		return fmt.Errorf("failed to configure notification channel: %w", err)
	}
	return nil
}

func (l *Local) ScheduleNotification(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(l.opts.Out, "\n🔔 %s\n   %s\n\n", n.Title, n.Body)
	l.log.Debug(ctx, "notification delivered", "id", n.ID, "title", n.Title)
	return nil
}

func (l *Local) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return l.opts.Position, nil
}

func (l *Local) ReverseGeocode(ctx context.Context, pos Position) (Place, error) {
	if err := ctx.Err(); err != nil {
		return Place{}, err
	}
	return l.opts.Place, nil
}

// Package platform abstracts the device services the app depends on:
// the permission API, the local notification scheduler, and the
// geolocation/geocoding provider. The rest of the code treats these as
// opaque collaborators; Local provides a desktop stand-in for the CLI.
package platform

import (
	"context"
	"time"
)

// Permission identifies a permission kind handled by the platform.
type Permission string

const (
	PermissionNotifications Permission = "notifications"
	PermissionLocation      Permission = "location"
)

// Status is the normalized platform permission state.
type Status string

const (
	StatusUndetermined Status = "undetermined"
	StatusGranted      Status = "granted"
	StatusDenied       Status = "denied"
)

// Notification is a schedule-now local notification.
type Notification struct {
	ID        string
	Title     string
	Body      string
	Timestamp time.Time
}

// Position is a device GPS fix.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Place is the result of reverse-geocoding a position.
type Place struct {
	City    string
	Region  string
	Country string
}

// Platform is the full device-services surface.
//
// Contract:
//   - CheckPermission never prompts the user; it only reports current state.
//   - RequestPermission may prompt interactively and returns the final state.
//   - EnsureDefaultChannel configures the default notification channel
//     (meaningful on android only; a no-op elsewhere is acceptable).
//   - ScheduleNotification delivers a local notification immediately.
//
// All methods must honor context cancellation.
type Platform interface {
	OS() string
	CheckPermission(ctx context.Context, p Permission) (Status, error)
	RequestPermission(ctx context.Context, p Permission) (Status, error)
	EnsureDefaultChannel(ctx context.Context) error
	ScheduleNotification(ctx context.Context, n Notification) error
	CurrentPosition(ctx context.Context) (Position, error)
	ReverseGeocode(ctx context.Context, pos Position) (Place, error)
}

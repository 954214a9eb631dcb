// Package location fetches the device position and resolves it to a
// human-readable address, gated on the location permission.
package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/svilenkov/healthconnect/internal/logging"
	"github.com/svilenkov/healthconnect/internal/platform"
)

// ErrPermissionNotGranted is returned when the location permission is
// missing; Fetch never prompts for it.
var ErrPermissionNotGranted = errors.New("Location permission not granted")

// Data is a resolved device location. Address is empty when reverse
// geocoding was unavailable.
type Data struct {
	Latitude  float64
	Longitude float64
	Address   string
}

type Fetcher struct {
	platform platform.Platform
	log      logging.Logger
}

func NewFetcher(p platform.Platform, log logging.Logger) *Fetcher {
	return &Fetcher{platform: p, log: log}
}

// Fetch returns the current device location. Reverse geocoding is
// best-effort: a geocoder failure degrades to coordinates without an
// address. Cancel ctx to abandon an in-flight fetch; no state is touched
// after cancellation.
func (f *Fetcher) Fetch(ctx context.Context) (*Data, error) {
	status, err := f.platform.CheckPermission(ctx, platform.PermissionLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to check location permission: %w", err)
	}
	if status != platform.StatusGranted {
		return nil, ErrPermissionNotGranted
	}

	pos, err := f.platform.CurrentPosition(ctx)
	if err != nil {
		f.log.Error(ctx, "error getting location", "error", err)
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	data := &Data{Latitude: pos.Latitude, Longitude: pos.Longitude}

	place, err := f.platform.ReverseGeocode(ctx, pos)
	if err != nil {
		f.log.Warn(ctx, "could not get address", "error", err)
		return data, nil
	}
	data.Address = formatPlace(place)
	return data, nil
}

// formatPlace joins the non-empty place parts as "city, region, country".
func formatPlace(p platform.Place) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.City, p.Region, p.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

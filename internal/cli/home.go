package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/svilenkov/healthconnect/internal/location"
	"github.com/svilenkov/healthconnect/internal/notifications"
)

// Home-screen commands: account info, device location, test notification.

func (a *App) Whoami(ctx context.Context) {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "Full name: %s\nEmail:     %s\n", u.FullName, u.Email)
}

func (a *App) ShowLocation(ctx context.Context) {
	d, err := a.locator.Fetch(ctx)
	if err != nil {
		if errors.Is(err, location.ErrPermissionNotGranted) {
			a.toastError("Error", err.Error())
			return
		}
		a.toastError("Error", "Failed to get location")
		return
	}

	fmt.Fprintf(a.out, "Latitude:  %.4f\nLongitude: %.4f\n", d.Latitude, d.Longitude)
	if d.Address != "" {
		fmt.Fprintf(a.out, "Address:   %s\n", d.Address)
	}
}

func (a *App) ListUsers(ctx context.Context) {
	all := a.users.GetAllUsers(ctx)
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No registered accounts.")
		return
	}
	for _, u := range all {
		fmt.Fprintf(a.out, "%s <%s>\n", u.FullName, u.Email)
	}
}

func (a *App) Notify(ctx context.Context) {
	err := a.sender.SendTest(ctx)
	if err != nil {
		if errors.Is(err, notifications.ErrPermissionRequired) {
			a.toastError("Permission Required", err.Error())
			return
		}
		a.toastError("Error", "Failed to send notification")
		return
	}
	a.toastSuccess("Success", "Notification sent!")
}

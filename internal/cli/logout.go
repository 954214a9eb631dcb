package cli

import (
	"context"
	"fmt"
)

func (a *App) Logout(ctx context.Context) {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	if err := a.session.Logout(ctx); err != nil {
		a.toastError("Error", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}

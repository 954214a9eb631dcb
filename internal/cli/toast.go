package cli

import (
	"fmt"

	"github.com/svilenkov/healthconnect/internal/permissions"
)

// Toast-style output: every operation outcome surfaces as a one-line
// transient message with a title and body, and never halts the REPL.

func (a *App) toastSuccess(title, msg string) {
	fmt.Fprintf(a.out, "✔ %s: %s\n", title, msg)
}

func (a *App) toastError(title, msg string) {
	fmt.Fprintf(a.out, "✖ %s: %s\n", title, msg)
}

func (a *App) showPermissionResult(res permissions.Result) {
	if res.Message == "" {
		return
	}
	if res.Granted {
		a.toastSuccess("Success", res.Message)
		return
	}
	a.toastError("Permission Denied", res.Message)
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s) ", u.Email)
	}
	return ""
}

// Root runs the interactive command loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to HealthConnect CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "hc %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.session.IsAuthenticated() {
				fmt.Fprintln(a.out, "Available commands: whoami, location, notify, users, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, users, exit")
			}
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.Whoami(ctx)
		case "users":
			a.ListUsers(ctx)
		case "location":
			a.ShowLocation(ctx)
		case "notify":
			a.Notify(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

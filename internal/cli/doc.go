// Package cli provides the interactive HealthConnect command-line client.
//
// It wires configuration, the local key-value store, the auth session, and
// an interactive REPL. Typical flow: restore a persisted session, then
// execute user commands; a first successful login per account triggers the
// one-time permission bootstrap.
//
// Key features:
//   - Register / Login / Logout with persisted sessions
//   - First-login permission bootstrap (notifications, location)
//   - Home commands: whoami, location, notify (test notification)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

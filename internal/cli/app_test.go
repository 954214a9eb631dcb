package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svilenkov/healthconnect/internal/config"
	"github.com/svilenkov/healthconnect/internal/kvstore"
	"github.com/svilenkov/healthconnect/internal/logging"
)

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { readPassword = orig })
}

func setupApp(t *testing.T, script string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := kvstore.Open(ctx, filepath.Join(t.TempDir(), "hc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BootstrapDelay = time.Millisecond
	cfg.PlatformOS = "linux"

	out := &bytes.Buffer{}
	in := bufio.NewReader(strings.NewReader(script))
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return newApp(cfg, db, in, out, log), out
}

func TestRepl_RegisterLoginHomeFlow(t *testing.T) {
	stubPassword(t, "secret1")

	// register, then log in; the first-login bootstrap prompts for both
	// permissions (answered y/y), then the home commands run.
	script := strings.Join([]string{
		"register",
		"Jane Doe",
		"Jane@Example.com",
		"login",
		"jane@example.com",
		"y", // notifications prompt
		"y", // location prompt
		"whoami",
		"location",
		"notify",
		"logout",
		"exit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Account created")
	assert.Contains(t, got, "Logged in as jane@example.com")
	assert.Contains(t, got, "Notification permissions granted!")
	assert.Contains(t, got, "Location permissions granted!")
	assert.Contains(t, got, "Full name: Jane Doe")
	assert.Contains(t, got, "Email:     Jane@Example.com")
	assert.Contains(t, got, "New York, NY, USA")
	assert.Contains(t, got, "Notification sent!")
	assert.Contains(t, got, "Logged out.")
	assert.Contains(t, got, "Bye!")
}

func TestRepl_LoginFailures(t *testing.T) {
	stubPassword(t, "wrongpw")

	script := strings.Join([]string{
		"login",
		"nobody@example.com",
		"exit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	app.Run(context.Background())

	assert.Contains(t, out.String(), "Login Failed")
	assert.Contains(t, out.String(), "No account found with this email")
}

func TestRepl_SecondLogin_SkipsBootstrap(t *testing.T) {
	stubPassword(t, "secret1")

	// deny both permissions on first login; the bootstrap is marked
	// complete and must not prompt again on the next login
	script := strings.Join([]string{
		"register",
		"Jane Doe",
		"jane@example.com",
		"login",
		"jane@example.com",
		"n", // notifications prompt
		"n", // location prompt
		"logout",
		"login",
		"jane@example.com",
		"whoami",
		"exit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	app.Run(context.Background())

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "access notifications"))
	assert.Equal(t, 1, strings.Count(got, "access location"))
	assert.Contains(t, got, "Permission Denied")
	assert.Contains(t, got, "Full name: Jane Doe")
}

func TestRepl_NotifyWithoutPermission_ShowsHint(t *testing.T) {
	stubPassword(t, "secret1")

	script := strings.Join([]string{
		"register",
		"Jane Doe",
		"jane@example.com",
		"login",
		"jane@example.com",
		"n", // notifications denied
		"n", // location denied
		"notify",
		"location",
		"exit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Permission Required")
	assert.Contains(t, got, "Please enable notifications in settings")
	assert.Contains(t, got, "Location permission not granted")
}

func TestRepl_UsersCommand_ListsRegisteredAccounts(t *testing.T) {
	stubPassword(t, "secret1")

	script := strings.Join([]string{
		"users", // nothing registered yet
		"register",
		"Jane Doe",
		"jane@example.com",
		"register",
		"John Roe",
		"john@example.com",
		"users",
		"exit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "No registered accounts.")
	assert.Contains(t, got, "Jane Doe <jane@example.com>")
	assert.Contains(t, got, "John Roe <john@example.com>")
}

func TestRepl_RegisterValidationError(t *testing.T) {
	stubPassword(t, "abc") // too short

	script := strings.Join([]string{
		"register",
		"Jane Doe",
		"jane@example.com",
		"exit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	app.Run(context.Background())

	assert.Contains(t, out.String(), "Password must be at least 6 characters")
}

func TestRun_RestoredSession_GreetsUser(t *testing.T) {
	stubPassword(t, "secret1")
	ctx := context.Background()

	dir := t.TempDir()
	dsn := filepath.Join(dir, "hc.db")

	db, err := kvstore.Open(ctx, dsn)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BootstrapDelay = time.Millisecond
	cfg.PlatformOS = "linux"
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	first := newApp(cfg, db, bufio.NewReader(strings.NewReader(strings.Join([]string{
		"register",
		"Jane Doe",
		"jane@example.com",
		"login",
		"jane@example.com",
		"y",
		"y",
		"exit",
	}, "\n")+"\n")), &bytes.Buffer{}, log)
	first.Run(ctx)
	require.NoError(t, db.Close())

	// simulate an app restart over the same database file
	db2, err := kvstore.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	out := &bytes.Buffer{}
	second := newApp(cfg, db2, bufio.NewReader(strings.NewReader("exit\n")), out, log)
	second.Run(ctx)

	assert.Contains(t, out.String(), "Welcome back, Jane Doe!")
}

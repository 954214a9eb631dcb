package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/svilenkov/healthconnect/internal/auth"
	"github.com/svilenkov/healthconnect/internal/config"
	"github.com/svilenkov/healthconnect/internal/firstlogin"
	"github.com/svilenkov/healthconnect/internal/kvstore"
	"github.com/svilenkov/healthconnect/internal/location"
	"github.com/svilenkov/healthconnect/internal/logging"
	"github.com/svilenkov/healthconnect/internal/notifications"
	"github.com/svilenkov/healthconnect/internal/permissions"
	"github.com/svilenkov/healthconnect/internal/platform"
	"github.com/svilenkov/healthconnect/internal/users"
)

type App struct {
	config  *config.Config
	session *auth.Session
	boot    *firstlogin.Bootstrapper
	sender  *notifications.Sender
	locator *location.Fetcher
	users   *users.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database and wires the application services.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := kvstore.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return newApp(cfg, db, bufio.NewReader(os.Stdin), os.Stdout, log), nil
}

func newApp(cfg *config.Config, db *sql.DB, in *bufio.Reader, out io.Writer, log logging.Logger) *App {
	kv := kvstore.NewSQLiteStore(db)

	plat := platform.NewLocal(kv, log, platform.LocalOptions{
		OS:       cfg.PlatformOS,
		Position: platform.Position{Latitude: cfg.DeviceLatitude, Longitude: cfg.DeviceLongitude},
		Place:    platform.Place{City: cfg.DeviceCity, Region: cfg.DeviceRegion, Country: cfg.DeviceCountry},
		In:       in,
		Out:      out,
	})

	userStore := users.NewStore(kv, log)
	session := auth.NewSession(userStore, log)
	perms := permissions.NewManager(plat, log)
	tracker := firstlogin.NewTracker(kv, log)
	boot := firstlogin.NewBootstrapper(tracker, perms, cfg.BootstrapDelay, log)

	return &App{
		config:  cfg,
		session: session,
		boot:    boot,
		sender:  notifications.NewSender(plat, log),
		locator: location.NewFetcher(plat, log),
		users:   userStore,
		log:     log,
		reader:  in,
		out:     out,
	}
}

// Run restores a persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if u := a.session.Restore(ctx); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.FullName)
		a.runBootstrap(ctx)
	}
	a.Root(ctx)
}

// runBootstrap triggers the first-login permission sequence for the
// signed-in user and displays the outcomes.
func (a *App) runBootstrap(ctx context.Context) {
	u := a.session.User()
	if u == nil {
		return
	}
	for _, res := range a.boot.Run(ctx, u.Email) {
		a.showPermissionResult(res)
	}
}

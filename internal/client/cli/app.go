package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/carpoolea/internal/client/client"
	"github.com/dmitrijs2005/carpoolea/internal/client/config"
	"github.com/dmitrijs2005/carpoolea/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carpoolea/internal/client/services"
	"github.com/dmitrijs2005/carpoolea/internal/client/session"
	"github.com/dmitrijs2005/carpoolea/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session  *session.Store
	users    *services.UserService
	vehicles *services.VehicleService
	trips    *services.TripService
	bookings *services.BookingService

	reader *bufio.Reader
	out    io.Writer

	// loggingOut is set while the user logs out on purpose, so the
	// transition is not reported as an expired session.
	loggingOut  bool
	wasLoggedIn bool
}

// NewApp wires the client. in and out are the terminal streams.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel).With("module", "cli")

	db, err := metadata.Open(ctx, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	repo := metadata.NewSQLiteRepository(db)

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, repo, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.New(repo, services.NewAuthService(api), log)
	api.OnUnauthorized(store.Invalidate)

	a := &App{
		config:   c,
		log:      log,
		db:       db,
		session:  store,
		users:    services.NewUserService(api),
		vehicles: services.NewVehicleService(api),
		trips:    services.NewTripService(api),
		bookings: services.NewBookingService(api),
		reader:   bufio.NewReader(in),
		out:      out,
	}
	store.Subscribe(a.onSessionChange)
	return a, nil
}

// Run restores the session and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Loading...")
	if err := a.session.Initialize(ctx); err != nil && !errors.Is(err, session.ErrAlreadyInitialized) {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	<-a.session.Ready()

	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.FirstName)
	} else {
		fmt.Fprintln(a.out, "You are not logged in. Type 'login' or 'register'.")
	}

	a.repl(ctx)
	return nil
}

func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

func (a *App) onSessionChange(st session.State) {
	if st == session.StateUnauthenticated && a.wasLoggedIn && !a.loggingOut {
		fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	}
	a.wasLoggedIn = st == session.StateAuthenticated
}

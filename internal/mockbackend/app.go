// Package mockbackend runs an in-memory development server implementing the
// carpool REST contract, so the CLI can be exercised without the real backend.
package mockbackend

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/carpoolea/internal/logging"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/config"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/httpapi"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/store"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(c *config.Config) *App {
	logger := logging.New(os.Stdout, c.LogLevel).With("module", "mockbackend")
	srv := httpapi.NewServer(store.New(), logger, []byte(c.JWT.Secret), c.JWT.TTL, c.BcryptCost)
	return &App{config: c, logger: logger, server: srv}
}

// Handler exposes the router, e.g. for httptest servers.
func (app *App) Handler() http.Handler {
	return app.server.NewRouter()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	app.initSignalHandler(cancelFunc)

	listen, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	return app.serve(ctx, listen)
}

func (app *App) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{Handler: app.Handler(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping mock backend...")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	app.logger.Info(ctx, "Starting mock backend", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

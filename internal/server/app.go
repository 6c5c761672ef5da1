// Package server initializes and runs the survey server: it selects the
// storage backend, builds the repository with its fan-out hub, and runs the
// gRPC endpoint next to a Prometheus metrics endpoint until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/sos/internal/dbx"
	"github.com/dmitrijs2005/sos/internal/filex"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/config"
	gs "github.com/dmitrijs2005/sos/internal/server/grpc"
	"github.com/dmitrijs2005/sos/internal/server/notify"
	"github.com/dmitrijs2005/sos/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sos/internal/server/repository"
)

const metricsShutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	registry *prometheus.Registry
	repo     repository.Repository
	db       *sql.DB
	clock    clock.Clock
}

// NewApp builds the repository selected by c. Persistent stores are opened
// and migrated here; the memory store is optionally seeded with demo data.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, "json", c.LogLevel)
	return newApp(ctx, c, logger, clock.WallClock)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, clk clock.Clock) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	hub := notify.NewHub(logger, registry)
	app := &App{config: c, logger: logger, registry: registry, clock: clk}

	dialect, dsn, err := resolveStorage(c)
	if err != nil {
		return nil, err
	}

	if dialect == "" {
		app.repo = repository.NewMemoryRepository(hub, clk, logger)
		logger.Info(ctx, "Using in-memory storage")

		if c.SeedDemoData {
			if err := repository.Seed(ctx, app.repo, clk.Now()); err != nil {
				return nil, fmt.Errorf("seed error: %w", err)
			}
			logger.Info(ctx, "Demo data loaded")
		}
		return app, nil
	}

	if c.SeedDemoData {
		logger.Warn(ctx, "Demo data is only loaded into in-memory storage", "storage", string(dialect))
	}

	if dialect == dbx.SQLite && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	db, err := dbx.Open(ctx, dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewSQLRepositoryManager(dialect, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app.db = db
	app.repo = repository.NewDBRepository(db, rm, hub, clk, logger)
	logger.Info(ctx, "Using database storage", "dialect", string(dialect))
	return app, nil
}

// resolveStorage maps the configured backend to a dialect and driver DSN.
// An empty dialect selects the memory store. Without an explicit backend
// the dialect is inferred from the DSN.
func resolveStorage(c *config.Config) (dbx.Dialect, string, error) {
	switch c.Storage {
	case config.StorageMemory:
		return "", "", nil
	case "", config.StoragePostgres, config.StorageSQLite:
	default:
		return "", "", fmt.Errorf("unknown storage %q", c.Storage)
	}

	d, dsn, err := dbx.ParseDSN(c.DatabaseDSN)
	if c.Storage == "" {
		if err != nil {
			return "", "", fmt.Errorf("cannot infer storage: %w", err)
		}
		return d, dsn, nil
	}

	want := dbx.Dialect(c.Storage)
	if err != nil || d != want {
		dsn = strings.TrimSpace(c.DatabaseDSN)
		if dsn == "" {
			return "", "", fmt.Errorf("storage %s needs a database dsn", want)
		}
		return want, dsn, nil
	}
	return d, dsn, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.repo,
		app.config.SecretKey, app.config.SessionTokenValidityDuration, app.clock)
	return s.Run(ctx)
}

func (app *App) metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	return mux
}

func (app *App) startMetricsServer(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.config.MetricsAddr,
		Handler:           app.metricsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails. The database, if any, is closed on return.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.startGRPCServer(gctx) })
	if app.config.MetricsAddr != "" {
		g.Go(func() error { return app.startMetricsServer(gctx) })
	}

	err := g.Wait()

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Error(ctx, "db close error", "error", cerr)
		}
	}

	app.logger.Info(ctx, "App stopped")
	return err
}

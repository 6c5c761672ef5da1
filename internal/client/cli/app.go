package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/juju/clock"

	"github.com/dmitrijs2005/sos/internal/client/client"
	"github.com/dmitrijs2005/sos/internal/client/config"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/models"
)

// watchRetryDelay is the pause before re-opening a broken refresh stream.
const watchRetryDelay = 3 * time.Second

type App struct {
	config *config.Config
	client client.Client
	logger logging.Logger
	clock  clock.Clock
	reader *bufio.Reader

	outMu sync.Mutex
	out   io.Writer

	mu   sync.RWMutex
	user *models.User
	// view re-renders what the user looked at last; nil until a listing
	// or survey has been shown.
	view func(context.Context) error
}

// NewApp connects a gRPC client to c.ServerEndpointAddr and builds the
// REPL around stdin and stdout.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.CallTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, logger, clock.WallClock, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, logger logging.Logger, clk clock.Clock, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		client: cl,
		logger: logger.With("module", "cli"),
		clock:  clk,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run starts the refresh watcher and the REPL. It returns when the user
// exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.client.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.logger.Warn(ctx, "server is not reachable", "addr", a.config.ServerEndpointAddr, "error", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.StartRefreshWatcher(ctx)
	}()

	a.println("Welcome to the survey CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)

	cancel()
	wg.Wait()
	return nil
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) currentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *App) setUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
	a.view = nil
}

func (a *App) setView(view func(context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = view
}

func (a *App) lastView() func(context.Context) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

func (a *App) getStatus() string {
	if u := a.currentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// StartRefreshWatcher keeps a refresh stream open until ctx is done,
// re-subscribing after watchRetryDelay whenever the stream breaks. The
// first refresh of every stream only confirms the subscription.
func (a *App) StartRefreshWatcher(ctx context.Context) {
	for {
		live := false
		err := a.client.Watch(ctx, func() {
			if !live {
				live = true
				a.logger.Debug(ctx, "refresh stream is live")
				return
			}
			a.onRefresh(ctx)
		})
		if ctx.Err() != nil {
			return
		}
		a.logger.Warn(ctx, "refresh stream ended", "error", err)

		select {
		case <-ctx.Done():
			return
		case <-a.clock.After(watchRetryDelay):
		}
	}
}

// onRefresh re-renders the last shown view. A view that can no longer be
// rendered is dropped.
func (a *App) onRefresh(ctx context.Context) {
	if !a.isLoggedIn() {
		return
	}
	view := a.lastView()
	if view == nil {
		a.println("* surveys changed, type 'surveys' to reload")
		return
	}
	a.println("* surveys changed, reloading")
	if err := view(ctx); err != nil {
		a.logger.Debug(ctx, "refresh view failed", "error", err)
		a.setView(nil)
		a.printf("error: %v\n", err)
	}
}

package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sos/internal/client/client"
	"github.com/dmitrijs2005/sos/internal/client/config"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"github.com/dmitrijs2005/sos/internal/server/notify"
	"github.com/dmitrijs2005/sos/internal/server/repository"
)

var epoch = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

// memClient serves the client contract straight from an in-memory
// repository, so command tests see real survey semantics.
type memClient struct {
	repository.Repository
	closed atomic.Bool
}

var _ client.Client = (*memClient)(nil)

func (c *memClient) Close() error               { c.closed.Store(true); return nil }
func (c *memClient) Ping(context.Context) error { return nil }

type chanObserver struct{ ch chan struct{} }

func (o *chanObserver) Notify(context.Context) error {
	select {
	case o.ch <- struct{}{}:
	default:
	}
	return nil
}

func (c *memClient) Watch(ctx context.Context, onRefresh func()) error {
	o := &chanObserver{ch: make(chan struct{}, 1)}
	c.AddObserver(o)
	defer c.RemoveObserver(o)

	onRefresh()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-o.ch:
			onRefresh()
		}
	}
}

func newSeededClient(t *testing.T) *memClient {
	t.Helper()
	repo := repository.NewMemoryRepository(notify.NewHub(logging.Nop(), nil), testclock.NewClock(epoch), logging.Nop())
	require.NoError(t, repository.Seed(context.Background(), repo, epoch))
	return &memClient{Repository: repo}
}

func newTestApp(t *testing.T, cl client.Client, input string) (*App, *bytes.Buffer) {
	t.Helper()

	orig := displayLocation
	displayLocation = time.UTC
	t.Cleanup(func() { displayLocation = orig })

	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return newApp(cfg, cl, logging.Nop(), testclock.NewClock(epoch), strings.NewReader(input), out), out
}

// output reads what the app printed so far.
func output(a *App) string {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	return a.out.(*bytes.Buffer).String()
}

// stubPasswords makes successive password prompts return the given values.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	getPassword = func(_ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}
}

func loginAs(t *testing.T, a *App, cl *memClient, username string) *models.User {
	t.Helper()
	u, err := cl.GetUserByUsername(context.Background(), username)
	require.NoError(t, err)
	require.NotNil(t, u)
	a.setUser(u)
	return u
}

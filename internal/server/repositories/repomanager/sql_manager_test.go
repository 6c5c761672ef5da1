package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sos/internal/dbx"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/repositories/surveys"
	"github.com/dmitrijs2005/sos/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewSQLRepositoryManager(t *testing.T) {
	for _, d := range []dbx.Dialect{dbx.Postgres, dbx.SQLite} {
		m, err := NewSQLRepositoryManager(d, logging.Nop())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", d, err)
		}
		var _ RepositoryManager = m
	}

	if _, err := NewSQLRepositoryManager("oracle", logging.Nop()); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &SQLRepositoryManager{dialect: dbx.Postgres, logger: logging.Nop()}

	if u := m.Users(db); u == nil {
		t.Fatal("Users() nil")
	}
	if s := m.Surveys(db); s == nil {
		t.Fatal("Surveys() nil")
	}

	var _ users.Repository = m.Users(db)
	var _ surveys.Repository = m.Surveys(db)
}

func TestRunMigrations_UsesDialectDir(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	for _, d := range []dbx.Dialect{dbx.Postgres, dbx.SQLite} {
		var gotDir string
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			gotDir = dir
			if len(opts) != 0 {
				return errors.New("unexpected opts")
			}
			return nil
		}

		m := &SQLRepositoryManager{dialect: d, logger: logging.Nop()}
		if err := m.RunMigrations(context.Background(), db); err != nil {
			t.Fatalf("RunMigrations error: %v", err)
		}
		if gotDir != string(d) {
			t.Fatalf("dir = %q, want %q", gotDir, d)
		}
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &SQLRepositoryManager{dialect: dbx.Postgres, logger: logging.Nop()}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunMigrations_SQLiteSchema(t *testing.T) {
	ctx := context.Background()
	db, err := dbx.Open(ctx, dbx.SQLite, filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, err)
	defer db.Close()

	rec := &recordingLogger{}
	m := &SQLRepositoryManager{dialect: dbx.SQLite, logger: rec}
	require.NoError(t, m.RunMigrations(ctx, db))
	require.True(t, rec.contains("00001_init.sql"), "goose output goes to the logger: %v", rec.lines())
	// second run is a no-op
	require.NoError(t, m.RunMigrations(ctx, db))

	for _, table := range []string{"users", "survey", "participation", "invitation", "survey_option", "vote"} {
		var n int
		err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&n)
		require.NoError(t, err)
		require.Equal(t, 1, n, table)
	}
}

type recordingLogger struct {
	mu  sync.Mutex
	msg []string
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msg = append(r.msg, msg)
}

func (r *recordingLogger) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msg...)
}

func (r *recordingLogger) contains(s string) bool {
	for _, m := range r.lines() {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

func (r *recordingLogger) Debug(_ context.Context, msg string, _ ...any) { r.record(msg) }
func (r *recordingLogger) Info(_ context.Context, msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Warn(_ context.Context, msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Error(_ context.Context, msg string, _ ...any) { r.record(msg) }
func (r *recordingLogger) With(...any) logging.Logger                    { return r }

func TestGooseLogger_Fatalf(t *testing.T) {
	rec := &recordingLogger{}
	l := gooseLogger{ctx: context.Background(), logger: rec}

	l.Printf("OK   %s\n", "00001_init.sql")
	require.Panics(t, func() { l.Fatalf("bad migration %d", 2) })
	require.Equal(t, []string{"OK   00001_init.sql", "bad migration 2"}, rec.lines())
}

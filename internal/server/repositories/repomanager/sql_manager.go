// Package repomanager provides a concrete RepositoryManager for the SQL
// backends, wiring together table gateways and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sos/internal/dbx"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/migrations"
	"github.com/dmitrijs2005/sos/internal/server/repositories/surveys"
	"github.com/dmitrijs2005/sos/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager vends SQL-backed table gateways and exposes a schema
// migration hook for its dialect.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
	logger  logging.Logger
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Surveys returns a surveys.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Surveys(db dbx.DBTX) surveys.Repository {
	return surveys.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// gooseLogger sends goose progress output to the manager's logger instead
// of the standard library logger.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(l.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	l.logger.Error(l.ctx, msg)
	panic(msg)
}

// RunMigrations sets up goose with the embedded migrations of the manager's
// dialect and runs them against the provided database connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(gooseLogger{ctx: ctx, logger: m.logger.With("component", "migrations")})
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect.GooseDialect()); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, string(m.dialect)); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for the dialect.
func NewSQLRepositoryManager(dialect dbx.Dialect, logger logging.Logger) (RepositoryManager, error) {
	switch dialect {
	case dbx.Postgres, dbx.SQLite:
		return &SQLRepositoryManager{dialect: dialect, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

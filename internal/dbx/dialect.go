package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Dialect identifies the SQL engine behind a DSN.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == SQLite {
		return "sqlite"
	}
	return "pgx"
}

// GooseDialect is the goose dialect name used to run migrations.
func (d Dialect) GooseDialect() string {
	if d == SQLite {
		return "sqlite3"
	}
	return "postgres"
}

// ParseDSN detects the dialect of dsn and returns the DSN in the form the
// driver expects. Recognized forms:
//
//	postgres://... , postgresql://...   PostgreSQL
//	sqlite:<path>, file:<path>, *.db    SQLite
func ParseDSN(dsn string) (Dialect, string, error) {
	s := strings.TrimSpace(dsn)
	switch {
	case s == "":
		return "", "", fmt.Errorf("empty dsn")
	case strings.HasPrefix(s, "postgres://"), strings.HasPrefix(s, "postgresql://"):
		return Postgres, s, nil
	case strings.HasPrefix(s, "sqlite://"):
		return SQLite, strings.TrimPrefix(s, "sqlite://"), nil
	case strings.HasPrefix(s, "sqlite:"):
		return SQLite, strings.TrimPrefix(s, "sqlite:"), nil
	case strings.HasPrefix(s, "file:"), strings.HasSuffix(s, ".db"), s == ":memory:":
		return SQLite, s, nil
	default:
		return "", "", fmt.Errorf("unrecognized dsn %q", dsn)
	}
}

// withForeignKeys asks the sqlite driver to enforce REFERENCES clauses on
// every connection it opens. SQLite leaves them off by default.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Open opens and pings a database for the given dialect. SQLite handles are
// limited to a single connection so that writers never contend for the file
// lock and in-memory databases stay on one connection. SQLite enforces
// foreign keys, as PostgreSQL does.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	if d == SQLite {
		dsn = withForeignKeys(dsn)
	}

	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if d == SQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

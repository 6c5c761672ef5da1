package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sos/internal/dbx"
	"github.com/dmitrijs2005/sos/internal/server/repositories/surveys"
	"github.com/dmitrijs2005/sos/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Surveys(db dbx.DBTX) surveys.Repository
}

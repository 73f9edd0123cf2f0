package repomanager

import (
	"context"
	"database/sql"

	"github.com/Werffios/AntilleanController/internal/dbx"
	"github.com/Werffios/AntilleanController/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a connection or transaction
// and owns the subsystem's schema migrations.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

package database

import (
	"context"
	"database/sql"
)

// Execer é satisfeito tanto por *sql.DB quanto por *sql.Tx
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

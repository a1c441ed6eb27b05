package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"zoo-inventory/internal/platform/config"
)

type dialect interface {
	// lockForInsert serializa MAX(id)+1 e INSERT entre transacciones concurrentes.
	lockForInsert(ctx context.Context, tx *sql.Tx, table string) error
}

func dialectFor(driver string) dialect {
	if driver == config.DriverSQLite {
		return sqliteDialect{}
	}
	return postgresDialect{}
}

type postgresDialect struct{}

// SHARE ROW EXCLUSIVE choca consigo mismo: un segundo create espera al commit del primero.
func (postgresDialect) lockForInsert(ctx context.Context, tx *sql.Tx, table string) error {
	_, err := tx.ExecContext(ctx, fmt.Sprintf("LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE", table))
	return err
}

type sqliteDialect struct{}

// En SQLite la tx ya abre con BEGIN IMMEDIATE (ver DSN).
func (sqliteDialect) lockForInsert(context.Context, *sql.Tx, string) error { return nil }

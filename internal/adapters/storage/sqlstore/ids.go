package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// nextID lee MAX(column)+1 dentro de tx. Tabla vacía => 1.
func nextID(ctx context.Context, tx *sql.Tx, table, column string) (int64, error) {
	var id int64
	q := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", column, table)
	if err := tx.QueryRowContext(ctx, q).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

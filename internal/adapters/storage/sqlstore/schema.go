package sqlstore

import (
	"context"
	_ "embed"
	"strings"

	"zoo-inventory/internal/platform/apperr"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema crea las tablas si no existen. Solo para sqlite/dev y tests:
// en Postgres el esquema lo administra el DBA.
func (p *Provider) EnsureSchema(ctx context.Context) error {
	conn, err := p.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return apperr.Query("store.schema", err)
		}
	}
	return nil
}

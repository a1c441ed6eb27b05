// Package sqlstore implementa los repositorios sobre database/sql.
// Drivers soportados: pgx (Postgres, producción) y sqlite (modernc, modo embebido y tests).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/config"
)

// Provider entrega una conexión dedicada por operación, tomada de un pool acotado.
type Provider struct {
	db      *sql.DB
	dialect dialect
}

// Open abre el pool y verifica la conexión con un ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Provider, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == config.DriverSQLite && cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, apperr.Connection("store.open", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, apperr.Connection("store.ping", err)
	}

	return &Provider{db: db, dialect: dialectFor(cfg.Driver)}, nil
}

// DSN arma el connection string del driver configurado.
func DSN(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   cfg.Host + ":" + strconv.Itoa(cfg.Port),
			Path:   "/" + cfg.Name,
		}
		q := url.Values{}
		if cfg.SSLMode != "" {
			q.Set("sslmode", cfg.SSLMode)
		}
		u.RawQuery = q.Encode()
		return u.String(), nil
	case config.DriverSQLite:
		if cfg.Path == "" {
			return "", errors.New("sqlite: path is required")
		}
		// immediate: el lock de escritura se toma al abrir la tx (MAX+1 e INSERT quedan serializados).
		return "file:" + cfg.Path + "?_pragma=busy_timeout(5000)&_txlock=immediate", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// Connect devuelve una conexión dedicada; el caller la cierra al terminar la operación.
func (p *Provider) Connect(ctx context.Context) (*sql.Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, apperr.Connection("store.connect", err)
	}
	return conn, nil
}

func (p *Provider) Health(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return apperr.Connection("store.health", err)
	}
	return nil
}

func (p *Provider) Close() error {
	return p.db.Close()
}

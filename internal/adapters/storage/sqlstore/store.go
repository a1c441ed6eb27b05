package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/logger"
	"zoo-inventory/internal/platform/metrics"
)

type Options struct {
	Metrics metrics.Recorder
	Logger  logger.Logger
}

// base es lo común a los tres repos: provider, métricas y logger.
type base struct {
	p      *Provider
	entity string
	rec    metrics.Recorder
	log    logger.Logger
}

func newBase(p *Provider, entity string, opts Options) base {
	rec := opts.Metrics
	if rec == nil {
		rec = metrics.Nop()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return base{
		p:      p,
		entity: entity,
		rec:    rec,
		log:    log.With(map[string]any{"component": "sqlstore", "entity": entity}),
	}
}

// observe se usa diferido: defer r.observe("get", time.Now(), &err).
func (b base) observe(op string, start time.Time, errp *error) {
	b.rec.ObserveStoreOp(b.entity, op, *errp, time.Since(start))
}

// withConn corre fn sobre una conexión dedicada que se libera al volver.
func (b base) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := b.p.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

// withTx corre fn en una transacción; rollback si fn falla.
func (b base) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	return b.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return apperr.Query(op, err)
		}
		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return apperr.Query(op, err)
		}
		return nil
	})
}

// insertWithNextID asigna MAX(idColumn)+1 e inserta en la misma transacción.
// insert recibe el id asignado.
func (b base) insertWithNextID(ctx context.Context, op, table, idColumn string, insert func(tx *sql.Tx, id int64) error) (int64, error) {
	var id int64
	err := b.withTx(ctx, op, func(tx *sql.Tx) error {
		if err := b.p.dialect.lockForInsert(ctx, tx, table); err != nil {
			return apperr.Query(op, err)
		}
		next, err := nextID(ctx, tx, table, idColumn)
		if err != nil {
			return apperr.Query(op, err)
		}
		if err := insert(tx, next); err != nil {
			if isUniqueViolation(err) {
				b.rec.IncIDConflict(table)
				b.log.Warn("id allocation conflict", map[string]any{"table": table, "id": next})
			}
			return apperr.Query(op, err)
		}
		id = next
		return nil
	})
	return id, err
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}

func requireAffected(res sql.Result, op string, notFound func() error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Result(op, err)
	}
	if n == 0 {
		return notFound()
	}
	return nil
}

// setClause arma "col = $n" en orden; los placeholders se numeran según aparecen.
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, col+" = $"+strconv.Itoa(len(s.args)))
}

// next devuelve el siguiente placeholder libre para el WHERE.
func (s *setClause) next(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

// list devuelve la lista SET; sin campos queda un no-op que igual cuenta la fila.
func (s *setClause) list(idColumn string) string {
	if len(s.cols) == 0 {
		return idColumn + " = " + idColumn
	}
	return strings.Join(s.cols, ", ")
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func isNoRows(err error) bool { return errors.Is(err, sql.ErrNoRows) }

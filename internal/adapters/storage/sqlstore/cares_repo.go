package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"zoo-inventory/internal/domain/cares"
	"zoo-inventory/internal/platform/apperr"
)

const careColumns = `cares_id, type_of_care, frequency, description`

type CaresRepo struct {
	base
}

func NewCaresRepo(p *Provider, opts Options) *CaresRepo {
	return &CaresRepo{base: newBase(p, "care", opts)}
}

var _ cares.Repository = (*CaresRepo)(nil)

func careNotFound(id int64) error {
	return apperr.NotFound("Care with id %d not found", id)
}

func (r *CaresRepo) List(ctx context.Context) (out []cares.Care, err error) {
	const op = "cares.list"
	defer r.observe("list", time.Now(), &err)

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT `+careColumns+` FROM Cares ORDER BY cares_id ASC`)
		if err != nil {
			return apperr.Query(op, err)
		}
		defer rows.Close()

		out = make([]cares.Care, 0)
		for rows.Next() {
			c, err := scanCare(rows)
			if err != nil {
				return apperr.Result(op, err)
			}
			out = append(out, c)
		}
		if err := rows.Err(); err != nil {
			return apperr.Result(op, err)
		}
		return nil
	})
	return out, err
}

func (r *CaresRepo) GetByID(ctx context.Context, id int64) (c cares.Care, err error) {
	defer r.observe("get", time.Now(), &err)

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		c, err = getCare(ctx, conn, "cares.get", id)
		return err
	})
	return c, err
}

func (r *CaresRepo) Create(ctx context.Context, c cares.Care) (_ cares.Care, err error) {
	const op = "cares.create"
	defer r.observe("create", time.Now(), &err)

	id, err := r.insertWithNextID(ctx, op, "Cares", "cares_id", func(tx *sql.Tx, id int64) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO Cares (`+careColumns+`) VALUES ($1, $2, $3, $4)`,
			id, c.TypeOfCare, c.Frequency, nullString(c.Description),
		)
		return err
	})
	if err != nil {
		return cares.Care{}, err
	}

	c.ID = id
	return c, nil
}

func (r *CaresRepo) Update(ctx context.Context, id int64, p cares.Patch) (c cares.Care, err error) {
	const op = "cares.update"
	defer r.observe("update", time.Now(), &err)

	var set setClause
	if p.TypeOfCare.Present && p.TypeOfCare.Value != nil {
		set.add("type_of_care", *p.TypeOfCare.Value)
	}
	if p.Frequency.Present && p.Frequency.Value != nil {
		set.add("frequency", *p.Frequency.Value)
	}
	if p.Description.Present {
		set.add("description", nullString(p.Description.Value))
	}
	setSQL := set.list("cares_id")
	idArg := set.next(id)

	err = r.withTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE Cares SET `+setSQL+` WHERE cares_id = `+idArg, set.args...)
		if err != nil {
			return apperr.Query(op, err)
		}
		if err := requireAffected(res, op, func() error { return careNotFound(id) }); err != nil {
			return err
		}
		c, err = getCare(ctx, tx, op, id)
		return err
	})
	return c, err
}

func (r *CaresRepo) Delete(ctx context.Context, id int64) (err error) {
	const op = "cares.delete"
	defer r.observe("delete", time.Now(), &err)

	return r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM Cares WHERE cares_id = $1`, id)
		if err != nil {
			return apperr.Query(op, err)
		}
		return requireAffected(res, op, func() error { return careNotFound(id) })
	})
}

func getCare(ctx context.Context, q querier, op string, id int64) (cares.Care, error) {
	row := q.QueryRowContext(ctx, `SELECT `+careColumns+` FROM Cares WHERE cares_id = $1`, id)
	c, err := scanCare(row)
	if isNoRows(err) {
		return cares.Care{}, careNotFound(id)
	}
	if err != nil {
		return cares.Care{}, apperr.Result(op, err)
	}
	return c, nil
}

func scanCare(s scanner) (cares.Care, error) {
	var (
		c    cares.Care
		desc sql.NullString
	)
	if err := s.Scan(&c.ID, &c.TypeOfCare, &c.Frequency, &desc); err != nil {
		return cares.Care{}, err
	}
	c.Description = stringPtr(desc)
	return c, nil
}

package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"zoo-inventory/internal/domain/animalcares"
	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
)

const animalCareColumns = `animal_care_id, date_of_care, fk_Cares_cares_id, fk_Animal_animal_id`

type AnimalCaresRepo struct {
	base
}

func NewAnimalCaresRepo(p *Provider, opts Options) *AnimalCaresRepo {
	return &AnimalCaresRepo{base: newBase(p, "animal_care", opts)}
}

var _ animalcares.Repository = (*AnimalCaresRepo)(nil)

func animalCareNotFound(id int64) error {
	return apperr.NotFound("Animal care with id %d not found", id)
}

func (r *AnimalCaresRepo) List(ctx context.Context) (out []animalcares.AnimalCare, err error) {
	defer r.observe("list", time.Now(), &err)
	return r.list(ctx, "animal_cares.list",
		`SELECT `+animalCareColumns+` FROM Animal_Care_have ORDER BY animal_care_id ASC`)
}

func (r *AnimalCaresRepo) ListByAnimalID(ctx context.Context, animalID int64) (out []animalcares.AnimalCare, err error) {
	defer r.observe("list_by_animal", time.Now(), &err)
	return r.list(ctx, "animal_cares.list_by_animal",
		`SELECT `+animalCareColumns+` FROM Animal_Care_have WHERE fk_Animal_animal_id = $1 ORDER BY animal_care_id ASC`,
		animalID)
}

func (r *AnimalCaresRepo) GetByID(ctx context.Context, id int64) (ac animalcares.AnimalCare, err error) {
	defer r.observe("get", time.Now(), &err)

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		ac, err = getAnimalCare(ctx, conn, "animal_cares.get", id)
		return err
	})
	return ac, err
}

// FirstByAnimalID: una sola fila, la de menor animal_care_id.
func (r *AnimalCaresRepo) FirstByAnimalID(ctx context.Context, animalID int64) (ac animalcares.AnimalCare, err error) {
	const op = "animal_cares.get_by_animal"
	defer r.observe("get_by_animal", time.Now(), &err)

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT `+animalCareColumns+` FROM Animal_Care_have
			WHERE fk_Animal_animal_id = $1
			ORDER BY animal_care_id ASC
			LIMIT 1
		`, animalID)
		var err error
		ac, err = scanAnimalCare(row)
		if isNoRows(err) {
			return apperr.NotFound("Animal care for animal id %d not found", animalID)
		}
		if err != nil {
			return apperr.Result(op, err)
		}
		return nil
	})
	return ac, err
}

func (r *AnimalCaresRepo) Create(ctx context.Context, ac animalcares.AnimalCare) (_ animalcares.AnimalCare, err error) {
	const op = "animal_cares.create"
	defer r.observe("create", time.Now(), &err)

	id, err := r.insertWithNextID(ctx, op, "Animal_Care_have", "animal_care_id", func(tx *sql.Tx, id int64) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO Animal_Care_have (`+animalCareColumns+`) VALUES ($1, $2, $3, $4)`,
			id, dates.NullableOf(ac.DateOfCare), ac.CareID, ac.AnimalID,
		)
		return err
	})
	if err != nil {
		return animalcares.AnimalCare{}, err
	}

	ac.ID = id
	return ac, nil
}

func (r *AnimalCaresRepo) Update(ctx context.Context, id int64, p animalcares.Patch) (ac animalcares.AnimalCare, err error) {
	const op = "animal_cares.update"
	defer r.observe("update", time.Now(), &err)

	var set setClause
	if p.DateOfCare.Present {
		set.add("date_of_care", dates.NullableOf(p.DateOfCare.Value))
	}
	if p.CareID.Present && p.CareID.Value != nil {
		set.add("fk_Cares_cares_id", *p.CareID.Value)
	}
	if p.AnimalID.Present && p.AnimalID.Value != nil {
		set.add("fk_Animal_animal_id", *p.AnimalID.Value)
	}
	setSQL := set.list("animal_care_id")
	idArg := set.next(id)

	err = r.withTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE Animal_Care_have SET `+setSQL+` WHERE animal_care_id = `+idArg, set.args...)
		if err != nil {
			return apperr.Query(op, err)
		}
		if err := requireAffected(res, op, func() error { return animalCareNotFound(id) }); err != nil {
			return err
		}
		ac, err = getAnimalCare(ctx, tx, op, id)
		return err
	})
	return ac, err
}

func (r *AnimalCaresRepo) Delete(ctx context.Context, id int64) (err error) {
	const op = "animal_cares.delete"
	defer r.observe("delete", time.Now(), &err)

	return r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM Animal_Care_have WHERE animal_care_id = $1`, id)
		if err != nil {
			return apperr.Query(op, err)
		}
		return requireAffected(res, op, func() error { return animalCareNotFound(id) })
	})
}

func (r *AnimalCaresRepo) list(ctx context.Context, op, q string, args ...any) (out []animalcares.AnimalCare, err error) {
	err = r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, q, args...)
		if err != nil {
			return apperr.Query(op, err)
		}
		defer rows.Close()

		out = make([]animalcares.AnimalCare, 0)
		for rows.Next() {
			ac, err := scanAnimalCare(rows)
			if err != nil {
				return apperr.Result(op, err)
			}
			out = append(out, ac)
		}
		if err := rows.Err(); err != nil {
			return apperr.Result(op, err)
		}
		return nil
	})
	return out, err
}

func getAnimalCare(ctx context.Context, q querier, op string, id int64) (animalcares.AnimalCare, error) {
	row := q.QueryRowContext(ctx, `SELECT `+animalCareColumns+` FROM Animal_Care_have WHERE animal_care_id = $1`, id)
	ac, err := scanAnimalCare(row)
	if isNoRows(err) {
		return animalcares.AnimalCare{}, animalCareNotFound(id)
	}
	if err != nil {
		return animalcares.AnimalCare{}, apperr.Result(op, err)
	}
	return ac, nil
}

func scanAnimalCare(s scanner) (animalcares.AnimalCare, error) {
	var (
		ac   animalcares.AnimalCare
		date dates.Nullable
	)
	if err := s.Scan(&ac.ID, &date, &ac.CareID, &ac.AnimalID); err != nil {
		return animalcares.AnimalCare{}, err
	}
	ac.DateOfCare = date.Ptr()
	return ac, nil
}

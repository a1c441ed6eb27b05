package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"zoo-inventory/internal/domain/animals"
	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
)

const animalColumns = `animal_id, name, specie, habitat, description, country_of_origin, date_of_birth, is_active`

type AnimalsRepo struct {
	base
}

func NewAnimalsRepo(p *Provider, opts Options) *AnimalsRepo {
	return &AnimalsRepo{base: newBase(p, "animal", opts)}
}

var _ animals.Repository = (*AnimalsRepo)(nil)

func animalNotFound(id int64) error {
	return apperr.NotFound("Animal with id %d not found", id)
}

func (r *AnimalsRepo) List(ctx context.Context, f animals.ListFilter) (out []animals.Animal, err error) {
	const op = "animals.list"
	defer r.observe("list", time.Now(), &err)

	q := `SELECT ` + animalColumns + ` FROM Animal`
	var args []any
	if f.ActiveOnly {
		q += ` WHERE is_active = $1`
		args = append(args, true)
	}
	q += ` ORDER BY animal_id ASC`

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, q, args...)
		if err != nil {
			return apperr.Query(op, err)
		}
		defer rows.Close()

		out = make([]animals.Animal, 0)
		for rows.Next() {
			a, err := scanAnimal(rows)
			if err != nil {
				return apperr.Result(op, err)
			}
			out = append(out, a)
		}
		if err := rows.Err(); err != nil {
			return apperr.Result(op, err)
		}
		return nil
	})
	return out, err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (a animals.Animal, err error) {
	defer r.observe("get", time.Now(), &err)

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		a, err = getAnimal(ctx, conn, "animals.get", id)
		return err
	})
	return a, err
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (_ animals.Animal, err error) {
	const op = "animals.create"
	defer r.observe("create", time.Now(), &err)

	id, err := r.insertWithNextID(ctx, op, "Animal", "animal_id", func(tx *sql.Tx, id int64) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO Animal (`+animalColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			id,
			a.Name,
			a.Specie,
			nullString(a.Habitat),
			nullString(a.Description),
			nullString(a.CountryOfOrigin),
			dates.NullableOf(a.DateOfBirth),
			a.IsActive,
		)
		return err
	})
	if err != nil {
		return animals.Animal{}, err
	}

	a.ID = id
	return a, nil
}

// Update escribe solo las columnas presentes en p y relee la fila.
func (r *AnimalsRepo) Update(ctx context.Context, id int64, p animals.Patch) (a animals.Animal, err error) {
	const op = "animals.update"
	defer r.observe("update", time.Now(), &err)

	var set setClause
	if p.Name.Present && p.Name.Value != nil {
		set.add("name", *p.Name.Value)
	}
	if p.Specie.Present && p.Specie.Value != nil {
		set.add("specie", *p.Specie.Value)
	}
	if p.Habitat.Present {
		set.add("habitat", nullString(p.Habitat.Value))
	}
	if p.Description.Present {
		set.add("description", nullString(p.Description.Value))
	}
	if p.CountryOfOrigin.Present {
		set.add("country_of_origin", nullString(p.CountryOfOrigin.Value))
	}
	if p.DateOfBirth.Present {
		set.add("date_of_birth", dates.NullableOf(p.DateOfBirth.Value))
	}
	setSQL := set.list("animal_id")
	idArg := set.next(id)
	activeArg := set.next(true)

	err = r.withTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE Animal SET `+setSQL+` WHERE animal_id = `+idArg+` AND is_active = `+activeArg,
			set.args...,
		)
		if err != nil {
			return apperr.Query(op, err)
		}
		if err := requireAffected(res, op, func() error { return animalNotFound(id) }); err != nil {
			return err
		}
		a, err = getAnimal(ctx, tx, op, id)
		return err
	})
	return a, err
}

func (r *AnimalsRepo) Deactivate(ctx context.Context, id int64) (err error) {
	const op = "animals.deactivate"
	defer r.observe("deactivate", time.Now(), &err)

	return r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx,
			`UPDATE Animal SET is_active = $1 WHERE animal_id = $2 AND is_active = $3`,
			false, id, true,
		)
		if err != nil {
			return apperr.Query(op, err)
		}
		return requireAffected(res, op, func() error {
			return apperr.NotFound("Animal with id %d not found or already inactive", id)
		})
	})
}

func (r *AnimalsRepo) Delete(ctx context.Context, id int64) (err error) {
	const op = "animals.delete"
	defer r.observe("delete", time.Now(), &err)

	return r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM Animal WHERE animal_id = $1`, id)
		if err != nil {
			return apperr.Query(op, err)
		}
		return requireAffected(res, op, func() error { return animalNotFound(id) })
	})
}

// querier: *sql.Conn o *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getAnimal(ctx context.Context, q querier, op string, id int64) (animals.Animal, error) {
	row := q.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM Animal WHERE animal_id = $1`, id)
	a, err := scanAnimal(row)
	if isNoRows(err) {
		return animals.Animal{}, animalNotFound(id)
	}
	if err != nil {
		return animals.Animal{}, apperr.Result(op, err)
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a           animals.Animal
		habitat     sql.NullString
		description sql.NullString
		country     sql.NullString
		dob         dates.Nullable
	)
	if err := s.Scan(&a.ID, &a.Name, &a.Specie, &habitat, &description, &country, &dob, &a.IsActive); err != nil {
		return animals.Animal{}, err
	}
	a.Habitat = stringPtr(habitat)
	a.Description = stringPtr(description)
	a.CountryOfOrigin = stringPtr(country)
	a.DateOfBirth = dob.Ptr()
	return a, nil
}

package dates

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO es el formato canónico (entrada y salida).
	LayoutISO = "2006-01-02"
	// LayoutDMY es el formato día/mes/año que manda el frontend.
	LayoutDMY = "02/01/2006"
)

var ErrInvalidDate = errors.New("date must be DD/MM/YYYY or YYYY-MM-DD")

// Date es una fecha de calendario (sin hora), guardada como medianoche UTC.
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime descarta la hora y se queda con el día en la zona de t.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) String() string { return d.t.Format(LayoutISO) }

// Normalize convierte texto libre en fecha.
// - nil => nil
// - contiene "/" => DD/MM/YYYY
// - si no => YYYY-MM-DD (o un timestamp RFC3339, que se recorta al día)
// Un texto que no calza con el formato elegido devuelve nil, sin error.
func Normalize(text *string) *Date {
	d, err := ParseStrict(text)
	if err != nil {
		return nil
	}
	return d
}

// ParseStrict distingue "no enviado" (nil, nil) de "enviado pero inválido" (nil, ErrInvalidDate).
func ParseStrict(text *string) (*Date, error) {
	if text == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*text)
	if s == "" {
		return nil, ErrInvalidDate
	}

	if strings.Contains(s, "/") {
		t, err := time.Parse(LayoutDMY, s)
		if err != nil {
			return nil, ErrInvalidDate
		}
		d := FromTime(t)
		return &d, nil
	}

	if t, err := time.Parse(LayoutISO, s); err == nil {
		d := FromTime(t)
		return &d, nil
	}
	// El frontend manda `new Date()` serializado (ej: 2025-10-16T12:04:05.000Z).
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		d := FromTime(t)
		return &d, nil
	}
	return nil, ErrInvalidDate
}

// Policy decide qué hacer con una fecha no parseable.
// Strict=false (default) la trata como "no enviada"; Strict=true devuelve ErrInvalidDate.
type Policy struct {
	Strict bool
}

func (p Policy) Parse(text *string) (*Date, error) {
	if p.Strict {
		return ParseStrict(text)
	}
	return Normalize(text), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	p, err := ParseStrict(&s)
	if err != nil {
		return err
	}
	*d = *p
	return nil
}

// Value guarda la fecha como time.Time; DATE en Postgres, texto en SQLite.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan acepta lo que devuelven pgx (time.Time) y modernc/sqlite (time.Time o texto).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = New(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("dates: cannot scan %T into Date", src)
	}
}

var storedLayouts = []string{
	LayoutISO,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

func (d *Date) scanText(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range storedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = New(t.Year(), t.Month(), t.Day())
			return nil
		}
	}
	return fmt.Errorf("dates: cannot parse stored value %q", s)
}

// Nullable adapta *Date para Scan/Exec (NULL <=> nil).
type Nullable struct {
	Date  Date
	Valid bool
}

func NullableOf(d *Date) Nullable {
	if d == nil {
		return Nullable{}
	}
	return Nullable{Date: *d, Valid: true}
}

func (n Nullable) Ptr() *Date {
	if !n.Valid {
		return nil
	}
	d := n.Date
	return &d
}

func (n Nullable) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Date.Value()
}

func (n *Nullable) Scan(src any) error {
	if src == nil {
		*n = Nullable{}
		return nil
	}
	if err := n.Date.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

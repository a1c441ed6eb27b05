package animals

import (
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/patch"
)

// Animal es un registro de la tabla Animal. Se da de baja con soft delete (IsActive=false).
type Animal struct {
	ID     int64
	Name   string
	Specie string

	Habitat         *string
	Description     *string
	CountryOfOrigin *string
	DateOfBirth     *dates.Date

	IsActive bool
}

// Patch es una actualización parcial ya validada y normalizada.
// Campo ausente = no tocar la columna; Null = limpiar.
type Patch struct {
	Name   patch.Field[string]
	Specie patch.Field[string]

	Habitat         patch.Field[string]
	Description     patch.Field[string]
	CountryOfOrigin patch.Field[string]
	DateOfBirth     patch.Field[dates.Date]
}

// Apply devuelve a con los campos presentes del patch sobrescritos.
func (p Patch) Apply(a Animal) Animal {
	if p.Name.Present && p.Name.Value != nil {
		a.Name = *p.Name.Value
	}
	if p.Specie.Present && p.Specie.Value != nil {
		a.Specie = *p.Specie.Value
	}
	if p.Habitat.Present {
		a.Habitat = p.Habitat.Value
	}
	if p.Description.Present {
		a.Description = p.Description.Value
	}
	if p.CountryOfOrigin.Present {
		a.CountryOfOrigin = p.CountryOfOrigin.Value
	}
	if p.DateOfBirth.Present {
		a.DateOfBirth = p.DateOfBirth.Value
	}
	return a
}

type ListFilter struct {
	ActiveOnly bool
}

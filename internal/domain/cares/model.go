package cares

import "zoo-inventory/internal/platform/patch"

// Care es un tipo de cuidado (alimentación, veterinario, limpieza...). Tabla Cares.
type Care struct {
	ID         int64
	TypeOfCare string
	Frequency  string

	Description *string
}

// Patch: type_of_care y frequency no aceptan null; description sí.
type Patch struct {
	TypeOfCare  patch.Field[string]
	Frequency   patch.Field[string]
	Description patch.Field[string]
}

func (p Patch) Apply(c Care) Care {
	if p.TypeOfCare.Present && p.TypeOfCare.Value != nil {
		c.TypeOfCare = *p.TypeOfCare.Value
	}
	if p.Frequency.Present && p.Frequency.Value != nil {
		c.Frequency = *p.Frequency.Value
	}
	if p.Description.Present {
		c.Description = p.Description.Value
	}
	return c
}

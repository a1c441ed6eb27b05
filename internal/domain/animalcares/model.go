package animalcares

import (
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/patch"
)

// AnimalCare es una instancia de cuidado para un animal (tabla Animal_Care_have).
// Las FKs no se validan acá; si hay integridad referencial la impone la base.
type AnimalCare struct {
	ID         int64
	DateOfCare *dates.Date
	CareID     int64
	AnimalID   int64
}

type Patch struct {
	DateOfCare patch.Field[dates.Date]
	CareID     patch.Field[int64]
	AnimalID   patch.Field[int64]
}

func (p Patch) Apply(ac AnimalCare) AnimalCare {
	if p.DateOfCare.Present {
		ac.DateOfCare = p.DateOfCare.Value
	}
	if p.CareID.Present && p.CareID.Value != nil {
		ac.CareID = *p.CareID.Value
	}
	if p.AnimalID.Present && p.AnimalID.Value != nil {
		ac.AnimalID = *p.AnimalID.Value
	}
	return ac
}

package animals

import (
	"context"
	"fmt"
	"strings"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/logger"
	"zoo-inventory/internal/platform/patch"
)

type Options struct {
	// ListActiveOnly: /animals/list muestra solo activos (variante "active" del despliegue).
	ListActiveOnly bool
	Dates          dates.Policy
	Logger         logger.Logger
}

type Service struct {
	repo Repository
	opts Options
	log  logger.Logger
}

func NewService(repo Repository, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		opts: opts,
		log:  log.With(map[string]any{"component": "animals"}),
	}
}

type CreateInput struct {
	Name   string
	Specie string

	Habitat         *string
	Description     *string
	CountryOfOrigin *string
	DateOfBirth     *string // DD/MM/YYYY o YYYY-MM-DD
}

// UpdateInput llega del handler con presencia de campos ya detectada.
type UpdateInput struct {
	Name            patch.Field[string]
	Specie          patch.Field[string]
	Habitat         patch.Field[string]
	Description     patch.Field[string]
	CountryOfOrigin patch.Field[string]
	DateOfBirth     patch.Field[string]
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx, ListFilter{ActiveOnly: s.opts.ListActiveOnly})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, apperr.Validation("Name is required and cannot be empty")
	}
	if strings.TrimSpace(in.Specie) == "" {
		return Animal{}, apperr.Validation("Specie is required and cannot be empty")
	}

	dob, err := s.opts.Dates.Parse(in.DateOfBirth)
	if err != nil {
		return Animal{}, apperr.Validation(fmt.Sprintf("date_of_birth: %v", err))
	}

	created, err := s.repo.Create(ctx, Animal{
		Name:            in.Name,
		Specie:          in.Specie,
		Habitat:         in.Habitat,
		Description:     in.Description,
		CountryOfOrigin: in.CountryOfOrigin,
		DateOfBirth:     dob,
		IsActive:        true,
	})
	if err != nil {
		return Animal{}, err
	}

	s.log.Info("animal created", map[string]any{"animal_id": created.ID})
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Animal, error) {
	p := Patch{
		Habitat:         in.Habitat,
		Description:     in.Description,
		CountryOfOrigin: in.CountryOfOrigin,
	}

	var err error
	if p.Name, err = requiredField(in.Name, "Name"); err != nil {
		return Animal{}, err
	}
	if p.Specie, err = requiredField(in.Specie, "Specie"); err != nil {
		return Animal{}, err
	}
	if p.DateOfBirth, err = s.dateField(in.DateOfBirth, "date_of_birth"); err != nil {
		return Animal{}, err
	}

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return Animal{}, err
	}

	s.log.Info("animal updated", map[string]any{"animal_id": id})
	return updated, nil
}

// Deactivate no es idempotente: la segunda llamada devuelve NotFound.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info("animal deactivated", map[string]any{"animal_id": id})
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("animal deleted", map[string]any{"animal_id": id})
	return nil
}

// requiredField: si viene, no puede ser null ni vacío.
func requiredField(f patch.Field[string], label string) (patch.Field[string], error) {
	if !f.Present {
		return f, nil
	}
	if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
		return patch.Field[string]{}, apperr.Validation(label + " cannot be empty")
	}
	return f, nil
}

func (s *Service) dateField(f patch.Field[string], label string) (patch.Field[dates.Date], error) {
	if !f.Present {
		return patch.Field[dates.Date]{}, nil
	}
	if f.IsNull() {
		return patch.Null[dates.Date](), nil
	}
	d, err := s.opts.Dates.Parse(f.Value)
	if err != nil {
		return patch.Field[dates.Date]{}, apperr.Validation(fmt.Sprintf("%s: %v", label, err))
	}
	if d == nil {
		// modo leniente: fecha ilegible == no enviada
		return patch.Field[dates.Date]{}, nil
	}
	return patch.Set(*d), nil
}

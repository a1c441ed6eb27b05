package animalcares

import (
	"context"
	"fmt"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/logger"
	"zoo-inventory/internal/platform/patch"
)

type Options struct {
	Dates  dates.Policy
	Logger logger.Logger
}

type Service struct {
	repo  Repository
	dates dates.Policy
	log   logger.Logger
}

func NewService(repo Repository, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		dates: opts.Dates,
		log:   log.With(map[string]any{"component": "animal_cares"}),
	}
}

type CreateInput struct {
	DateOfCare *string // DD/MM/YYYY, YYYY-MM-DD o timestamp RFC3339
	CareID     int64
	AnimalID   int64
}

type UpdateInput struct {
	DateOfCare patch.Field[string]
	CareID     patch.Field[int64]
	AnimalID   patch.Field[int64]
}

func (s *Service) List(ctx context.Context) ([]AnimalCare, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (AnimalCare, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByAnimalID devuelve UNA sola relación (la de menor ID) aunque el animal tenga varias.
// Para todas está ListByAnimalID.
func (s *Service) GetByAnimalID(ctx context.Context, animalID int64) (AnimalCare, error) {
	return s.repo.FirstByAnimalID(ctx, animalID)
}

func (s *Service) ListByAnimalID(ctx context.Context, animalID int64) ([]AnimalCare, error) {
	return s.repo.ListByAnimalID(ctx, animalID)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (AnimalCare, error) {
	d, err := s.dates.Parse(in.DateOfCare)
	if err != nil {
		return AnimalCare{}, apperr.Validation(fmt.Sprintf("date_of_care: %v", err))
	}

	created, err := s.repo.Create(ctx, AnimalCare{
		DateOfCare: d,
		CareID:     in.CareID,
		AnimalID:   in.AnimalID,
	})
	if err != nil {
		return AnimalCare{}, err
	}

	s.log.Info("animal care created", map[string]any{
		"animal_care_id": created.ID,
		"animal_id":      created.AnimalID,
		"cares_id":       created.CareID,
	})
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (AnimalCare, error) {
	p := Patch{CareID: in.CareID, AnimalID: in.AnimalID}
	if in.CareID.IsNull() {
		return AnimalCare{}, apperr.Validation("fk_cares_cares_id cannot be null")
	}
	if in.AnimalID.IsNull() {
		return AnimalCare{}, apperr.Validation("fk_animal_animal_id cannot be null")
	}

	switch {
	case !in.DateOfCare.Present:
	case in.DateOfCare.IsNull():
		p.DateOfCare = patch.Null[dates.Date]()
	default:
		d, err := s.dates.Parse(in.DateOfCare.Value)
		if err != nil {
			return AnimalCare{}, apperr.Validation(fmt.Sprintf("date_of_care: %v", err))
		}
		if d != nil {
			p.DateOfCare = patch.Set(*d)
		}
	}

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return AnimalCare{}, err
	}
	s.log.Info("animal care updated", map[string]any{"animal_care_id": id})
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("animal care deleted", map[string]any{"animal_care_id": id})
	return nil
}

package cares

import (
	"context"
	"strings"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/logger"
	"zoo-inventory/internal/platform/patch"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "cares"}),
	}
}

type CreateInput struct {
	TypeOfCare  string
	Frequency   string
	Description *string
}

type UpdateInput struct {
	TypeOfCare  patch.Field[string]
	Frequency   patch.Field[string]
	Description patch.Field[string]
}

func (s *Service) List(ctx context.Context) ([]Care, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Care, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Care, error) {
	if strings.TrimSpace(in.TypeOfCare) == "" {
		return Care{}, apperr.Validation("Type of care is required and cannot be empty")
	}
	if strings.TrimSpace(in.Frequency) == "" {
		return Care{}, apperr.Validation("Frequency is required and cannot be empty")
	}

	created, err := s.repo.Create(ctx, Care{
		TypeOfCare:  in.TypeOfCare,
		Frequency:   in.Frequency,
		Description: in.Description,
	})
	if err != nil {
		return Care{}, err
	}

	s.log.Info("care created", map[string]any{"cares_id": created.ID})
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Care, error) {
	if err := nonBlank(in.TypeOfCare, "Type of care"); err != nil {
		return Care{}, err
	}
	if err := nonBlank(in.Frequency, "Frequency"); err != nil {
		return Care{}, err
	}

	updated, err := s.repo.Update(ctx, id, Patch{
		TypeOfCare:  in.TypeOfCare,
		Frequency:   in.Frequency,
		Description: in.Description,
	})
	if err != nil {
		return Care{}, err
	}

	s.log.Info("care updated", map[string]any{"cares_id": id})
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("care deleted", map[string]any{"cares_id": id})
	return nil
}

func nonBlank(f patch.Field[string], label string) error {
	if !f.Present {
		return nil
	}
	if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
		return apperr.Validation(label + " cannot be empty")
	}
	return nil
}

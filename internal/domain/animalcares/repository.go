package animalcares

import "context"

type Repository interface {
	List(ctx context.Context) ([]AnimalCare, error)
	GetByID(ctx context.Context, id int64) (AnimalCare, error)
	// FirstByAnimalID devuelve la relación de menor ID del animal.
	FirstByAnimalID(ctx context.Context, animalID int64) (AnimalCare, error)
	ListByAnimalID(ctx context.Context, animalID int64) ([]AnimalCare, error)
	Create(ctx context.Context, ac AnimalCare) (AnimalCare, error)
	Update(ctx context.Context, id int64, p Patch) (AnimalCare, error)
	Delete(ctx context.Context, id int64) error
}

package animals

import "context"

// Repository devuelve errores de apperr: NotFound cuando no hay fila afectada.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Animal, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	// Create asigna el ID (MAX+1) e inserta en la misma transacción.
	Create(ctx context.Context, a Animal) (Animal, error)
	// Update solo afecta animales activos y devuelve la fila releída.
	Update(ctx context.Context, id int64, p Patch) (Animal, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

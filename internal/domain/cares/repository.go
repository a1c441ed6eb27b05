package cares

import "context"

type Repository interface {
	List(ctx context.Context) ([]Care, error)
	GetByID(ctx context.Context, id int64) (Care, error)
	Create(ctx context.Context, c Care) (Care, error)
	Update(ctx context.Context, id int64, p Patch) (Care, error)
	Delete(ctx context.Context, id int64) error
}

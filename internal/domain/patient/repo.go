package patient

import "context"

// Repository stores patients. Lookups of a missing patient and writes to an
// unknown id fail with apperr.ErrNotFound; a duplicate CPF fails with
// apperr.ErrConflict.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	GetByCPF(ctx context.Context, cpf string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Patient, error)
}

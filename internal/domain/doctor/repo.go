package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Doctor, error)
	// ListBySpecialty matches specialty as a substring, ordered by name.
	ListBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error)
}

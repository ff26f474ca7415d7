package history

import "context"

type Repository interface {
	Create(ctx context.Context, h *History) error
	GetByID(ctx context.Context, id int64) (*History, error)
	Update(ctx context.Context, h *History) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*History, error)
}

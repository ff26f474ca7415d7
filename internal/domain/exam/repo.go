package exam

import "context"

type Repository interface {
	Create(ctx context.Context, e *Exam) error
	GetByID(ctx context.Context, id int64) (*Exam, error)
	Update(ctx context.Context, e *Exam) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Exam, error)
}

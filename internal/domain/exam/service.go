package exam

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/validate"
)

type Service struct {
	exams Repository
}

func NewService(repo Repository) *Service {
	return &Service{exams: repo}
}

func (s *Service) List(ctx context.Context) ([]*Exam, error) {
	items, err := s.exams.List(ctx)
	return items, apperr.Persistence("list exams", err)
}

// ResultSummaries returns one report line per exam.
func (s *Service) ResultSummaries(ctx context.Context) ([]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.Summary())
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Exam, error) {
	if id <= 0 {
		return nil, apperr.Invalid("exam id must be a positive integer")
	}
	e, err := s.exams.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get exam", err)
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, req Request) (*Exam, error) {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	e := &Exam{Name: req.Name, Result: req.Result, ResultStatus: req.ResultStatus}
	if err := s.exams.Create(ctx, e); err != nil {
		return nil, apperr.Persistence("create exam", err)
	}
	zerolog.Ctx(ctx).Info().Int64("exam_id", e.ID).Msg("exam created")
	return e, nil
}

func (s *Service) Update(ctx context.Context, id int64, req Request) (*Exam, error) {
	if id <= 0 {
		return nil, apperr.Invalid("exam id must be a positive integer")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	e := &Exam{ID: id, Name: req.Name, Result: req.Result, ResultStatus: req.ResultStatus}
	if err := s.exams.Update(ctx, e); err != nil {
		return nil, apperr.Persistence("update exam", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("exam id must be a positive integer")
	}
	if err := s.exams.Delete(ctx, id); err != nil {
		return apperr.Persistence("delete exam", err)
	}
	zerolog.Ctx(ctx).Info().Int64("exam_id", id).Msg("exam deleted")
	return nil
}

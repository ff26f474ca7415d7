package history

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/validate"
)

type Service struct {
	histories Repository
}

func NewService(repo Repository) *Service {
	return &Service{histories: repo}
}

func (s *Service) List(ctx context.Context) ([]*History, error) {
	items, err := s.histories.List(ctx)
	return items, apperr.Persistence("list consultation histories", err)
}

// ListCritical returns the records whose diagnosis is critical.
func (s *Service) ListCritical(ctx context.Context) ([]*History, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*History, 0)
	for _, h := range items {
		if h.Critical() {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*History, error) {
	if id <= 0 {
		return nil, apperr.Invalid("history id must be a positive integer")
	}
	h, err := s.histories.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get consultation history", err)
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, req Request) (*History, error) {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	h := &History{Symptoms: req.Symptoms, Diagnosis: req.Diagnosis, Notes: req.Notes}
	if err := s.histories.Create(ctx, h); err != nil {
		return nil, apperr.Persistence("create consultation history", err)
	}
	zerolog.Ctx(ctx).Info().
		Int64("history_id", h.ID).
		Bool("critical", h.Critical()).
		Msg("consultation history created")
	return h, nil
}

func (s *Service) Update(ctx context.Context, id int64, req Request) (*History, error) {
	if id <= 0 {
		return nil, apperr.Invalid("history id must be a positive integer")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	h := &History{ID: id, Symptoms: req.Symptoms, Diagnosis: req.Diagnosis, Notes: req.Notes}
	if err := s.histories.Update(ctx, h); err != nil {
		return nil, apperr.Persistence("update consultation history", err)
	}
	return h, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("history id must be a positive integer")
	}
	if err := s.histories.Delete(ctx, id); err != nil {
		return apperr.Persistence("delete consultation history", err)
	}
	return nil
}

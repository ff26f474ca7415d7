package doctor

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/validate"
)

type Service struct {
	doctors Repository
}

func NewService(repo Repository) *Service {
	return &Service{doctors: repo}
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	items, err := s.doctors.List(ctx)
	return items, apperr.Persistence("list doctors", err)
}

func (s *Service) ListBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error) {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return nil, apperr.Invalid("especialidade is required")
	}
	items, err := s.doctors.ListBySpecialty(ctx, specialty)
	return items, apperr.Persistence("list doctors by specialty", err)
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	if id <= 0 {
		return nil, apperr.Invalid("doctor id must be a positive integer")
	}
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get doctor", err)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, req Request) (*Doctor, error) {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	d := &Doctor{Name: req.Name, Specialty: req.Specialty, CRM: req.CRM}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, apperr.Persistence("create doctor", err)
	}
	zerolog.Ctx(ctx).Info().Int64("doctor_id", d.ID).Msg("doctor created")
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, req Request) (*Doctor, error) {
	if id <= 0 {
		return nil, apperr.Invalid("doctor id must be a positive integer")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	d := &Doctor{ID: id, Name: req.Name, Specialty: req.Specialty, CRM: req.CRM}
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, apperr.Persistence("update doctor", err)
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("doctor id must be a positive integer")
	}
	if err := s.doctors.Delete(ctx, id); err != nil {
		return apperr.Persistence("delete doctor", err)
	}
	zerolog.Ctx(ctx).Info().Int64("doctor_id", id).Msg("doctor deleted")
	return nil
}

package patient

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/validate"
)

type Service struct {
	patients Repository
}

func NewService(repo Repository) *Service {
	return &Service{patients: repo}
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	items, err := s.patients.List(ctx)
	return items, apperr.Persistence("list patients", err)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	if id <= 0 {
		return nil, apperr.Invalid("patient id must be a positive integer")
	}
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get patient", err)
	}
	return p, nil
}

func (s *Service) GetByCPF(ctx context.Context, cpf string) (*Patient, error) {
	cpf = NormalizeCPF(cpf)
	if len(cpf) != 11 {
		return nil, apperr.Invalid("cpf must have exactly 11 digits")
	}
	p, err := s.patients.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, apperr.Persistence("get patient by cpf", err)
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req Request) (*Patient, error) {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if err := s.ensureCPFFree(ctx, req.CPF, 0); err != nil {
		return nil, err
	}
	p := &Patient{Name: req.Name, CPF: req.CPF}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, apperr.Persistence("create patient", err)
	}
	zerolog.Ctx(ctx).Info().Int64("patient_id", p.ID).Msg("patient created")
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req Request) (*Patient, error) {
	if id <= 0 {
		return nil, apperr.Invalid("patient id must be a positive integer")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.patients.GetByID(ctx, id); err != nil {
		return nil, apperr.Persistence("get patient", err)
	}
	if err := s.ensureCPFFree(ctx, req.CPF, id); err != nil {
		return nil, err
	}
	p := &Patient{ID: id, Name: req.Name, CPF: req.CPF}
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, apperr.Persistence("update patient", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("patient id must be a positive integer")
	}
	if err := s.patients.Delete(ctx, id); err != nil {
		return apperr.Persistence("delete patient", err)
	}
	zerolog.Ctx(ctx).Info().Int64("patient_id", id).Msg("patient deleted")
	return nil
}

// ensureCPFFree fails with a conflict when cpf belongs to a patient other
// than self. The UNIQUE constraint still backs this check under races.
func (s *Service) ensureCPFFree(ctx context.Context, cpf string, self int64) error {
	existing, err := s.patients.GetByCPF(ctx, cpf)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return nil
	case err != nil:
		return apperr.Persistence("get patient by cpf", err)
	case existing.ID != self:
		return apperr.Conflict("cpf %s is already registered", cpf)
	}
	return nil
}

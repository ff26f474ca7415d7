package consultation

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/telehealth/telehealth/internal/domain/doctor"
	"github.com/telehealth/telehealth/internal/domain/exam"
	"github.com/telehealth/telehealth/internal/domain/patient"
	"github.com/telehealth/telehealth/internal/platform/apperr"
)

const (
	maxStatusLen = 20
	maxLinkLen   = 255
)

// Service validates consultation requests, resolves the referenced patient,
// doctor and exam, and persists the aggregate. No write happens unless every
// check and lookup succeeded.
type Service struct {
	consultations Repository
	patients      PatientLookup
	doctors       DoctorLookup
	exams         ExamLookup
}

func NewService(repo Repository, patients PatientLookup, doctors DoctorLookup, exams ExamLookup) *Service {
	return &Service{consultations: repo, patients: patients, doctors: doctors, exams: exams}
}

// references holds the rows resolved for a request. exam is nil when the
// request carries no exam.
type references struct {
	patient *patient.Patient
	doctor  *doctor.Doctor
	exam    *exam.Exam
}

func (s *Service) Create(ctx context.Context, req Request) (*Consultation, error) {
	refs, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	c := build(req, refs)
	if err := s.consultations.Create(ctx, c); err != nil {
		return nil, apperr.Persistence("create consultation", err)
	}
	zerolog.Ctx(ctx).Info().
		Int64("consultation_id", c.ID).
		Int64("patient_id", c.PatientID).
		Int64("doctor_id", c.DoctorID).
		Msg("consultation created")
	return c, nil
}

// Update replaces every field of consultation id. A request without an exam
// clears the stored exam.
func (s *Service) Update(ctx context.Context, id int64, req Request) error {
	if id <= 0 {
		return apperr.Invalid("consultation id must be a positive integer")
	}
	refs, err := s.prepare(ctx, req)
	if err != nil {
		return err
	}
	if _, err := s.consultations.GetByID(ctx, id); err != nil {
		return apperr.Persistence("get consultation", err)
	}
	c := build(req, refs)
	c.ID = id
	// The row may vanish after the pre-check; the repository's affected-row
	// count decides.
	if err := s.consultations.Update(ctx, c); err != nil {
		return apperr.Persistence("update consultation", err)
	}
	zerolog.Ctx(ctx).Info().Int64("consultation_id", id).Msg("consultation updated")
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("consultation id must be a positive integer")
	}
	if _, err := s.consultations.GetByID(ctx, id); err != nil {
		return apperr.Persistence("get consultation", err)
	}
	if err := s.consultations.Delete(ctx, id); err != nil {
		return apperr.Persistence("delete consultation", err)
	}
	zerolog.Ctx(ctx).Info().Int64("consultation_id", id).Msg("consultation deleted")
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Consultation, error) {
	if id <= 0 {
		return nil, apperr.Invalid("consultation id must be a positive integer")
	}
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get consultation", err)
	}
	return c, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*Consultation, error) {
	items, err := s.consultations.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("list consultations", err)
	}
	return items, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*Consultation, error) {
	if doctorID <= 0 {
		return nil, apperr.Invalid("doctor id must be a positive integer")
	}
	items, err := s.consultations.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, apperr.Persistence("list consultations by doctor", err)
	}
	return items, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Consultation, error) {
	if patientID <= 0 {
		return nil, apperr.Invalid("patient id must be a positive integer")
	}
	items, err := s.consultations.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperr.Persistence("list consultations by patient", err)
	}
	return items, nil
}

// prepare runs the field checks, then the reference checks, then resolves
// patient, doctor and exam in that order. The first failure wins.
func (s *Service) prepare(ctx context.Context, req Request) (*references, error) {
	if err := checkFields(req); err != nil {
		return nil, err
	}
	if err := checkReferences(req); err != nil {
		return nil, err
	}

	var refs references
	p, err := s.patients.GetByID(ctx, *req.PatientID)
	if err != nil {
		return nil, resolveError("patient", *req.PatientID, err)
	}
	refs.patient = p

	d, err := s.doctors.GetByID(ctx, *req.DoctorID)
	if err != nil {
		return nil, resolveError("doctor", *req.DoctorID, err)
	}
	refs.doctor = d

	if req.ExamID != nil {
		e, err := s.exams.GetByID(ctx, *req.ExamID)
		if err != nil {
			return nil, resolveError("exam", *req.ExamID, err)
		}
		refs.exam = e
	}
	return &refs, nil
}

func checkFields(req Request) error {
	if req.Date == nil || req.Date.IsZero() {
		return apperr.Invalid("dataConsulta is required")
	}
	if strings.TrimSpace(req.Status) == "" {
		return apperr.Invalid("status is required")
	}
	if utf8.RuneCountInString(req.Status) > maxStatusLen {
		return apperr.Invalid("status must not exceed %d characters", maxStatusLen)
	}
	if strings.TrimSpace(req.Link) == "" {
		return apperr.Invalid("link is required")
	}
	if utf8.RuneCountInString(req.Link) > maxLinkLen {
		return apperr.Invalid("link must not exceed %d characters", maxLinkLen)
	}
	return nil
}

func checkReferences(req Request) error {
	if req.PatientID == nil {
		return apperr.Invalid("id_paciente is required")
	}
	if *req.PatientID <= 0 {
		return apperr.Invalid("id_paciente must be a positive integer")
	}
	if req.DoctorID == nil {
		return apperr.Invalid("id_medico is required")
	}
	if *req.DoctorID <= 0 {
		return apperr.Invalid("id_medico must be a positive integer")
	}
	if req.ExamID != nil && *req.ExamID <= 0 {
		return apperr.Invalid("id_exame must be a positive integer")
	}
	return nil
}

func resolveError(entity string, id int64, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.ReferenceNotFound(entity, id)
	}
	return apperr.Persistence("resolve "+entity, err)
}

func build(req Request, refs *references) *Consultation {
	c := &Consultation{
		Date:      *req.Date,
		Status:    req.Status,
		Link:      req.Link,
		PatientID: *req.PatientID,
		DoctorID:  *req.DoctorID,
		Patient:   refs.patient,
		Doctor:    refs.doctor,
		Exam:      refs.exam,
	}
	if req.ExamID != nil {
		id := *req.ExamID
		c.ExamID = &id
	}
	return c
}

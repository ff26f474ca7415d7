package consultation

import (
	"context"

	"github.com/telehealth/telehealth/internal/domain/doctor"
	"github.com/telehealth/telehealth/internal/domain/exam"
	"github.com/telehealth/telehealth/internal/domain/patient"
)

// Repository persists consultations. Reads return the aggregate with its
// snapshots; lists are ordered by date, most recent first. Update and Delete
// fail with apperr.ErrNotFound when no row has the id.
type Repository interface {
	Create(ctx context.Context, c *Consultation) error
	GetByID(ctx context.Context, id int64) (*Consultation, error)
	Update(ctx context.Context, c *Consultation) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Consultation, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Consultation, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Consultation, error)
}

// The lookups resolve references before a write. A missing row is reported
// with apperr.ErrNotFound. The entity repositories satisfy them.

type PatientLookup interface {
	GetByID(ctx context.Context, id int64) (*patient.Patient, error)
}

type DoctorLookup interface {
	GetByID(ctx context.Context, id int64) (*doctor.Doctor, error)
}

type ExamLookup interface {
	GetByID(ctx context.Context, id int64) (*exam.Exam, error)
}

package consultation

import (
	"github.com/telehealth/telehealth/internal/domain/doctor"
	"github.com/telehealth/telehealth/internal/domain/exam"
	"github.com/telehealth/telehealth/internal/domain/patient"
	"github.com/telehealth/telehealth/internal/platform/caldate"
)

// Consultation is an online consultation. Patient, Doctor and Exam are
// read-side snapshots filled from the referenced rows; only the ids are
// stored. ExamID is nil when the consultation has no exam.
type Consultation struct {
	ID        int64        `json:"idConsulta"`
	Date      caldate.Date `json:"dataConsulta"`
	Status    string       `json:"status"`
	Link      string       `json:"link"`
	PatientID int64        `json:"-"`
	DoctorID  int64        `json:"-"`
	ExamID    *int64       `json:"-"`

	Patient *patient.Patient `json:"paciente"`
	Doctor  *doctor.Doctor   `json:"medico"`
	Exam    *exam.Exam       `json:"exame"`
}

// Request is the create/update payload. Absent references decode to nil.
type Request struct {
	Date      *caldate.Date `json:"dataConsulta"`
	Status    string        `json:"status"`
	Link      string        `json:"link"`
	PatientID *int64        `json:"id_paciente"`
	DoctorID  *int64        `json:"id_medico"`
	ExamID    *int64        `json:"id_exame"`
}

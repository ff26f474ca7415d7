package consultation

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/telehealth/telehealth/internal/domain/doctor"
	"github.com/telehealth/telehealth/internal/domain/exam"
	"github.com/telehealth/telehealth/internal/domain/patient"
	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/caldate"
	"github.com/telehealth/telehealth/internal/platform/db"
)

type consultationRepoPG struct{ q db.Querier }

func NewConsultationRepoPG(q db.Querier) Repository {
	return &consultationRepoPG{q: q}
}

const consultationSelect = `
SELECT oc.id, oc.consultation_date, oc.status, oc.link,
       oc.patient_id, oc.doctor_id, oc.exam_id,
       p.id, p.name, p.cpf,
       d.id, d.name, d.specialty, d.crm,
       e.id, e.name, e.result, e.result_status
FROM online_consultations oc
LEFT JOIN patients p ON p.id = oc.patient_id
LEFT JOIN doctors d ON d.id = oc.doctor_id
LEFT JOIN exams e ON e.id = oc.exam_id`

const consultationOrder = ` ORDER BY oc.consultation_date DESC, oc.id DESC`

func (r *consultationRepoPG) scanRow(row pgx.Row) (*Consultation, error) {
	var (
		c                            Consultation
		date                         time.Time
		examID                       pgtype.Int8
		pID                          pgtype.Int8
		pName, pCPF                  pgtype.Text
		dID, dCRM                    pgtype.Int8
		dName, dSpecialty            pgtype.Text
		eID                          pgtype.Int8
		eName, eResult, eResultState pgtype.Text
	)
	err := row.Scan(
		&c.ID, &date, &c.Status, &c.Link,
		&c.PatientID, &c.DoctorID, &examID,
		&pID, &pName, &pCPF,
		&dID, &dName, &dSpecialty, &dCRM,
		&eID, &eName, &eResult, &eResultState,
	)
	if err != nil {
		return nil, err
	}
	c.Date = caldate.FromTime(date)
	if examID.Valid {
		id := examID.Int64
		c.ExamID = &id
	}
	if pID.Valid {
		c.Patient = &patient.Patient{ID: pID.Int64, Name: pName.String, CPF: pCPF.String}
	}
	if dID.Valid {
		c.Doctor = &doctor.Doctor{ID: dID.Int64, Name: dName.String, Specialty: dSpecialty.String, CRM: dCRM.Int64}
	}
	if eID.Valid {
		c.Exam = &exam.Exam{ID: eID.Int64, Name: eName.String, Result: eResult.String, ResultStatus: eResultState.String}
	}
	return &c, nil
}

// nullableID maps an absent reference to SQL NULL.
func nullableID(id *int64) pgtype.Int8 {
	if id == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *id, Valid: true}
}

func (r *consultationRepoPG) Create(ctx context.Context, c *Consultation) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO online_consultations (consultation_date, status, link, patient_id, doctor_id, exam_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		c.Date.Time(), c.Status, c.Link, c.PatientID, c.DoctorID, nullableID(c.ExamID),
	).Scan(&c.ID)
	if db.IsForeignKeyViolation(err) {
		return referenceError(err, c)
	}
	return err
}

func (r *consultationRepoPG) GetByID(ctx context.Context, id int64) (*Consultation, error) {
	c, err := r.scanRow(r.q.QueryRow(ctx, consultationSelect+` WHERE oc.id = $1`, id))
	if db.IsNoRows(err) {
		return nil, apperr.NotFound("consultation", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *consultationRepoPG) Update(ctx context.Context, c *Consultation) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE online_consultations
		SET consultation_date = $2, status = $3, link = $4,
		    patient_id = $5, doctor_id = $6, exam_id = $7
		WHERE id = $1`,
		c.ID, c.Date.Time(), c.Status, c.Link, c.PatientID, c.DoctorID, nullableID(c.ExamID),
	)
	if db.IsForeignKeyViolation(err) {
		return referenceError(err, c)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("consultation", c.ID)
	}
	return nil
}

func (r *consultationRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM online_consultations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("consultation", id)
	}
	return nil
}

func (r *consultationRepoPG) List(ctx context.Context) ([]*Consultation, error) {
	return r.list(ctx, consultationSelect+consultationOrder)
}

func (r *consultationRepoPG) ListByDoctor(ctx context.Context, doctorID int64) ([]*Consultation, error) {
	return r.list(ctx, consultationSelect+` WHERE oc.doctor_id = $1`+consultationOrder, doctorID)
}

func (r *consultationRepoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Consultation, error) {
	return r.list(ctx, consultationSelect+` WHERE oc.patient_id = $1`+consultationOrder, patientID)
}

func (r *consultationRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Consultation, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*Consultation, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// referenceError reports which reference a foreign-key violation hit. It
// happens when a referenced row is deleted between resolution and write.
func referenceError(err error, c *Consultation) error {
	name := db.ConstraintName(err)
	switch {
	case strings.Contains(name, "patient"):
		return apperr.ReferenceNotFound("patient", c.PatientID)
	case strings.Contains(name, "doctor"):
		return apperr.ReferenceNotFound("doctor", c.DoctorID)
	case strings.Contains(name, "exam") && c.ExamID != nil:
		return apperr.ReferenceNotFound("exam", *c.ExamID)
	}
	return err
}

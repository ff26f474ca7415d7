package patient

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/db"
)

type patientRepoPG struct{ q db.Querier }

func NewPatientRepoPG(q db.Querier) Repository {
	return &patientRepoPG{q: q}
}

const patientCols = `id, name, cpf`

func (r *patientRepoPG) scanRow(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.CPF)
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO patients (name, cpf) VALUES ($1, $2) RETURNING id`,
		p.Name, p.CPF).Scan(&p.ID)
	if db.IsUniqueViolation(err) {
		return apperr.Conflict("cpf %s is already registered", p.CPF)
	}
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := r.scanRow(r.q.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, apperr.NotFound("patient", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) GetByCPF(ctx context.Context, cpf string) (*Patient, error) {
	p, err := r.scanRow(r.q.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE cpf = $1`, cpf))
	if db.IsNoRows(err) {
		return nil, apperr.NotFoundBy("patient", "cpf", cpf)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.q.Exec(ctx, `UPDATE patients SET name = $2, cpf = $3 WHERE id = $1`, p.ID, p.Name, p.CPF)
	if db.IsUniqueViolation(err) {
		return apperr.Conflict("cpf %s is already registered to another patient", p.CPF)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("patient", p.ID)
	}
	return nil
}

func (r *patientRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if db.IsForeignKeyViolation(err) {
		return apperr.Conflict("patient %d cannot be deleted: it has related consultations", id)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("patient", id)
	}
	return nil
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.q.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*Patient, 0)
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

package doctor

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/db"
)

type doctorRepoPG struct{ q db.Querier }

func NewDoctorRepoPG(q db.Querier) Repository {
	return &doctorRepoPG{q: q}
}

const doctorCols = `id, name, specialty, crm`

func (r *doctorRepoPG) scanRow(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.CRM)
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	return r.q.QueryRow(ctx,
		`INSERT INTO doctors (name, specialty, crm) VALUES ($1, $2, $3) RETURNING id`,
		d.Name, d.Specialty, d.CRM).Scan(&d.ID)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	d, err := r.scanRow(r.q.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, apperr.NotFound("doctor", id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE doctors SET name = $2, specialty = $3, crm = $4 WHERE id = $1`,
		d.ID, d.Name, d.Specialty, d.CRM)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("doctor", d.ID)
	}
	return nil
}

func (r *doctorRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if db.IsForeignKeyViolation(err) {
		return apperr.Conflict("doctor %d cannot be deleted: it has related consultations", id)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("doctor", id)
	}
	return nil
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	return r.list(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY id`)
}

func (r *doctorRepoPG) ListBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error) {
	return r.list(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE specialty ILIKE $1 ORDER BY name, id`,
		"%"+escapeLike(specialty)+"%")
}

func (r *doctorRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Doctor, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*Doctor, 0)
	for rows.Next() {
		d, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

package exam

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/db"
)

type examRepoPG struct{ q db.Querier }

func NewExamRepoPG(q db.Querier) Repository {
	return &examRepoPG{q: q}
}

const examCols = `id, name, result, result_status`

func (r *examRepoPG) scanRow(row pgx.Row) (*Exam, error) {
	var e Exam
	err := row.Scan(&e.ID, &e.Name, &e.Result, &e.ResultStatus)
	return &e, err
}

func (r *examRepoPG) Create(ctx context.Context, e *Exam) error {
	return r.q.QueryRow(ctx,
		`INSERT INTO exams (name, result, result_status) VALUES ($1, $2, $3) RETURNING id`,
		e.Name, e.Result, e.ResultStatus).Scan(&e.ID)
}

func (r *examRepoPG) GetByID(ctx context.Context, id int64) (*Exam, error) {
	e, err := r.scanRow(r.q.QueryRow(ctx, `SELECT `+examCols+` FROM exams WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, apperr.NotFound("exam", id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *examRepoPG) Update(ctx context.Context, e *Exam) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE exams SET name = $2, result = $3, result_status = $4 WHERE id = $1`,
		e.ID, e.Name, e.Result, e.ResultStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("exam", e.ID)
	}
	return nil
}

func (r *examRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if db.IsForeignKeyViolation(err) {
		return apperr.Conflict("exam %d cannot be deleted: it is referenced by a consultation", id)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("exam", id)
	}
	return nil
}

func (r *examRepoPG) List(ctx context.Context) ([]*Exam, error) {
	rows, err := r.q.Query(ctx, `SELECT `+examCols+` FROM exams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*Exam, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

package history

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/db"
)

type historyRepoPG struct{ q db.Querier }

func NewHistoryRepoPG(q db.Querier) Repository {
	return &historyRepoPG{q: q}
}

const historyCols = `id, symptoms, diagnosis, notes`

func (r *historyRepoPG) scanRow(row pgx.Row) (*History, error) {
	var h History
	err := row.Scan(&h.ID, &h.Symptoms, &h.Diagnosis, &h.Notes)
	return &h, err
}

func (r *historyRepoPG) Create(ctx context.Context, h *History) error {
	return r.q.QueryRow(ctx,
		`INSERT INTO consultation_histories (symptoms, diagnosis, notes) VALUES ($1, $2, $3) RETURNING id`,
		h.Symptoms, h.Diagnosis, h.Notes).Scan(&h.ID)
}

func (r *historyRepoPG) GetByID(ctx context.Context, id int64) (*History, error) {
	h, err := r.scanRow(r.q.QueryRow(ctx, `SELECT `+historyCols+` FROM consultation_histories WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, apperr.NotFound("consultation history", id)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *historyRepoPG) Update(ctx context.Context, h *History) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE consultation_histories SET symptoms = $2, diagnosis = $3, notes = $4 WHERE id = $1`,
		h.ID, h.Symptoms, h.Diagnosis, h.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("consultation history", h.ID)
	}
	return nil
}

func (r *historyRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM consultation_histories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("consultation history", id)
	}
	return nil
}

func (r *historyRepoPG) List(ctx context.Context) ([]*History, error) {
	rows, err := r.q.Query(ctx, `SELECT `+historyCols+` FROM consultation_histories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*History, 0)
	for rows.Next() {
		h, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

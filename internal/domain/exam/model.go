package exam

import (
	"fmt"
	"strings"
)

type Exam struct {
	ID           int64  `db:"id" json:"id_exame"`
	Name         string `db:"name" json:"nome_exame"`
	Result       string `db:"result" json:"resultado_exame"`
	ResultStatus string `db:"result_status" json:"status_resultado"`
}

// Summary renders the one-line result report listed by ResultSummaries.
func (e *Exam) Summary() string {
	return fmt.Sprintf("ID: %d, Nome: %s, Resultado: %s, Status: %s", e.ID, e.Name, e.Result, e.ResultStatus)
}

type Request struct {
	Name         string `json:"nome_exame" validate:"required,max=100"`
	Result       string `json:"resultado_exame" validate:"required,max=255"`
	ResultStatus string `json:"status_resultado" validate:"required,max=50"`
}

func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Result = strings.TrimSpace(r.Result)
	r.ResultStatus = strings.TrimSpace(r.ResultStatus)
}

package doctor

import "strings"

type Doctor struct {
	ID        int64  `db:"id" json:"id_medico"`
	Name      string `db:"name" json:"nome"`
	Specialty string `db:"specialty" json:"especialidade"`
	CRM       int64  `db:"crm" json:"crm"`
}

type Request struct {
	Name      string `json:"nome" validate:"required,max=100"`
	Specialty string `json:"especialidade" validate:"required,max=100"`
	CRM       int64  `json:"crm" validate:"gt=0,lte=2147483647"`
}

func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Specialty = strings.TrimSpace(r.Specialty)
}

package patient

import "strings"

// Patient maps to the patients table.
type Patient struct {
	ID   int64  `db:"id" json:"id_paciente"`
	Name string `db:"name" json:"nome_paciente"`
	CPF  string `db:"cpf" json:"cpf_paciente"`
}

// Request is the create/update payload. Updates are full replacements.
type Request struct {
	Name string `json:"nome_paciente" validate:"required,min=2,max=50"`
	CPF  string `json:"cpf_paciente" validate:"required,len=11,numeric"`
}

// Normalize trims the name and strips formatting from the CPF, so
// "123.456.789-01" becomes "12345678901".
func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.CPF = NormalizeCPF(r.CPF)
}

// NormalizeCPF keeps only the digits of cpf.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, c := range cpf {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

package history

import (
	"encoding/json"
	"strings"
)

const (
	StatusCritical = "Crítico"
	StatusNormal   = "Normal"
)

// History is a consultation history record. It is not linked to online
// consultations.
type History struct {
	ID        int64  `db:"id" json:"id_historico"`
	Symptoms  string `db:"symptoms" json:"sintomas_historico"`
	Diagnosis string `db:"diagnosis" json:"diagnostico"`
	Notes     string `db:"notes" json:"observacao"`
}

// Critical reports whether the diagnosis mentions "grave".
func (h *History) Critical() bool {
	return strings.Contains(strings.ToLower(h.Diagnosis), "grave")
}

func (h *History) DiagnosisStatus() string {
	if h.Critical() {
		return StatusCritical
	}
	return StatusNormal
}

func (h History) MarshalJSON() ([]byte, error) {
	type plain History
	return json.Marshal(struct {
		plain
		Status string `json:"statusDiagnostico"`
	}{plain(h), h.DiagnosisStatus()})
}

type Request struct {
	Symptoms  string `json:"sintomas_historico" validate:"required,max=255"`
	Diagnosis string `json:"diagnostico" validate:"required,max=255"`
	Notes     string `json:"observacao" validate:"required,max=255"`
}

func (r *Request) Normalize() {
	r.Symptoms = strings.TrimSpace(r.Symptoms)
	r.Diagnosis = strings.TrimSpace(r.Diagnosis)
	r.Notes = strings.TrimSpace(r.Notes)
}

package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert patient: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "patients_cpf_key"})
	fk := &pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "consultations_exam_id_fkey"}
	plain := errors.New("connection refused")

	if !IsUniqueViolation(unique) || IsForeignKeyViolation(unique) {
		t.Error("expected wrapped unique violation to be classified")
	}
	if !IsForeignKeyViolation(fk) || IsUniqueViolation(fk) {
		t.Error("expected foreign key violation to be classified")
	}
	if IsUniqueViolation(plain) || IsForeignKeyViolation(plain) {
		t.Error("plain errors must not be classified")
	}
	if got := ConstraintName(unique); got != "patients_cpf_key" {
		t.Errorf("expected constraint name, got %q", got)
	}
	if ConstraintName(plain) != "" {
		t.Error("expected empty constraint name for plain error")
	}
}

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)) {
		t.Error("expected wrapped ErrNoRows to match")
	}
	if IsNoRows(errors.New("other")) {
		t.Error("unexpected match")
	}
}

func TestCompactSQL(t *testing.T) {
	in := "\n\t\tSELECT id,\n\t\t\tname FROM patients\n\t\tWHERE id = $1 "
	if got := compactSQL(in); got != "SELECT id, name FROM patients WHERE id = $1" {
		t.Errorf("unexpected compacted SQL %q", got)
	}
}

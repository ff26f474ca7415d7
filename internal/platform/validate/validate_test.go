package validate

import (
	"errors"
	"testing"

	"github.com/telehealth/telehealth/internal/platform/apperr"
)

type sample struct {
	Name  string `json:"nome" validate:"required,min=2,max=5"`
	CPF   string `json:"cpf" validate:"required,len=3,numeric"`
	Count int    `json:"count" validate:"gt=0"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(sample{Name: "abc", CPF: "123", Count: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_Messages(t *testing.T) {
	tests := []struct {
		in   sample
		want string
	}{
		{sample{CPF: "123", Count: 1}, "nome is required"},
		{sample{Name: "a", CPF: "123", Count: 1}, "nome must have at least 2 characters"},
		{sample{Name: "abcdef", CPF: "123", Count: 1}, "nome must not exceed 5 characters"},
		{sample{Name: "abc", CPF: "12", Count: 1}, "cpf must have exactly 3 characters"},
		{sample{Name: "abc", CPF: "12a", Count: 1}, "cpf must contain only digits"},
		{sample{Name: "abc", CPF: "123", Count: 0}, "count must be greater than 0"},
	}
	for _, tt := range tests {
		err := Struct(tt.in)
		if err == nil {
			t.Errorf("%+v: expected error", tt.in)
			continue
		}
		if !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("%+v: expected invalid input, got %v", tt.in, err)
		}
		if err.Error() != tt.want {
			t.Errorf("%+v: got %q, want %q", tt.in, err.Error(), tt.want)
		}
	}
}

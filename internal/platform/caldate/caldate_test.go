package caldate

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"02-Fev-2001", "15-Dez-2023", "01-Jan-1999", "29-Fev-2024", "31-Out-2020"} {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := d.String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestParse_CalendarValue(t *testing.T) {
	d, err := Parse("02-Fev-2001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2001, time.February, 2, 0, 0, 0, 0, time.UTC)
	if !d.Time().Equal(want) {
		t.Errorf("expected %v, got %v", want, d.Time())
	}
}

func TestParse_Lenient(t *testing.T) {
	tests := map[string]string{
		"02-fev-2001":  "02-Fev-2001",
		"02-FEV.-2001": "02-Fev-2001",
		"2-Mai-2010":   "02-Mai-2010",
		" 15-dez-2023": "15-Dez-2023",
		"2023-12-15":   "15-Dez-2023",
	}
	for in, want := range tests {
		d, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if d.String() != want {
			t.Errorf("Parse(%q) = %s, want %s", in, d, want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"32-Jan-2023", "29-Fev-2023", "02-Feb-2001", "02/02/2001", "", "aa-Jan-2001", "02-Jan-01", "002-Jan-2001"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
}

func TestJSON(t *testing.T) {
	type payload struct {
		Date  Date  `json:"date"`
		Maybe *Date `json:"maybe"`
	}
	var p payload
	if err := json.Unmarshal([]byte(`{"date":"15-Dez-2023","maybe":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Maybe != nil {
		t.Error("expected nil pointer for null date")
	}
	if !p.Date.Equal(New(2023, time.December, 15)) {
		t.Errorf("unexpected date %v", p.Date)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"date":"15-Dez-2023","maybe":null}` {
		t.Errorf("unexpected JSON %s", out)
	}

	if err := json.Unmarshal([]byte(`{"date":"32-Jan-2023"}`), &p); err == nil {
		t.Error("expected error for impossible date")
	}
	if err := json.Unmarshal([]byte(`{"date":20231215}`), &p); err == nil {
		t.Error("expected error for non-string date")
	}
}

func TestFromTime_DropsClock(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	d := FromTime(time.Date(2023, time.December, 15, 23, 30, 0, 0, loc))
	if d.String() != "15-Dez-2023" {
		t.Errorf("expected 15-Dez-2023, got %s", d)
	}
	if !FromTime(time.Time{}).IsZero() {
		t.Error("expected zero date for zero time")
	}
	if New(2020, 1, 1).Before(New(2019, 12, 31)) {
		t.Error("Before ordering is wrong")
	}
}

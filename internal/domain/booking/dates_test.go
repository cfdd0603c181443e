package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-06-01 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !d.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v, want 2024-06-01 UTC midnight", d)
	}

	d, err = ParseDate("2024-06-01T15:00:00+02:00")
	if err != nil {
		t.Fatalf("ParseDate rfc3339: %v", err)
	}
	if d.Location() != time.UTC || d.Hour() != 13 {
		t.Errorf("got %v, want 13:00 UTC", d)
	}

	if _, err := ParseDate("01/06/2024"); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("expected invalid_date, got %v", err)
	}
}

func TestValidateStay(t *testing.T) {
	a := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	b := a.AddDate(0, 0, 1)

	if err := ValidateStay(a, b); err != nil {
		t.Errorf("valid stay rejected: %v", err)
	}
	if err := ValidateStay(a, a); httperr.KindOf(err) != httperr.KindInvalid {
		t.Errorf("equal dates must be invalid, got %v", err)
	}
	if err := ValidateStay(b, a); httperr.KindOf(err) != httperr.KindInvalid {
		t.Errorf("inverted dates must be invalid, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		aIn, aOut  time.Time
		bIn, bOut  time.Time
		wantResult bool
	}{
		{"partial overlap", d(1), d(5), d(3), d(7), true},
		{"contained", d(1), d(10), d(3), d(4), true},
		{"touching end", d(1), d(5), d(5), d(8), false},
		{"touching start", d(5), d(8), d(1), d(5), false},
		{"disjoint", d(1), d(2), d(3), d(4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut); got != tt.wantResult {
				t.Errorf("Overlaps() = %v, want %v", got, tt.wantResult)
			}
		})
	}
}

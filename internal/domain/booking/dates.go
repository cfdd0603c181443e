package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
)

const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date (UTC midnight) or an RFC3339 instant.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, httperr.ErrInvalid("invalid_date", "Dates must be YYYY-MM-DD or RFC3339.")
}

func ValidateStay(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return httperr.ErrInvalid("invalid_dates", "Check-in date must be before check-out date.")
	}
	return nil
}

// Overlaps is the half-open interval test used for availability.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "cancelled"} {
		if _, err := ParseStatus(raw); err != nil {
			t.Errorf("ParseStatus(%q): %v", raw, err)
		}
	}
	for _, raw := range []string{"", "canceled", "CONFIRMED", "completed"} {
		if _, err := ParseStatus(raw); !httperr.IsBusiness(err, "invalid_status") {
			t.Errorf("ParseStatus(%q) = %v, want invalid_status", raw, err)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed && err != nil {
				t.Errorf("expected allowed, got %v", err)
			}
			if !tt.allowed && !httperr.IsBusiness(err, "invalid_state") {
				t.Errorf("expected invalid_state, got %v", err)
			}
		})
	}
}

func TestNew_DefaultsAndPrice(t *testing.T) {
	property := &models.Property{ID: 7, BasePrice: 100}
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC)

	b := New(property, 3, checkIn, checkOut, 2, now)

	if b.Status != string(StatusConfirmed) {
		t.Errorf("status = %s, want confirmed", b.Status)
	}
	if b.PaymentStatus != string(PaymentPending) {
		t.Errorf("payment_status = %s, want pending", b.PaymentStatus)
	}
	if b.TotalPrice != 200 {
		t.Errorf("total_price = %v, want 200", b.TotalPrice)
	}
	if b.PropertyID != 7 || b.UserID != 3 || !b.CreatedAt.Equal(now) {
		t.Errorf("unexpected booking fields: %+v", b)
	}
}

func TestCancel(t *testing.T) {
	now := time.Now().UTC()
	b := &models.Booking{ID: 5, UserID: 3, Status: string(StatusConfirmed)}

	c, err := Cancel(b, 3, "plans changed", now)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if b.Status != string(StatusCancelled) {
		t.Errorf("booking status = %s, want cancelled", b.Status)
	}
	if c.BookingID != 5 || c.Status != CancellationPending || c.Reason != "plans changed" || !c.CancellationDate.Equal(now) {
		t.Errorf("unexpected cancellation: %+v", c)
	}

	if _, err := Cancel(b, 3, "again", now); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("second cancel = %v, want invalid_state", err)
	}
}

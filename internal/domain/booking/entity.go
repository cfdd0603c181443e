package booking

import (
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func New(property *models.Property, userID uint, checkIn, checkOut time.Time, guests int, now time.Time) *models.Booking {
	return &models.Booking{
		PropertyID:    property.ID,
		UserID:        userID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        guests,
		Status:        string(InitialStatus()),
		PaymentStatus: string(PaymentPending),
		TotalPrice:    TotalPrice(checkIn, checkOut, property.BasePrice),
		CreatedAt:     now,
	}
}

func Cancel(b *models.Booking, userID uint, reason string, now time.Time) (*models.Cancellation, error) {
	if err := CanCancel(Status(b.Status)); err != nil {
		return nil, err
	}

	b.Status = string(StatusCancelled)

	return &models.Cancellation{
		BookingID:        b.ID,
		UserID:           userID,
		Reason:           reason,
		CancellationDate: now,
		Status:           CancellationPending,
	}, nil
}

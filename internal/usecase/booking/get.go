package booking

import (
	"context"

	domain "github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute returns the booking with its property (and location) and guest.
func (uc *GetBooking) Execute(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := uc.repo.GetBookingDetailed(ctx, id)
	if err != nil {
		return nil, storeErr(err, "booking_not_found", "Booking not found.")
	}
	return b, nil
}

package booking

import (
	"context"

	domain "github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(ctx context.Context, userID uint) ([]models.Booking, error) {
	bookings, err := uc.repo.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "", "")
	}
	return bookings, nil
}

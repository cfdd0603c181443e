package review

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

var (
	ErrNotFound  = errors.New("review not found")
	ErrDuplicate = errors.New("review already exists")
)

type Repository interface {
	// FindUserBooking returns the most recent booking of userID on propertyID
	// in the given status, or ErrNotFound.
	FindUserBooking(
		ctx context.Context,
		userID uint,
		propertyID uint,
		status booking.Status,
	) (*models.Booking, error)

	ExistsForUser(
		ctx context.Context,
		userID uint,
		propertyID uint,
	) (bool, error)

	Create(
		ctx context.Context,
		r *models.Review,
	) error

	ListByProperty(
		ctx context.Context,
		propertyID uint,
	) ([]models.Review, error)

	// FindOwned returns the review only when it belongs to userID.
	FindOwned(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Review, error)

	Update(
		ctx context.Context,
		id uint,
		fields map[string]any,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}

package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrOverlap  = errors.New("booking overlaps an existing stay")
)

type Repository interface {
	// -------- Transactions --------
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Property lookup --------
	FindProperty(
		ctx context.Context,
		id uint,
	) (*models.Property, error)

	// LockProperty reads the property FOR UPDATE so creates on it serialise.
	LockProperty(
		ctx context.Context,
		id uint,
	) (*models.Property, error)

	// -------- Booking (create / conflict) --------
	FindOverlapping(
		ctx context.Context,
		propertyID uint,
		statuses []string,
		checkIn time.Time,
		checkOut time.Time,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (reads) --------
	GetBookingDetailed(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListUserBookings(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	LockBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBookingStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	CreateCancellation(
		ctx context.Context,
		c *models.Cancellation,
	) error
}

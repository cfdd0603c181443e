package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Property
// --------------------------------------------------

func (r *BookingGormRepository) FindProperty(
	ctx context.Context,
	id uint,
) (*models.Property, error) {

	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, translate(err, "find property")
	}
	return &property, nil
}

func (r *BookingGormRepository) LockProperty(
	ctx context.Context,
	id uint,
) (*models.Property, error) {

	var property models.Property
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&property, id).Error; err != nil {
		return nil, translate(err, "lock property")
	}
	return &property, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) FindOverlapping(
	ctx context.Context,
	propertyID uint,
	statuses []string,
	checkIn time.Time,
	checkOut time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"property_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
			propertyID,
			statuses,
			checkOut,
			checkIn,
		).
		Order("check_in ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("find overlapping bookings: %w", err)
	}

	return bookings, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return domain.ErrOverlap
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) GetBookingDetailed(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Property.Location").
		Preload("User").
		First(&b, id).Error; err != nil {
		return nil, translate(err, "get booking")
	}
	return &b, nil
}

func (r *BookingGormRepository) ListUserBookings(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Preload("Property").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingGormRepository) LockBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error; err != nil {
		return nil, translate(err, "lock booking")
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Cancellation
// --------------------------------------------------

func (r *BookingGormRepository) CreateCancellation(
	ctx context.Context,
	c *models.Cancellation,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create cancellation: %w", err)
	}
	return nil
}

func translate(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

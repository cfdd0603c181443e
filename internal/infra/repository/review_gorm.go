package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/review"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) FindUserBooking(
	ctx context.Context,
	userID uint,
	propertyID uint,
	status booking.Status,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ? AND status = ?", userID, propertyID, string(status)).
		Order("check_out DESC").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user booking: %w", err)
	}
	return &b, nil
}

func (r *ReviewGormRepository) ExistsForUser(
	ctx context.Context,
	userID uint,
	propertyID uint,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("count reviews: %w", err)
	}
	return n > 0, nil
}

func (r *ReviewGormRepository) Create(
	ctx context.Context,
	review *models.Review,
) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *ReviewGormRepository) ListByProperty(
	ctx context.Context,
	propertyID uint,
) ([]models.Review, error) {

	reviews := []models.Review{}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("property_id = ?", propertyID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list property reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewGormRepository) FindOwned(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Review, error) {

	var review models.Review
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

func (r *ReviewGormRepository) Update(
	ctx context.Context,
	id uint,
	fields map[string]any,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReviewGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)

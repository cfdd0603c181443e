package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/rental-booking/internal/domain/favorite"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type FavoriteGormRepository struct {
	db *gorm.DB
}

func NewFavoriteGormRepository(db *gorm.DB) *FavoriteGormRepository {
	return &FavoriteGormRepository{db: db}
}

func (r *FavoriteGormRepository) UserExists(
	ctx context.Context,
	userID uint,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *FavoriteGormRepository) Exists(
	ctx context.Context,
	userID uint,
	propertyID uint,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("count favorites: %w", err)
	}
	return n > 0, nil
}

func (r *FavoriteGormRepository) Create(
	ctx context.Context,
	f *models.Favorite,
) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *FavoriteGormRepository) Delete(
	ctx context.Context,
	userID uint,
	propertyID uint,
) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return fmt.Errorf("delete favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FavoriteGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Favorite, error) {

	favorites := []models.Favorite{}
	if err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Property.Location").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// Compile-time check
var _ domain.Repository = (*FavoriteGormRepository)(nil)

package favorite

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/rental-booking/internal/models"
)

var (
	ErrNotFound  = errors.New("favorite not found")
	ErrDuplicate = errors.New("property already in favorites")
)

type Repository interface {
	UserExists(
		ctx context.Context,
		userID uint,
	) (bool, error)

	Exists(
		ctx context.Context,
		userID uint,
		propertyID uint,
	) (bool, error)

	Create(
		ctx context.Context,
		f *models.Favorite,
	) error

	// Delete removes the pair and reports ErrNotFound when nothing matched.
	Delete(
		ctx context.Context,
		userID uint,
		propertyID uint,
	) error

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Favorite, error)
}

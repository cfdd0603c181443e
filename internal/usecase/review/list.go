package review

import (
	"context"

	domain "github.com/BruksfildServices01/rental-booking/internal/domain/review"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type ListPropertyReviews struct {
	repo  domain.Repository
	props PropertyFinder
}

func NewListPropertyReviews(repo domain.Repository, props PropertyFinder) *ListPropertyReviews {
	return &ListPropertyReviews{repo: repo, props: props}
}

// Execute lists the reviews of an existing property, newest first, with their authors.
func (uc *ListPropertyReviews) Execute(ctx context.Context, propertyID uint) ([]models.Review, error) {
	if _, err := findProperty(ctx, uc.props, propertyID); err != nil {
		return nil, err
	}

	reviews, err := uc.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, storeErr(err)
	}
	return reviews, nil
}

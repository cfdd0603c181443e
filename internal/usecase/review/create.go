package review

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/review"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	PropertyID uint
	UserID     uint
	Rating     int
	Comment    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	repo  domain.Repository
	props PropertyFinder
	audit AuditSink
	log   *logger.Logger
}

func NewCreateReview(
	repo domain.Repository,
	props PropertyFinder,
	audit AuditSink,
	log *logger.Logger,
) *CreateReview {
	return &CreateReview{
		repo:  repo,
		props: props,
		audit: auditOrNop(audit),
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}
	comment, err := domain.NormalizeComment(in.Comment)
	if err != nil {
		return nil, err
	}

	property, err := findProperty(ctx, uc.props, in.PropertyID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Only guests with a confirmed stay may review
	// --------------------------------------------------
	stay, err := uc.repo.FindUserBooking(ctx, in.UserID, property.ID, domain.ReviewableStatus)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrInvalid("no_confirmed_booking", "You can only review a property you have a confirmed booking for.")
		}
		return nil, httperr.ErrInternal("store_failure", err)
	}

	exists, err := uc.repo.ExistsForUser(ctx, in.UserID, property.ID)
	if err != nil {
		return nil, httperr.ErrInternal("store_failure", err)
	}
	if exists {
		return nil, errAlreadyReviewed()
	}

	r := &models.Review{
		PropertyID: property.ID,
		UserID:     in.UserID,
		BookingID:  stay.ID,
		Rating:     in.Rating,
		Comment:    comment,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, storeErr(err)
	}

	uc.log.Info("review created",
		"review_id", r.ID,
		"property_id", r.PropertyID,
		"user_id", r.UserID,
		"rating", r.Rating,
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionReviewCreated,
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{
			"property_id": r.PropertyID,
			"booking_id":  r.BookingID,
			"rating":      r.Rating,
		},
	})

	return r, nil
}

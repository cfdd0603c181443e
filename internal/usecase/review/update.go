package review

import (
	"context"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/review"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// UpdateReviewInput changes the rating, the comment, or both.
type UpdateReviewInput struct {
	ReviewID uint
	UserID   uint
	Rating   *int
	Comment  *string
}

type UpdateReview struct {
	repo  domain.Repository
	audit AuditSink
	log   *logger.Logger
}

func NewUpdateReview(repo domain.Repository, audit AuditSink, log *logger.Logger) *UpdateReview {
	return &UpdateReview{repo: repo, audit: auditOrNop(audit), log: log}
}

func (uc *UpdateReview) Execute(ctx context.Context, in UpdateReviewInput) (*models.Review, error) {
	fields := map[string]any{}

	if in.Rating != nil {
		if err := domain.ValidateRating(*in.Rating); err != nil {
			return nil, err
		}
		fields["rating"] = *in.Rating
	}
	if in.Comment != nil {
		comment, err := domain.NormalizeComment(*in.Comment)
		if err != nil {
			return nil, err
		}
		fields["comment"] = comment
	}
	if len(fields) == 0 {
		return nil, httperr.ErrInvalid("empty_update", "Nothing to update.")
	}

	if _, err := uc.repo.FindOwned(ctx, in.ReviewID, in.UserID); err != nil {
		return nil, storeErr(err)
	}
	if err := uc.repo.Update(ctx, in.ReviewID, fields); err != nil {
		return nil, storeErr(err)
	}

	updated, err := uc.repo.FindOwned(ctx, in.ReviewID, in.UserID)
	if err != nil {
		return nil, storeErr(err)
	}

	uc.log.Info("review updated", "review_id", updated.ID, "user_id", in.UserID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionReviewUpdated,
		Entity:   "review",
		EntityID: &updated.ID,
		Metadata: fields,
	})

	return updated, nil
}

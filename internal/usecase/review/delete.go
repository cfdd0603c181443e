package review

import (
	"context"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/review"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
)

type DeleteReview struct {
	repo  domain.Repository
	audit AuditSink
	log   *logger.Logger
}

func NewDeleteReview(repo domain.Repository, audit AuditSink, log *logger.Logger) *DeleteReview {
	return &DeleteReview{repo: repo, audit: auditOrNop(audit), log: log}
}

func (uc *DeleteReview) Execute(ctx context.Context, reviewID, userID uint) error {
	r, err := uc.repo.FindOwned(ctx, reviewID, userID)
	if err != nil {
		return storeErr(err)
	}
	if err := uc.repo.Delete(ctx, r.ID); err != nil {
		return storeErr(err)
	}

	uc.log.Info("review deleted", "review_id", r.ID, "user_id", userID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionReviewDeleted,
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{"property_id": r.PropertyID},
	})

	return nil
}

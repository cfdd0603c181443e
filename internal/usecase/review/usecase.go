package review

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/review"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

const (
	MsgCreated = "Review created successfully"
	MsgUpdated = "Review updated successfully"
	MsgDeleted = "Review deleted successfully"
)

// PropertyFinder is satisfied by the booking repository.
type PropertyFinder interface {
	FindProperty(ctx context.Context, id uint) (*models.Property, error)
}

type AuditSink interface {
	Dispatch(ev audit.Event)
}

type nopAudit struct{}

func (nopAudit) Dispatch(audit.Event) {}

func auditOrNop(a AuditSink) AuditSink {
	if a == nil {
		return nopAudit{}
	}
	return a
}

func findProperty(ctx context.Context, props PropertyFinder, id uint) (*models.Property, error) {
	p, err := props.FindProperty(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.ErrNotFound("property_not_found", "Property not found.")
		}
		return nil, httperr.ErrInternal("store_failure", err)
	}
	return p, nil
}

func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return errReviewNotFound()
	case errors.Is(err, domain.ErrDuplicate):
		return errAlreadyReviewed()
	default:
		return httperr.ErrInternal("store_failure", err)
	}
}

// A review owned by someone else reads as missing.
func errReviewNotFound() error {
	return httperr.ErrNotFound("review_not_found", "Review not found.")
}

func errAlreadyReviewed() error {
	return httperr.ErrConflict("already_reviewed", "You have already reviewed this property.")
}

package booking

import (
	"context"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit AuditSink
	log   *logger.Logger
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit AuditSink,
	log *logger.Logger,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: auditOrNop(audit),
		log:   log,
	}
}

// Execute moves the booking to status. actorID is recorded in the audit trail only.
// Moving to cancelled here does not create a cancellation record.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	id uint,
	status string,
	actorID uint,
) (*models.Booking, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var previous domain.Status
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBooking(ctx, id)
		if err != nil {
			return storeErr(err, "booking_not_found", "Booking not found.")
		}

		previous = domain.Status(b.Status)
		if err := domain.CanTransition(previous, next); err != nil {
			return err
		}
		if previous == next {
			return nil
		}

		return storeErr(tx.UpdateBookingStatus(ctx, id, next), "booking_not_found", "Booking not found.")
	})
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingDetailed(ctx, id)
	if err != nil {
		return nil, storeErr(err, "booking_not_found", "Booking not found.")
	}

	if previous != next {
		uc.log.Info("booking status updated", "booking_id", id, "from", previous, "to", next)
		uc.audit.Dispatch(audit.Event{
			UserID:   &actorID,
			Action:   audit.ActionBookingStatusUpdated,
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{"from": previous, "to": next},
		})
	}

	return b, nil
}

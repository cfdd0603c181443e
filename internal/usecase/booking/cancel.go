package booking

import (
	"context"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type CancelBookingInput struct {
	BookingID uint
	UserID    uint
	Reason    string
}

type CancelBookingResult struct {
	Booking      *models.Booking
	Cancellation *models.Cancellation
}

type CancelBooking struct {
	repo  domain.Repository
	audit AuditSink
	log   *logger.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	audit AuditSink,
	log *logger.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditOrNop(audit),
		log:   log,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*CancelBookingResult, error) {

	var res CancelBookingResult

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBooking(ctx, in.BookingID)
		if err != nil {
			return storeErr(err, "booking_not_found", "Booking not found.")
		}

		if b.UserID != in.UserID {
			return httperr.ErrForbidden("not_booking_owner", "Unauthorized to cancel this booking.")
		}

		c, err := domain.Cancel(b, in.UserID, in.Reason, now())
		if err != nil {
			return err
		}

		if err := tx.UpdateBookingStatus(ctx, b.ID, domain.StatusCancelled); err != nil {
			return storeErr(err, "booking_not_found", "Booking not found.")
		}
		if err := tx.CreateCancellation(ctx, c); err != nil {
			return storeErr(err, "", "")
		}

		res.Booking = b
		res.Cancellation = c
		return nil
	})
	if err != nil {
		if httperr.KindOf(err) == httperr.KindInternal {
			uc.log.Error("cancel booking failed", "booking_id", in.BookingID, "error", err)
		}
		return nil, err
	}

	uc.log.Info("booking cancelled", "booking_id", res.Booking.ID, "user_id", in.UserID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: &res.Booking.ID,
		Metadata: map[string]any{
			"cancellation_id": res.Cancellation.ID,
			"reason":          in.Reason,
		},
	})

	return &res, nil
}

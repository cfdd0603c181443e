package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/infra/lock"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	PropertyID uint
	UserID     uint
	CheckIn    string
	CheckOut   string
	Guests     int
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	locker  lock.Locker
	audit   AuditSink
	log     *logger.Logger
	lockTTL time.Duration
}

func NewCreateBooking(
	repo domain.Repository,
	locker lock.Locker,
	audit AuditSink,
	log *logger.Logger,
	lockTTL time.Duration,
) *CreateBooking {
	if locker == nil {
		locker = lock.Nop{}
	}
	if lockTTL <= 0 {
		lockTTL = 10 * time.Second
	}
	return &CreateBooking{
		repo:    repo,
		locker:  locker,
		audit:   auditOrNop(audit),
		log:     log,
		lockTTL: lockTTL,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	if in.Guests <= 0 {
		return nil, httperr.ErrInvalid("invalid_guests", "Guests must be greater than zero.")
	}

	checkIn, err := domain.ParseDate(in.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := domain.ParseDate(in.CheckOut)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Per-property lock
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, lock.PropertyKey(in.PropertyID), uc.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrBusy) {
			return nil, httperr.ErrConflict("booking_in_progress", "Another booking for this property is being processed, try again.")
		}
		uc.log.Error("booking lock failed", "property_id", in.PropertyID, "error", err)
		return nil, httperr.ErrInternal("lock_failure", err)
	}
	defer release()

	// --------------------------------------------------
	// Check + insert in one transaction
	// --------------------------------------------------
	var created *models.Booking
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		property, err := tx.LockProperty(ctx, in.PropertyID)
		if err != nil {
			return storeErr(err, "property_not_found", "Property not found.")
		}

		if err := domain.ValidateStay(checkIn, checkOut); err != nil {
			return err
		}

		if property.Status != models.PropertyStatusActive {
			return httperr.ErrInvalid("property_not_available", "Property is not available for booking.")
		}

		overlapping, err := tx.FindOverlapping(ctx, property.ID, domain.BlockingStatuses(), checkIn, checkOut)
		if err != nil {
			return storeErr(err, "", "")
		}
		if len(overlapping) > 0 {
			return errDatesUnavailable()
		}

		b := domain.New(property, in.UserID, checkIn, checkOut, in.Guests, now())
		if err := tx.CreateBooking(ctx, b); err != nil {
			return storeErr(err, "", "")
		}

		created = b
		return nil
	})
	if err != nil {
		uc.logFailure(in, err)
		return nil, err
	}

	uc.log.Info("booking created",
		"booking_id", created.ID,
		"property_id", created.PropertyID,
		"user_id", created.UserID,
		"total_price", created.TotalPrice,
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"property_id": created.PropertyID,
			"check_in":    created.CheckIn.Format(domain.DateLayout),
			"check_out":   created.CheckOut.Format(domain.DateLayout),
			"total_price": created.TotalPrice,
		},
	})

	return created, nil
}

func (uc *CreateBooking) logFailure(in CreateBookingInput, err error) {
	switch httperr.KindOf(err) {
	case httperr.KindInternal:
		uc.log.Error("create booking failed", "property_id", in.PropertyID, "error", err)
	case httperr.KindConflict:
		uc.log.Info("booking rejected", "property_id", in.PropertyID, "reason", err.Error())
		propertyID := in.PropertyID
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   audit.ActionBookingConflict,
			Entity:   "property",
			EntityID: &propertyID,
			Metadata: map[string]any{"check_in": in.CheckIn, "check_out": in.CheckOut},
		})
	}
}

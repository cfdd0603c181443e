package booking

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
)

const (
	MsgCreated       = "Booking created successfully"
	MsgStatusUpdated = "Booking status updated successfully"
	MsgCancelled     = "Booking cancelled successfully"
)

// AuditSink is satisfied by *audit.Dispatcher.
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

func now() time.Time {
	return time.Now().UTC()
}

// storeErr converts repository errors into business errors.
// Errors that already carry a kind pass through.
func storeErr(err error, notFoundCode, notFoundMsg string) error {
	if err == nil {
		return nil
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return httperr.ErrNotFound(notFoundCode, notFoundMsg)
	case errors.Is(err, domain.ErrOverlap):
		return errDatesUnavailable()
	default:
		return httperr.ErrInternal("store_failure", err)
	}
}

func errDatesUnavailable() error {
	return httperr.ErrConflict("dates_unavailable", "The property is already booked for the selected dates.")
}

package booking

import "github.com/BruksfildServices01/rental-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// CancellationPending is the only state the cancellation record is ever written with.
const CancellationPending = "pending"

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// ===============================
// Validations
// ===============================

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := transitions[s]; !ok {
		return "", httperr.ErrInvalid("invalid_status", "Status must be one of pending, confirmed, cancelled.")
	}
	return s, nil
}

// CanTransition validates a status change. Staying in the same status is allowed.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrInvalid("invalid_state", "Booking cannot move from "+string(from)+" to "+string(to)+".")
}

func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrInvalid("invalid_state", "Booking is already cancelled.")
	}
	return CanTransition(current, StatusCancelled)
}

// InitialStatus is confirmed: bookings skip pending on creation.
func InitialStatus() Status {
	return StatusConfirmed
}

// BlockingStatuses are the statuses that hold a property's dates.
func BlockingStatuses() []string {
	return []string{string(StatusConfirmed), string(StatusPending)}
}

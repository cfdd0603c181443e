package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/rental-booking/internal/logger"
)

const (
	ActionBookingCreated        = "booking_created"
	ActionBookingConflict       = "booking_conflict"
	ActionBookingStatusUpdated  = "booking_status_updated"
	ActionBookingCancelled      = "booking_cancelled"
	ActionPropertyCreated       = "property_created"
	ActionPropertyStatusUpdated = "property_status_updated"
	ActionPropertyImagesAdded   = "property_images_added"
	ActionPropertyUpdated       = "property_updated"
	ActionReviewCreated         = "review_created"
	ActionReviewUpdated         = "review_updated"
	ActionReviewDeleted         = "review_deleted"
	ActionFavoriteAdded         = "favorite_added"
	ActionFavoriteRemoved       = "favorite_removed"
)

type Event struct {
	UserID   *uint  `json:"user_id,omitempty"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
}

// Sink receives every event after it has been stored.
type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	logger *Logger
	sinks  []Sink
	log    *logger.Logger

	queue chan Event
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(l *Logger, log *logger.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		sinks:  sinks,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if d.logger != nil {
			if err := d.logger.Log(ctx, ev); err != nil {
				d.log.Error("audit write failed", "action", ev.Action, "error", err)
			}
		}

		for _, s := range d.sinks {
			if err := s.Publish(ctx, ev); err != nil {
				d.log.Warn("audit publish failed", "action", ev.Action, "error", err)
			}
		}

		cancel()
	}
}

// Dispatch never blocks the request; events are dropped when the queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

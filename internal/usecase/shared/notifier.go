package shared

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gin-jewelry-b2b/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	KindQuotationStatusChanged = "quotation.status_changed"
	KindOrderStatusChanged     = "order.status_changed"
	KindOrderCreated           = "order.created"
)

type StatusChange struct {
	Kind       string    `json:"-"`
	EntityID   int64     `json:"entity_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Event      string    `json:"event,omitempty"`
	OrderID    *int64    `json:"order_id,omitempty"`
	At         time.Time `json:"at"`
}

// Notifier enqueues after commit. Failures are logged and never surface to the caller.
type Notifier interface {
	Notify(ctx context.Context, changes ...StatusChange)
}

type JobNotifier struct {
	uow   UnitOfWork
	clock clock.Clock
}

func NewJobNotifier(uow UnitOfWork, clock clock.Clock) *JobNotifier {
	return &JobNotifier{uow: uow, clock: clock}
}

func (n *JobNotifier) Notify(ctx context.Context, changes ...StatusChange) {
	if len(changes) == 0 {
		return
	}
	now := n.clock.Now()
	jobs := make([]NotificationJob, 0, len(changes))
	for _, c := range changes {
		payload, err := json.Marshal(c)
		if err != nil {
			slog.Warn("dropping unencodable notification", "kind", c.Kind, "entity_id", c.EntityID, "error", err.Error())
			continue
		}
		jobs = append(jobs, NotificationJob{
			Kind:    c.Kind,
			Topic:   CustomerTopic(c.CustomerID),
			Payload: payload,
			RunAt:   now,
		})
	}
	if len(jobs) == 0 {
		return
	}

	err := n.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Notifications().Enqueue(ctx, jobs...)
	})
	if err != nil {
		slog.Warn("failed to enqueue notification jobs",
			"count", len(jobs),
			"kind", jobs[0].Kind,
			"error", err.Error())
	}
}

// CustomerTopic is the fan-out channel a customer's clients subscribe to.
func CustomerTopic(customerID uuid.UUID) string {
	return "customer:" + customerID.String()
}

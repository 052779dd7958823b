package orderevents

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/logx"
)

// Processor applies order lifecycle events to local order state. Handlers are
// idempotent: redelivered events resolve to the same end state and are acked.
type Processor struct {
	orders  OrderWriter
	factory *actionFactory
	events  *prometheus.CounterVec
	logger  logx.Logger
}

// NewProcessor creates an order events Processor.
func NewProcessor(orders OrderWriter, events *prometheus.CounterVec, logger logx.Logger) *Processor {
	p := &Processor{
		orders: orders,
		events: events,
		logger: logger,
	}
	p.factory = newActionFactory(p.onCreated, p.onCanceled)
	return p
}

// Handle processes a single Event. Unknown statuses are acked without action.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.count("ignored")
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) count(status string) {
	if p.events != nil {
		p.events.WithLabelValues(status).Inc()
	}
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	if strings.TrimSpace(e.OrderID) == "" || e.ManufacturerID <= 0 {
		p.count("invalid")
		return nil
	}

	o := &domain.Order{
		ID:              e.OrderID,
		ManufacturerID:  e.ManufacturerID,
		AssignedOwnerID: e.AssignedOwnerID,
		Status:          domain.OrderPending,
		DeliveryAddress: e.DeliveryAddress,
		OrderDate:       e.CreatedAt,
	}
	if e.AssignedOwnerID != nil {
		o.Status = domain.OrderAssigned
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	for _, it := range e.Items {
		o.Items = append(o.Items, domain.OrderItem{
			OrderID:   e.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	err := p.orders.Insert(ctx, o)
	if errors.Is(err, apperr.ErrConflict) {
		// redelivery, the order is already recorded
		p.count("duplicate")
		return nil
	}
	if err != nil {
		return err
	}

	p.count("created")
	p.logger.Info("order recorded",
		logx.String("event", "order_event"),
		logx.String("order_id", e.OrderID),
		logx.String("status", string(o.Status)),
	)
	return nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	ok, err := p.orders.CancelUnassigned(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if !ok {
		// unknown order or already terminal, nothing left to undo
		p.count("ignored")
		return nil
	}

	p.count("canceled")
	p.logger.Info("order canceled by event",
		logx.String("event", "order_event"),
		logx.String("order_id", e.OrderID),
	)
	return nil
}

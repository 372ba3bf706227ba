package events

import (
	"context"
	"time"

	"kids-burger-backend/internal/models"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message announced to the kitchen when an order is
// placed or moves between statuses.
type OrderEvent struct {
	Event          string             `json:"event"`
	OrderID        int64              `json:"orderId"`
	OrderNumber    string             `json:"orderNumber"`
	Status         string             `json:"status"`
	PreviousStatus string             `json:"previousStatus,omitempty"`
	TotalPrice     string             `json:"totalPrice"`
	Ingredients    []models.OrderLine `json:"ingredients,omitempty"`
	OccurredAt     time.Time          `json:"occurredAt"`
}

// RoutingKey is the topic key the event is published under.
func (e OrderEvent) RoutingKey() string {
	return e.Event
}

type Publisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
	Close() error
}

func OrderCreated(order *models.Order) OrderEvent {
	return OrderEvent{
		Event:       EventOrderCreated,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status.String(),
		TotalPrice:  order.TotalPrice.StringFixed(2),
		Ingredients: order.Ingredients,
		OccurredAt:  time.Now().UTC(),
	}
}

func OrderStatusChanged(order *models.Order, previous models.OrderStatus) OrderEvent {
	return OrderEvent{
		Event:          EventOrderStatusChanged,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         order.Status.String(),
		PreviousStatus: previous.String(),
		TotalPrice:     order.TotalPrice.StringFixed(2),
		OccurredAt:     time.Now().UTC(),
	}
}

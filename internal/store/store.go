package store

import (
	"context"
	"errors"
	"fmt"

	"kids-burger-backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore persists placed orders. Implementations assign the id, the
// order number and the creation time, and must be safe for concurrent use.
type OrderStore interface {
	CreateOrder(ctx context.Context, in models.NewOrder) (*models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	Ping(ctx context.Context) error
}

// FormatOrderNumber renders the human-facing order number for an id. Ids
// past 9999 widen the number rather than wrap.
func FormatOrderNumber(id int64) string {
	return fmt.Sprintf("KID%04d", id)
}

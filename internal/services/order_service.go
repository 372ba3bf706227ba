package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"kids-burger-backend/internal/events"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/pricing"
	"kids-burger-backend/internal/store"
)

const publishTimeout = 5 * time.Second

// ValidationError reports every invalid field of a request at once.
type ValidationError struct {
	Details []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Details))
	for i, d := range e.Details {
		parts[i] = d.Field + ": " + d.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Details = append(e.Details, models.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Details) == 0 {
		return nil
	}
	return e
}

type OrderService struct {
	store     store.OrderStore
	lookup    pricing.Lookup
	publisher events.Publisher
	logger    *zap.Logger
}

func NewOrderService(
	orderStore store.OrderStore,
	lookup pricing.Lookup,
	publisher events.Publisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		store:     orderStore,
		lookup:    lookup,
		publisher: publisher,
		logger:    logger.Named("orders"),
	}
}

// PlaceOrder validates the request against the catalog, recomputes the total
// and stores the order. A client total that disagrees with the recomputed
// one is rejected; an omitted total is filled in.
func (s *OrderService) PlaceOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	verr := &ValidationError{}

	if len(req.Ingredients) == 0 {
		verr.add("ingredients", "must contain at least one ingredient")
	}
	for i, line := range req.Ingredients {
		if line.Quantity < 1 {
			verr.add(fmt.Sprintf("ingredients[%d].quantity", i), "must be at least 1")
		}
		ing, ok := s.lookup(line.ID)
		switch {
		case !ok:
			verr.add(fmt.Sprintf("ingredients[%d].id", i), "unknown ingredient %d", line.ID)
		case !ing.IsAvailable:
			verr.add(fmt.Sprintf("ingredients[%d].id", i), "%s is not available", ing.Name)
		}
	}

	status := models.OrderStatusPending
	if req.Status != "" {
		status = models.OrderStatus(req.Status)
		if !status.Valid() {
			verr.add("status", "must be one of %s", knownStatuses())
		}
	}

	var claimed *decimal.Decimal
	if req.TotalPrice != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(req.TotalPrice))
		if err != nil {
			verr.add("totalPrice", "must be a decimal number")
		} else {
			claimed = &d
		}
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	total, err := pricing.TotalForLines(req.Ingredients, s.lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total: %w", err)
	}
	if claimed != nil && !claimed.Equal(total) {
		verr.add("totalPrice", "does not match computed total %s", total.StringFixed(2))
		return nil, verr
	}

	order, err := s.store.CreateOrder(ctx, models.NewOrder{
		Ingredients: req.Ingredients,
		TotalPrice:  total,
		Status:      status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("total_price", order.TotalPrice.StringFixed(2)),
	)
	s.publish(ctx, events.OrderCreated(order))
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.store.GetOrder(ctx, id)
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	return s.store.GetOrderByNumber(ctx, orderNumber)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	next, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order status changed",
		zap.String("order_number", updated.OrderNumber),
		zap.String("from", current.Status.String()),
		zap.String("to", updated.Status.String()),
	)
	s.publish(ctx, events.OrderStatusChanged(updated, current.Status))
	return updated, nil
}

// UpdateStatusByNumber is UpdateStatus addressed by order number, as used
// by the kitchen display.
func (s *OrderService) UpdateStatusByNumber(ctx context.Context, orderNumber, status string) (*models.Order, error) {
	if _, err := parseStatus(status); err != nil {
		return nil, err
	}
	order, err := s.store.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return s.UpdateStatus(ctx, order.ID, status)
}

func (s *OrderService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// publish never fails the caller; a lost event is logged.
func (s *OrderService) publish(ctx context.Context, ev events.OrderEvent) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, ev); err != nil {
		s.logger.Warn("Failed to publish order event",
			zap.String("event", ev.Event),
			zap.String("order_number", ev.OrderNumber),
			zap.Error(err),
		)
	}
}

func parseStatus(status string) (models.OrderStatus, error) {
	st := models.OrderStatus(strings.TrimSpace(status))
	if !st.Valid() {
		verr := &ValidationError{}
		if st == "" {
			verr.add("status", "is required")
		} else {
			verr.add("status", "must be one of %s", knownStatuses())
		}
		return "", verr
	}
	return st, nil
}

func knownStatuses() string {
	names := make([]string, len(models.OrderStatuses))
	for i, st := range models.OrderStatuses {
		names[i] = st.String()
	}
	return strings.Join(names, ", ")
}

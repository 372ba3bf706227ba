package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"kids-burger-backend/internal/builder"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/pricing"
)

var ErrSubmitTimeout = errors.New("placing the order took too long")

// BuildService turns a finished build session into an order.
type BuildService struct {
	orders  *OrderService
	timeout time.Duration
	logger  *zap.Logger
}

func NewBuildService(orders *OrderService, timeout time.Duration, logger *zap.Logger) *BuildService {
	return &BuildService{
		orders:  orders,
		timeout: timeout,
		logger:  logger.Named("builds"),
	}
}

// Submit places the session's selection as an order. The session refuses a
// second submission while one is outstanding. On success the selection is
// cleared; on any failure it is kept so the child can try again.
func (s *BuildService) Submit(ctx context.Context, session *builder.Session) (*models.Order, error) {
	entries, err := session.BeginSubmit()
	if err != nil {
		return nil, err
	}

	sub := pricing.BuildSubmission(entries)

	submitCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	order, err := s.orders.PlaceOrder(submitCtx, models.CreateOrderRequest{
		Ingredients: sub.Ingredients,
		TotalPrice:  sub.TotalPrice,
		Status:      sub.Status.String(),
	})
	// Drivers report a cancelled statement with their own error, so the
	// deadline is read from the context.
	if err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(submitCtx.Err(), context.DeadlineExceeded)) {
		err = fmt.Errorf("%w: %v", ErrSubmitTimeout, err)
	}

	orderNumber := ""
	if order != nil {
		orderNumber = order.OrderNumber
	}
	if endErr := session.EndSubmit(orderNumber, err); endErr != nil {
		s.logger.Error("Build submission was not in flight", zap.String("build_id", session.ID().String()), zap.Error(endErr))
	}

	if err != nil {
		s.logger.Warn("Build submission failed", zap.String("build_id", session.ID().String()), zap.Error(err))
		return nil, err
	}
	return order, nil
}

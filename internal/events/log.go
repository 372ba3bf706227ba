package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher writes events to the application log. It is used when no
// broker is configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.Named("events")}
}

func (p *LogPublisher) Publish(_ context.Context, ev OrderEvent) error {
	p.logger.Info("Order event",
		zap.String("event", ev.Event),
		zap.Int64("order_id", ev.OrderID),
		zap.String("order_number", ev.OrderNumber),
		zap.String("status", ev.Status),
		zap.String("previous_status", ev.PreviousStatus),
		zap.String("total_price", ev.TotalPrice),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

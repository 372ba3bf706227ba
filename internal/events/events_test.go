package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"kids-burger-backend/internal/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:          4,
		OrderNumber: "KID0004",
		Ingredients: []models.OrderLine{{ID: 3, Quantity: 1}},
		TotalPrice:  decimal.NewFromInt(200),
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
}

func TestOrderCreated(t *testing.T) {
	ev := OrderCreated(sampleOrder())

	assert.Equal(t, EventOrderCreated, ev.Event)
	assert.Equal(t, "order.created", ev.RoutingKey())
	assert.Equal(t, "KID0004", ev.OrderNumber)
	assert.Equal(t, "200.00", ev.TotalPrice)
	assert.Equal(t, "pending", ev.Status)
	assert.Len(t, ev.Ingredients, 1)
}

func TestOrderStatusChanged(t *testing.T) {
	order := sampleOrder()
	order.Status = models.OrderStatusReady

	ev := OrderStatusChanged(order, models.OrderStatusPreparing)

	assert.Equal(t, "order.status_changed", ev.RoutingKey())
	assert.Equal(t, "ready", ev.Status)
	assert.Equal(t, "preparing", ev.PreviousStatus)

	body, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"orderNumber":"KID0004"`)
	assert.NotContains(t, string(body), `"ingredients"`)
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	require.NoError(t, p.Publish(context.Background(), OrderCreated(sampleOrder())))
	require.NoError(t, p.Close())

	entries := logs.FilterMessage("Order event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "order.created", fields["event"])
	assert.Equal(t, "KID0004", fields["order_number"])
}

// Runs against a real broker when TEST_RABBITMQ_URL is set.
func TestRabbitPublisher(t *testing.T) {
	url := os.Getenv("TEST_RABBITMQ_URL")
	if url == "" {
		t.Skip("TEST_RABBITMQ_URL not set")
	}

	p, err := DialRabbit(url)
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Ping())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, p.Publish(ctx, OrderCreated(sampleOrder())))
}

type fakeConfirmation struct {
	ack  bool
	late chan struct{}
}

func (c *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	if c.late != nil {
		select {
		case <-c.late:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return c.ack, nil
}

func TestRabbitPublisher_LateConfirmationIsNotReused(t *testing.T) {
	late := make(chan struct{})
	queue := []*fakeConfirmation{
		{ack: true, late: late},
		{ack: false},
		{ack: true},
	}
	var keys []string
	p := &RabbitPublisher{
		publish: func(_ context.Context, routingKey string, msg amqp.Publishing) (confirmation, error) {
			keys = append(keys, routingKey)
			assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
			assert.NotEmpty(t, msg.MessageId)
			conf := queue[0]
			queue = queue[1:]
			return conf, nil
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := p.Publish(ctx, OrderCreated(sampleOrder()))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(late)

	err = p.Publish(context.Background(), OrderStatusChanged(sampleOrder(), models.OrderStatusPending))
	assert.EqualError(t, err, "publish NACK from broker")

	assert.NoError(t, p.Publish(context.Background(), OrderCreated(sampleOrder())))
	assert.Equal(t, []string{EventOrderCreated, EventOrderStatusChanged, EventOrderCreated}, keys)
}

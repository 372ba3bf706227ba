package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kids-burger-backend/internal/models"
)

// MemoryStore keeps orders in process memory. Orders are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	orders   map[int64]*models.Order
	byNumber map[string]int64
	clock    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:   1,
		orders:   make(map[int64]*models.Order),
		byNumber: make(map[string]int64),
		clock:    time.Now,
	}
}

func (s *MemoryStore) CreateOrder(ctx context.Context, in models.NewOrder) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	order := &models.Order{
		ID:          id,
		OrderNumber: FormatOrderNumber(id),
		Ingredients: append([]models.OrderLine(nil), in.Ingredients...),
		TotalPrice:  in.TotalPrice,
		Status:      status,
		CreatedAt:   s.clock().UTC(),
	}
	s.orders[id] = order
	s.byNumber[order.OrderNumber] = id
	return cloneOrder(order), nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
	}
	return cloneOrder(order), nil
}

func (s *MemoryStore) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byNumber[orderNumber]
	if !ok {
		return nil, fmt.Errorf("%w: number %s", ErrOrderNotFound, orderNumber)
	}
	return cloneOrder(s.orders[id]), nil
}

func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
	}
	order.Status = status
	return cloneOrder(order), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func cloneOrder(o *models.Order) *models.Order {
	c := *o
	c.Ingredients = append([]models.OrderLine(nil), o.Ingredients...)
	return &c
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/store"
)

// OrderRepository is the Postgres-backed order store.
type OrderRepository struct {
	db *sql.DB
}

var _ store.OrderStore = (*OrderRepository)(nil)

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder reserves the next id first so the order number can be
// derived from it in the same transaction as the insert.
func (r *OrderRepository) CreateOrder(ctx context.Context, in models.NewOrder) (*models.Order, error) {
	status := in.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	lines, err := encodeLines(in.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ingredients: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, nextOrderIDQuery).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to reserve order id: %w", err)
	}

	row, err := scanOrder(tx.QueryRowContext(ctx, insertOrderQuery,
		id, store.FormatOrderNumber(id), lines, in.TotalPrice.StringFixed(2), string(status),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return row.toModel()
}

func (r *OrderRepository) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	row, err := scanOrder(r.db.QueryRowContext(ctx, selectOrderByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", store.ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return row.toModel()
}

func (r *OrderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	row, err := scanOrder(r.db.QueryRowContext(ctx, selectOrderByNumberQuery, orderNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: number %s", store.ErrOrderNotFound, orderNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return row.toModel()
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	row, err := scanOrder(r.db.QueryRowContext(ctx, updateOrderStatusQuery, string(status), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", store.ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return row.toModel()
}

func (r *OrderRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

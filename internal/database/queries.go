package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"kids-burger-backend/internal/models"
)

const (
	orderColumns = `id, order_number, ingredients, total_price, status, created_at`

	nextOrderIDQuery = `SELECT nextval(pg_get_serial_sequence('orders', 'id'))`

	insertOrderQuery = `
		INSERT INTO orders (id, order_number, ingredients, total_price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orderColumns

	selectOrderByIDQuery = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	selectOrderByNumberQuery = `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`

	updateOrderStatusQuery = `
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING ` + orderColumns
)

// orderRow mirrors one row of the orders table.
type orderRow struct {
	ID          int64
	OrderNumber string
	Ingredients []byte
	TotalPrice  decimal.Decimal
	Status      string
	CreatedAt   time.Time
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*orderRow, error) {
	var r orderRow
	if err := row.Scan(&r.ID, &r.OrderNumber, &r.Ingredients, &r.TotalPrice, &r.Status, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *orderRow) toModel() (*models.Order, error) {
	lines := []models.OrderLine{}
	if len(r.Ingredients) > 0 {
		if err := json.Unmarshal(r.Ingredients, &lines); err != nil {
			return nil, fmt.Errorf("failed to decode ingredients of order %d: %w", r.ID, err)
		}
	}
	return &models.Order{
		ID:          r.ID,
		OrderNumber: r.OrderNumber,
		Ingredients: lines,
		TotalPrice:  r.TotalPrice,
		Status:      models.OrderStatus(r.Status),
		CreatedAt:   r.CreatedAt.UTC(),
	}, nil
}

func encodeLines(lines []models.OrderLine) ([]byte, error) {
	if lines == nil {
		lines = []models.OrderLine{}
	}
	return json.Marshal(lines)
}

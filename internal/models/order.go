package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// OrderLine is one (ingredient id, quantity) pair of an order.
type OrderLine struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type Order struct {
	ID          int64
	OrderNumber string
	Ingredients []OrderLine
	TotalPrice  decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time
}

// NewOrder holds the caller-supplied fields of an order; the store assigns
// the id, order number and creation time.
type NewOrder struct {
	Ingredients []OrderLine
	TotalPrice  decimal.Decimal
	Status      OrderStatus
}

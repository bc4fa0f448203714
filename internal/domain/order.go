package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "CREATED"
)

type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	ProductID   int64           `json:"productId"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

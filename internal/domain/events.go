package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderCreatedEvent struct {
	EventID     string          `json:"eventId"`
	OrderID     int64           `json:"orderId"`
	UserID      int64           `json:"userId"`
	ProductID   int64           `json:"productId"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Timestamp   time.Time       `json:"timestamp"`
}

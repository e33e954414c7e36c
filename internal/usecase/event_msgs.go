package usecase

import "time"

// OrderPlacedMsg is published on checkout to the fulfillment queue
// (RabbitMQ) and the analytics stream (Kafka).
type OrderPlacedMsg struct {
	OrderID      string    `json:"orderId"`
	Owner        string    `json:"owner"`
	ItemCount    int64     `json:"itemCount"`
	TotalCents   int64     `json:"totalCents"`
	DiscountCode string    `json:"discountCode,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OrderSummary is the cached confirmation-page view of an order.
type OrderSummary struct {
	OrderID    string `json:"orderId"`
	Owner      string `json:"owner"`
	ItemCount  int64  `json:"itemCount"`
	TotalCents int64  `json:"totalCents"`
	Status     string `json:"status"`
}

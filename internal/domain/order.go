package domain

import "time"

// Order statuses. An order is created pending and moves once, by admin
// action, to completed or cancelled.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the three known order statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	TotalCents   int64       `json:"totalCents"`
	TotalItems   int         `json:"totalItems"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderItem is a snapshot of a cart entry at checkout time, independent of
// the live catalog. The line-item schema does not carry rarity, stock,
// condition, language or holo; those default to zero values when an order is
// read back.
type OrderItem struct {
	ID             string `json:"-"`
	OrderID        string `json:"-"`
	CardID         string `json:"cardId"`
	CardName       string `json:"cardName"`
	CardNumber     string `json:"cardNumber"`
	CardSeries     string `json:"cardSeries"`
	CardImage      string `json:"cardImage"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Reverse        bool   `json:"reverse"`
}

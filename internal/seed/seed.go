package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type orderSeed struct {
	Customer   string
	Status     string
	CreatedAgo time.Duration
	Items      []itemSeed
}

type itemSeed struct {
	CardID     string
	Name       string
	Number     string
	Series     string
	PriceCents int64
	Quantity   int
	Reverse    bool
}

// Apply inserts demo orders so the admin dashboard has data to render. It is
// idempotent: seeding is skipped when any order already exists.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return fmt.Errorf("count orders: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []orderSeed{
		{
			Customer:   "Sacha",
			Status:     "completed",
			CreatedAgo: 72 * time.Hour,
			Items: []itemSeed{
				{CardID: "184260", Name: "Dracaufeu", Number: "4/102", Series: "Set de Base", PriceCents: 24900, Quantity: 1},
				{CardID: "184261", Name: "Pikachu", Number: "58/102", Series: "Set de Base", PriceCents: 950, Quantity: 2, Reverse: true},
			},
		},
		{
			Customer:   "Ondine",
			Status:     "cancelled",
			CreatedAgo: 48 * time.Hour,
			Items: []itemSeed{
				{CardID: "190412", Name: "Tortank", Number: "2/102", Series: "Set de Base", PriceCents: 15500, Quantity: 1},
			},
		},
		{
			Customer:   "Pierre",
			Status:     "pending",
			CreatedAgo: 3 * time.Hour,
			Items: []itemSeed{
				{CardID: "201774", Name: "Évoli", Number: "119/203", Series: "Évolution Céleste", PriceCents: 320, Quantity: 3},
			},
		},
	}

	for _, s := range seeds {
		if err := insertOrder(ctx, pool, s); err != nil {
			return fmt.Errorf("seed order for %s: %w", s.Customer, err)
		}
	}
	return nil
}

func insertOrder(ctx context.Context, pool *pgxpool.Pool, s orderSeed) error {
	var totalCents int64
	totalItems := 0
	for _, item := range s.Items {
		totalCents += item.PriceCents * int64(item.Quantity)
		totalItems += item.Quantity
	}

	var orderID string
	err := pool.QueryRow(ctx, `
INSERT INTO orders (customer_name, total_cents, total_items, status, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text
`, s.Customer, totalCents, totalItems, s.Status, time.Now().Add(-s.CreatedAgo)).Scan(&orderID)
	if err != nil {
		return err
	}

	for _, item := range s.Items {
		if _, err := pool.Exec(ctx, `
INSERT INTO order_items (order_id, card_id, card_name, card_number, card_series, card_image, unit_price_cents, quantity, reverse)
VALUES ($1, $2, $3, $4, $5, '', $6, $7, $8)
`, orderID, item.CardID, item.Name, item.Number, item.Series, item.PriceCents, item.Quantity, item.Reverse); err != nil {
			return err
		}
	}
	return nil
}

package order

import (
	"context"

	"carameche/internal/domain"
)

type CreateOrderInput struct {
	CustomerName string
	TotalCents   int64
	TotalItems   int
	Items        []domain.OrderItem
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerName string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id, status string) error
}

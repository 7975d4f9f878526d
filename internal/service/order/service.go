package order

import (
	"context"
	"strings"
	"unicode/utf8"

	"carameche/internal/domain"
	orderrepo "carameche/internal/repository/order"

	"github.com/rs/zerolog"
)

// Service validates checkouts, converts cart contents into order records and
// exposes the history/admin read paths.
type Service struct {
	repo   orderrepo.Repository
	logger zerolog.Logger
}

func New(repo orderrepo.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// Submit persists the cart as a pending order and returns it. Validation
// happens before any write: the trimmed customer handle must be at least
// three characters and the cart non-empty.
func (s *Service) Submit(ctx context.Context, customerName string, c domain.Cart) (*domain.Order, error) {
	name := strings.TrimSpace(customerName)
	if utf8.RuneCountInString(name) < 3 {
		return nil, domain.ErrCustomerName
	}
	if len(c.Entries) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(c.Entries))
	for _, e := range c.Entries {
		items = append(items, domain.OrderItem{
			CardID:         e.Card.ID,
			CardName:       e.Card.NameFR,
			CardNumber:     e.Card.Number,
			CardSeries:     e.Card.Series,
			CardImage:      e.Card.Image,
			UnitPriceCents: e.Card.PriceCents,
			Quantity:       e.Quantity,
			Reverse:        e.Card.Reverse,
		})
	}

	created, err := s.repo.Create(ctx, orderrepo.CreateOrderInput{
		CustomerName: name,
		TotalCents:   c.TotalCents(),
		TotalItems:   c.ItemCount(),
		Items:        items,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("order_id", created.ID).Str("customer", name).Int64("total_cents", created.TotalCents).Msg("order submitted")
	return created, nil
}

// ListByCustomer returns a customer's orders, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerName string) ([]domain.Order, error) {
	return s.repo.ListByCustomer(ctx, strings.TrimSpace(customerName))
}

// ListAll returns every order, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// SetStatus writes the status unconditionally; re-applying the current
// status is a no-op at the store level. The admin surface is responsible for
// only offering transitions out of pending.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrUnknownStatus
	}
	return s.repo.SetStatus(ctx, id, status)
}

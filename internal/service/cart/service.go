package cart

import (
	"context"

	cartstate "carameche/internal/cart"
	"carameche/internal/domain"

	"github.com/rs/zerolog"
)

// cardSource resolves catalog cards referenced by cart mutations.
type cardSource interface {
	CardByID(ctx context.Context, id string) (domain.Card, error)
}

// Service applies cart mutations for a session and writes the result to the
// durable slot on every mutation.
type Service struct {
	store   cartstate.Store
	catalog cardSource
	logger  zerolog.Logger
}

func New(store cartstate.Store, catalog cardSource, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger.With().Str("service", "cart").Logger(),
	}
}

func (s *Service) Get(ctx context.Context, session string) (domain.Cart, error) {
	return s.store.Get(ctx, session)
}

// Add applies a quantity delta for a catalog card. The second return value
// reports whether the quantity was clamped to the card's stock.
func (s *Service) Add(ctx context.Context, session, cardID string, quantity int) (domain.Cart, bool, error) {
	card, err := s.catalog.CardByID(ctx, cardID)
	if err != nil {
		return domain.Cart{}, false, err
	}

	current, err := s.store.Get(ctx, session)
	if err != nil {
		return domain.Cart{}, false, err
	}

	next, limit := cartstate.Add(current, card, quantity)
	if err := s.store.Put(ctx, session, next); err != nil {
		return domain.Cart{}, false, err
	}
	s.logger.Debug().Str("session", session).Str("card_id", cardID).Int("delta", quantity).Bool("limit", limit).Msg("cart add")
	return next, limit, nil
}

// Update sets an entry's quantity to an absolute value; zero or below
// removes the entry.
func (s *Service) Update(ctx context.Context, session, cardID string, quantity int) (domain.Cart, bool, error) {
	current, err := s.store.Get(ctx, session)
	if err != nil {
		return domain.Cart{}, false, err
	}

	next, limit := cartstate.Update(current, cardID, quantity)
	if err := s.store.Put(ctx, session, next); err != nil {
		return domain.Cart{}, false, err
	}
	return next, limit, nil
}

func (s *Service) Remove(ctx context.Context, session, cardID string) (domain.Cart, error) {
	current, err := s.store.Get(ctx, session)
	if err != nil {
		return domain.Cart{}, err
	}

	next := cartstate.Remove(current, cardID)
	if err := s.store.Put(ctx, session, next); err != nil {
		return domain.Cart{}, err
	}
	return next, nil
}

func (s *Service) Clear(ctx context.Context, session string) error {
	return s.store.Delete(ctx, session)
}

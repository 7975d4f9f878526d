package catalog

import (
	"context"
	"sync"

	"carameche/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Marketplace is the slice of the marketplace client the catalog needs.
type Marketplace interface {
	Export(ctx context.Context) ([]domain.Card, error)
	Expansions(ctx context.Context) ([]domain.Series, error)
}

// Translator resolves a localized card name, falling back to the input.
type Translator interface {
	French(ctx context.Context, name string) string
}

// SeriesSlot is a session-scoped cache slot holding the serialized series
// list, so the storefront can render instantly while the catalog warms.
type SeriesSlot interface {
	GetSeries(ctx context.Context) ([]domain.Series, bool)
	PutSeries(ctx context.Context, series []domain.Series)
}

// Cache holds the full card set fetched once per process lifetime, plus the
// derived distinct-series list. It is owned by the composition root and
// passed to consumers; concurrent first-time callers share a single in-flight
// fetch. An empty result is not retained, so a degraded fetch is retried on
// the next call.
type Cache struct {
	market     Marketplace
	translator Translator
	slot       SeriesSlot
	logger     zerolog.Logger

	group singleflight.Group

	mu     sync.RWMutex
	cards  []domain.Card
	series []domain.Series
}

func NewCache(market Marketplace, translator Translator, slot SeriesSlot, logger zerolog.Logger) *Cache {
	return &Cache{
		market:     market,
		translator: translator,
		slot:       slot,
		logger:     logger.With().Str("component", "catalog").Logger(),
	}
}

// Load returns the full card set, fetching it from the marketplace on first
// call. Fetch or decode failure propagates to the caller; per-card
// translation failure does not.
func (c *Cache) Load(ctx context.Context) ([]domain.Card, error) {
	c.mu.RLock()
	cards := c.cards
	c.mu.RUnlock()
	if len(cards) > 0 {
		return cards, nil
	}

	v, err, _ := c.group.Do("catalog", func() (interface{}, error) {
		c.mu.RLock()
		cached := c.cards
		c.mu.RUnlock()
		if len(cached) > 0 {
			return cached, nil
		}

		fetched, err := c.market.Export(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("catalog load failed")
			return nil, err
		}
		if c.translator != nil {
			for i := range fetched {
				fetched[i].NameFR = c.translator.French(ctx, fetched[i].Name)
			}
		}

		c.mu.Lock()
		c.cards = fetched
		c.mu.Unlock()
		c.logger.Info().Int("cards", len(fetched)).Msg("catalog loaded")
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Card), nil
}

// CardByID resolves a catalog card, loading the catalog if needed.
func (c *Cache) CardByID(ctx context.Context, id string) (domain.Card, error) {
	cards, err := c.Load(ctx)
	if err != nil {
		return domain.Card{}, err
	}
	for _, card := range cards {
		if card.ID == id {
			return card, nil
		}
	}
	return domain.Card{}, domain.ErrUnknownCard
}

// Series returns the distinct-series list derived from the card set, cached
// after first computation. When the catalog is cold and the session slot
// holds a previous list, that list is served and a background warm-up is
// started. Catalog load failure propagates; expansion-metadata failure
// degrades to name-and-count-only series.
func (c *Cache) Series(ctx context.Context) ([]domain.Series, error) {
	c.mu.RLock()
	series := c.series
	cold := len(c.cards) == 0
	c.mu.RUnlock()
	if len(series) > 0 {
		return series, nil
	}

	if cold && c.slot != nil {
		if cached, ok := c.slot.GetSeries(ctx); ok && len(cached) > 0 {
			go func() {
				if _, err := c.computeSeries(context.Background()); err != nil {
					c.logger.Warn().Err(err).Msg("background series refresh failed")
				}
			}()
			return cached, nil
		}
	}

	return c.computeSeries(ctx)
}

func (c *Cache) computeSeries(ctx context.Context) ([]domain.Series, error) {
	cards, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}

	meta := make(map[string]domain.Series)
	if expansions, err := c.market.Expansions(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("expansion metadata unavailable")
	} else {
		for _, s := range expansions {
			meta[s.Name] = s
		}
	}

	counts := make(map[string]int)
	var order []string
	for _, card := range cards {
		if counts[card.Series] == 0 {
			order = append(order, card.Series)
		}
		counts[card.Series]++
	}

	series := make([]domain.Series, 0, len(order))
	for _, name := range order {
		s, ok := meta[name]
		if !ok {
			s = domain.Series{ID: name, Name: name}
		}
		s.CardCount = counts[name]
		series = append(series, s)
	}

	c.mu.Lock()
	c.series = series
	c.mu.Unlock()
	if c.slot != nil {
		c.slot.PutSeries(ctx, series)
	}
	return series, nil
}

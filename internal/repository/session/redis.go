// Package session persists the per-session slots in Redis: one cart slot per
// storefront session and one shared series slot.
package session

import (
	"context"
	"encoding/json"
	"time"

	"carameche/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	cartKeyPrefix = "cart:"
	seriesKey     = "series"

	cartTTL   = 30 * 24 * time.Hour
	seriesTTL = time.Hour
)

// RedisStore implements the cart slot and the series slot on one Redis
// client. Corrupt or missing payloads degrade to empty values; slot writes
// that fail are logged and swallowed so a Redis hiccup never breaks a cart
// mutation that already happened in memory.
type RedisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewRedisStore(client *redis.Client, logger zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

func (s *RedisStore) Get(ctx context.Context, session string) (domain.Cart, error) {
	payload, err := s.client.Get(ctx, cartKeyPrefix+session).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Str("session", session).Err(err).Msg("cart slot read failed")
		}
		return domain.Cart{}, nil
	}

	var cart domain.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		// Unparseable stored state is discarded, not surfaced.
		s.logger.Warn().Str("session", session).Err(err).Msg("discarding corrupt cart slot")
		return domain.Cart{}, nil
	}
	return cart, nil
}

func (s *RedisStore) Put(ctx context.Context, session string, cart domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, cartKeyPrefix+session, payload, cartTTL).Err(); err != nil {
		s.logger.Warn().Str("session", session).Err(err).Msg("cart slot write failed")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, session string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+session).Err(); err != nil {
		s.logger.Warn().Str("session", session).Err(err).Msg("cart slot delete failed")
	}
	return nil
}

// GetSeries reads the cached series list; a miss, read failure or corrupt
// payload reports no value.
func (s *RedisStore) GetSeries(ctx context.Context) ([]domain.Series, bool) {
	payload, err := s.client.Get(ctx, seriesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var series []domain.Series
	if err := json.Unmarshal(payload, &series); err != nil {
		return nil, false
	}
	return series, true
}

// PutSeries writes the series list with a TTL so a stale list ages out.
func (s *RedisStore) PutSeries(ctx context.Context, series []domain.Series) {
	payload, err := json.Marshal(series)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, seriesKey, payload, seriesTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("series slot write failed")
	}
}

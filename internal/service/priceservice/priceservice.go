package priceservice

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/goldmart/internal/config"
	"github.com/GlebRadaev/goldmart/internal/domain"
)

const cacheKey = "gold_price_usd"

var ErrPriceUnavailable = errors.New("gold price is unavailable")

type Feed interface {
	FetchPrice(ctx context.Context) (decimal.Decimal, error)
}

// Service owns the get-or-refresh policy for the market price: a redis
// entry with a TTL in front of the external feed. Concurrent refreshes
// on a cache miss collapse into a single feed call.
type Service struct {
	feed        Feed
	cache       redis.Cmdable
	ttl         time.Duration
	ounceToGram decimal.Decimal
	fxRate      decimal.Decimal

	group singleflight.Group
}

func New(cfg *config.Config, feed Feed, cache redis.Cmdable) *Service {
	return &Service{
		feed:        feed,
		cache:       cache,
		ttl:         time.Duration(cfg.PriceTTL) * time.Second,
		ounceToGram: decimal.NewFromFloat(cfg.OunceToGram),
		fxRate:      decimal.NewFromFloat(cfg.FxRate),
	}
}

// GetPrice returns the current gold price. A cached value younger than
// the TTL is returned as-is; otherwise the feed is called and the
// result written through to the cache. There is no stale fallback: if
// the feed fails on a miss the price is unavailable.
func (s *Service) GetPrice(ctx context.Context) (*domain.PriceQuote, error) {
	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		perOunce, parseErr := decimal.NewFromString(cached)
		if parseErr == nil {
			return s.quote(perOunce, domain.PriceSourceCache), nil
		}
		zap.L().Warn("discarding unparsable cached price", zap.String("value", cached), zap.Error(parseErr))
	} else if err != redis.Nil {
		zap.L().Warn("price cache read failed, falling back to feed", zap.Error(err))
	}

	fetched, err, _ := s.group.Do(cacheKey, func() (any, error) {
		perOunce, err := s.feed.FetchPrice(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, cacheKey, perOunce.String(), s.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache gold price", zap.Error(err))
		}
		return perOunce, nil
	})
	if err != nil {
		zap.L().Error("failed to fetch gold price from feed", zap.Error(err))
		return nil, ErrPriceUnavailable
	}

	return s.quote(fetched.(decimal.Decimal), domain.PriceSourceFeed), nil
}

func (s *Service) quote(perOunceUSD decimal.Decimal, source string) *domain.PriceQuote {
	perOunceLocal := perOunceUSD.Mul(s.fxRate)
	return &domain.PriceQuote{
		PerOunceUSD:   domain.Round2(perOunceUSD),
		PerGramUSD:    domain.Round2(perOunceUSD.Div(s.ounceToGram)),
		PerOunceLocal: domain.Round2(perOunceLocal),
		PerGramLocal:  domain.Round2(perOunceLocal.Div(s.ounceToGram)),
		Source:        source,
	}
}

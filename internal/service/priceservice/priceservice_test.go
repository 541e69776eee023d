package priceservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goldmart/internal/config"
	"github.com/GlebRadaev/goldmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockFeed, redismock.ClientMock) {
	ctrl := gomock.NewController(t)
	feed := NewMockFeed(ctrl)
	client, cacheMock := redismock.NewClientMock()
	cfg := &config.Config{
		PriceTTL:    3600,
		OunceToGram: 28.34,
		FxRate:      83,
	}
	service := New(cfg, feed, client)
	return service, feed, cacheMock
}

func TestGetPriceCacheHit(t *testing.T) {
	service, _, cacheMock := NewMock(t)
	cacheMock.ExpectGet(cacheKey).SetVal("2834")

	quote, err := service.GetPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.PriceSourceCache, quote.Source)
	assert.True(t, quote.PerOunceUSD.Equal(decimal.NewFromInt(2834)))
	assert.True(t, quote.PerGramUSD.Equal(decimal.NewFromInt(100)),
		"per gram usd = %s, want 100", quote.PerGramUSD)
	assert.True(t, quote.PerOunceLocal.Equal(decimal.NewFromInt(235222)))
	assert.True(t, quote.PerGramLocal.Equal(decimal.NewFromInt(8300)),
		"per gram local = %s, want 8300", quote.PerGramLocal)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestGetPriceCacheMiss(t *testing.T) {
	service, feed, cacheMock := NewMock(t)
	perOunce := decimal.NewFromFloat(2034.56)

	cacheMock.ExpectGet(cacheKey).RedisNil()
	feed.EXPECT().FetchPrice(gomock.Any()).Return(perOunce, nil)
	cacheMock.ExpectSet(cacheKey, perOunce.String(), 3600*time.Second).SetVal("OK")

	quote, err := service.GetPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.PriceSourceFeed, quote.Source)
	assert.True(t, quote.PerOunceUSD.Equal(decimal.NewFromFloat(2034.56)))
	assert.True(t, quote.PerGramUSD.Equal(decimal.NewFromFloat(71.79)),
		"per gram usd = %s, want 71.79", quote.PerGramUSD)
	assert.True(t, quote.PerOunceLocal.Equal(decimal.NewFromFloat(168868.48)))
	assert.True(t, quote.PerGramLocal.Equal(decimal.NewFromFloat(5958.66)),
		"per gram local = %s, want 5958.66", quote.PerGramLocal)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestGetPriceFeedFailure(t *testing.T) {
	service, feed, cacheMock := NewMock(t)

	cacheMock.ExpectGet(cacheKey).RedisNil()
	feed.EXPECT().FetchPrice(gomock.Any()).Return(decimal.Zero, errors.New("upstream timeout"))

	quote, err := service.GetPrice(context.Background())
	assert.ErrorIs(t, err, ErrPriceUnavailable)
	assert.Nil(t, quote)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestGetPriceUnparsableCacheFallsThrough(t *testing.T) {
	service, feed, cacheMock := NewMock(t)
	perOunce := decimal.NewFromInt(2000)

	cacheMock.ExpectGet(cacheKey).SetVal("not a number")
	feed.EXPECT().FetchPrice(gomock.Any()).Return(perOunce, nil)
	cacheMock.ExpectSet(cacheKey, perOunce.String(), 3600*time.Second).SetVal("OK")

	quote, err := service.GetPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.PriceSourceFeed, quote.Source)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestGetPriceCacheWriteFailureIsNotFatal(t *testing.T) {
	service, feed, cacheMock := NewMock(t)
	perOunce := decimal.NewFromInt(2100)

	cacheMock.ExpectGet(cacheKey).RedisNil()
	feed.EXPECT().FetchPrice(gomock.Any()).Return(perOunce, nil)
	cacheMock.ExpectSet(cacheKey, perOunce.String(), 3600*time.Second).SetErr(errors.New("redis down"))

	quote, err := service.GetPrice(context.Background())
	assert.NoError(t, err)
	assert.True(t, quote.PerOunceUSD.Equal(perOunce))
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestGetPriceFeedCalledOnceWithinTTL(t *testing.T) {
	service, feed, cacheMock := NewMock(t)
	perOunce := decimal.NewFromInt(2500)

	cacheMock.ExpectGet(cacheKey).RedisNil()
	feed.EXPECT().FetchPrice(gomock.Any()).Return(perOunce, nil).Times(1)
	cacheMock.ExpectSet(cacheKey, perOunce.String(), 3600*time.Second).SetVal("OK")
	cacheMock.ExpectGet(cacheKey).SetVal(perOunce.String())

	first, err := service.GetPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.PriceSourceFeed, first.Source)

	second, err := service.GetPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.PriceSourceCache, second.Source)
	assert.True(t, first.PerGramLocal.Equal(second.PerGramLocal))
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

package price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goldmart/internal/config"
	"github.com/GlebRadaev/goldmart/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var ErrNoPrice = errors.New("feed response has no USD rate")

type Response struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

// Feed fetches the current gold price (USD per troy ounce) from a
// metalpriceapi-style endpoint.
type Feed struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func NewFeed(cfg *config.Config, client clients.HTTPClientI) *Feed {
	return &Feed{
		url:    cfg.FeedURL,
		apiKey: cfg.FeedAPIKey,
		client: client,
	}
}

func (f *Feed) FetchPrice(ctx context.Context) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("api_key", f.apiKey)
	params.Set("base", "XAU")
	params.Set("currencies", "USD")
	requestURL := f.url + "?" + params.Encode()

	var err error
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return decimal.Zero, ctx.Err()
		default:
			statusCode, respBody, _, err = f.client.Get(requestURL, nil)
			if err != nil || statusCode != http.StatusOK {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				if err != nil {
					return decimal.Zero, fmt.Errorf("failed to fetch gold price after %d retries: %w", maxRetries, err)
				}
				zap.L().Error("unexpected status code from price feed", zap.Int("status", statusCode))
				return decimal.Zero, fmt.Errorf("price feed returned status %d", statusCode)
			}
			return parsePrice(respBody)
		}
	}
	return decimal.Zero, ErrNoPrice
}

func parsePrice(respBody []byte) (decimal.Decimal, error) {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse feed response: %w", err)
	}
	rate, ok := response.Rates["USD"]
	if !ok || rate <= 0 {
		return decimal.Zero, ErrNoPrice
	}
	return decimal.NewFromFloat(rate), nil
}

// internal/pricefeed/coingecko.go
package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultCoinGeckoURL is the public SOL/USD quote endpoint.
const DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3/simple/price?ids=solana&vs_currencies=usd"

// ErrPriceFeedUnavailable covers every failure to obtain a usable reference price.
var ErrPriceFeedUnavailable = errors.New("price feed unavailable")

// Feed supplies the USD value of one SOL.
type Feed interface {
	SolUSD(ctx context.Context) (float64, error)
}

// simplePriceResponse mirrors {"solana":{"usd":123.45}}.
type simplePriceResponse struct {
	Solana *struct {
		USD *decimal.Decimal `json:"usd"`
	} `json:"solana"`
}

// CoinGecko fetches SOL/USD from the CoinGecko simple price API.
type CoinGecko struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// NewCoinGecko creates a feed for url; an empty url selects DefaultCoinGeckoURL.
func NewCoinGecko(url string, timeout time.Duration, logger *zap.Logger) *CoinGecko {
	if url == "" {
		url = DefaultCoinGeckoURL
	}
	return &CoinGecko{
		client: &http.Client{
			Timeout: timeout,
		},
		url:    url,
		logger: logger.Named("coingecko"),
	}
}

// SolUSD performs one fresh request. There is no caching and no retry.
func (c *CoinGecko) SolUSD(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: create request: %v", ErrPriceFeedUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: execute request: %v", ErrPriceFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("%w: unexpected status code: %d, body: %s", ErrPriceFeedUnavailable, resp.StatusCode, string(body))
	}

	var response simplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", ErrPriceFeedUnavailable, err)
	}

	if response.Solana == nil || response.Solana.USD == nil {
		return 0, fmt.Errorf("%w: response has no solana.usd field", ErrPriceFeedUnavailable)
	}
	if !response.Solana.USD.IsPositive() {
		return 0, fmt.Errorf("%w: non-positive price %s", ErrPriceFeedUnavailable, response.Solana.USD)
	}

	price := response.Solana.USD.InexactFloat64()
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, fmt.Errorf("%w: price %s out of range", ErrPriceFeedUnavailable, response.Solana.USD)
	}
	c.logger.Debug("SOL price fetched", zap.Float64("sol_usd", price))

	return price, nil
}

// Close drops idle connections to the price API.
func (c *CoinGecko) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

var _ Feed = (*CoinGecko)(nil)

package alpaca

import (
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"momentum-screener/internal/domain"
)

// Client fetches historical daily bars from Alpaca's market data API. It
// implements domain.BarSource. A BarCache can be injected to avoid
// refetching within the cache TTL; pass nil to disable caching.
type Client struct {
	md    *marketdata.Client
	cache domain.BarCache
}

func NewClient(apiKey, apiSecret string, cache domain.BarCache) *Client {
	md := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
	return &Client{md: md, cache: cache}
}

// GetBars fetches up to days calendar days of daily bars for one symbol.
// Results come back chronologically sorted; illiquid symbols may return
// fewer rows than requested.
func (c *Client) GetBars(symbol string, days int) ([]domain.Bar, error) {
	key := fmt.Sprintf("bars_%s_%d", symbol, days)
	if c.cache != nil {
		if bars, ok := c.cache.Get(key); ok {
			return bars, nil
		}
	}

	bars, err := c.md.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     time.Now().AddDate(0, 0, -days),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching bars for %s: %w", symbol, err)
	}

	converted := convertBars(bars)
	if c.cache != nil {
		c.cache.Set(key, converted)
	}
	return converted, nil
}

// GetMultiBars fetches daily bars for multiple symbols in one batch.
// Symbols already cached are served from the cache; only the misses go to
// the API.
func (c *Client) GetMultiBars(symbols []string, days int) (map[string][]domain.Bar, error) {
	result := make(map[string][]domain.Bar, len(symbols))

	var misses []string
	for _, symbol := range symbols {
		if c.cache != nil {
			if bars, ok := c.cache.Get(fmt.Sprintf("bars_%s_%d", symbol, days)); ok {
				result[symbol] = bars
				continue
			}
		}
		misses = append(misses, symbol)
	}
	if len(misses) == 0 {
		return result, nil
	}

	barsMap, err := c.md.GetMultiBars(misses, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     time.Now().AddDate(0, 0, -days),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching multi bars: %w", err)
	}

	for symbol, bars := range barsMap {
		converted := convertBars(bars)
		result[symbol] = converted
		if c.cache != nil {
			c.cache.Set(fmt.Sprintf("bars_%s_%d", symbol, days), converted)
		}
	}
	return result, nil
}

func convertBars(bars []marketdata.Bar) []domain.Bar {
	out := make([]domain.Bar, len(bars))
	for i, b := range bars {
		out[i] = domain.Bar{
			Timestamp: b.Timestamp,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    int64(b.Volume),
		}
	}
	return out
}

package quotes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"networth/src/config"
	"networth/src/utils/requests"
	redis_utils "networth/src/utils/redis"
)

type QuoteClientI interface {
	GetQuote(symbol string) (*QuoteSchema, error)
}

// QuoteClient is a thin adapter over the market-data provider. Responses are
// cached in Redis so repeated refresh runs inside the TTL window do not hit
// the provider again.
type QuoteClient struct {
	API      *requests.ExternalAPIService
	BaseURL  string
	Cache    *redis_utils.RedisHandler
	CacheTTL time.Duration
}

// NewClient creates a new instance of QuoteClient. cache may be nil when no
// Redis is configured.
func NewClient(cfg *config.Config, cache *redis_utils.RedisHandler) *QuoteClient {
	ttl := time.Duration(cfg.ExternalClients.Quotes.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &QuoteClient{
		API:      requests.NewExternalAPIService(nil),
		BaseURL:  cfg.ExternalClients.Quotes.BaseURL,
		Cache:    cache,
		CacheTTL: ttl,
	}
}

// GetQuote fetches the latest price for one instrument symbol.
func (c *QuoteClient) GetQuote(symbol string) (*QuoteSchema, error) {
	cacheKey := redis_utils.GenerateUUID("quote", symbol)
	if c.Cache != nil {
		var cached QuoteSchema
		if err := c.Cache.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v1/quotes/%s", c.BaseURL, url.PathEscape(symbol))
	resp, err := c.API.Get(endpoint, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var quote QuoteSchema
	if err = json.Unmarshal(responseBody, &quote); err != nil {
		return nil, err
	}

	if c.Cache != nil {
		// Cache failures only cost us a provider round trip next time
		_ = c.Cache.Set(cacheKey, quote, c.CacheTTL)
	}

	return &quote, nil
}

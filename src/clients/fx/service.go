package fx

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

type FXClientI interface {
	GetRate(from, to string) (*RateSchema, error)
}

// FXClient is a thin adapter over the FX rate provider, with the same Redis
// caching scheme as the quote client.
type FXClient struct {
	API      *requests.ExternalAPIService
	BaseURL  string
	Cache    *redis_utils.RedisHandler
	CacheTTL time.Duration
}

// NewClient creates a new instance of FXClient. cache may be nil when no
// Redis is configured.
func NewClient(cfg *config.Config, cache *redis_utils.RedisHandler) *FXClient {
	ttl := time.Duration(cfg.ExternalClients.FX.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &FXClient{
		API:      requests.NewExternalAPIService(nil),
		BaseURL:  cfg.ExternalClients.FX.BaseURL,
		Cache:    cache,
		CacheTTL: ttl,
	}
}

// GetRate fetches the conversion rate for one currency pair.
func (c *FXClient) GetRate(from, to string) (*RateSchema, error) {
	cacheKey := redis_utils.GenerateUUID("fx", from, to)
	if c.Cache != nil {
		var cached RateSchema
		if err := c.Cache.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v1/rates", c.BaseURL)
	params := url.Values{}
	params.Add("from", from)
	params.Add("to", to)

	resp, err := c.API.Get(endpoint, "", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rate RateSchema
	if err = json.Unmarshal(responseBody, &rate); err != nil {
		return nil, err
	}

	if c.Cache != nil {
		_ = c.Cache.Set(cacheKey, rate, c.CacheTTL)
	}

	return &rate, nil
}

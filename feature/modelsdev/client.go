package modelsdev

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"which-llm/core/cache"
)

// Config holds configuration for the models.dev client.
type Config struct {
	// URL is the catalog document location.
	URL string `mapstructure:"url" default:"https://models.dev/api.json"`
	// TimeoutSeconds is the full-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// cacheEndpoint identifies the catalog in the cache regardless of the
// configured URL, so a URL change invalidates nothing by accident.
const cacheEndpoint = "models_dev"

// Client fetches the models.dev catalog with cache-through reads.
// No authentication is required.
type Client struct {
	http   *http.Client
	url    string
	cache  *cache.Cache
	logger *zap.Logger
}

// NewClient builds a catalog client.
func NewClient(cfg Config, c *cache.Cache, logger *zap.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		url:    cfg.URL,
		cache:  c,
		logger: logger,
	}
}

// Fetch returns the full catalog, from cache unless refresh is set.
func (c *Client) Fetch(ctx context.Context, refresh bool) (Catalog, error) {
	key := cache.Key(cacheEndpoint, nil)

	if !refresh {
		if data, ok := c.cache.Get(key); ok {
			c.logger.Debug("cache hit", zap.String("endpoint", cacheEndpoint))
			return decode(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("modelsdev: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching", zap.String("url", c.url))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("modelsdev: request catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("modelsdev: catalog request failed with HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("modelsdev: read catalog: %w", err)
	}

	catalog, err := decode(body)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(key, body); err != nil {
		c.logger.Warn("failed to cache catalog", zap.Error(err))
	}

	return catalog, nil
}

func decode(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("modelsdev: decode catalog: %w", err)
	}
	return catalog, nil
}

package aa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"which-llm/core/cache"
)

// API endpoints, relative to the base URL.
const (
	EndpointLLMs = "/data/llms/models"

	EndpointTextToImage  = "/data/media/text-to-image"
	EndpointImageEditing = "/data/media/image-editing"
	EndpointTextToSpeech = "/data/media/text-to-speech"
	EndpointTextToVideo  = "/data/media/text-to-video"
	EndpointImageToVideo = "/data/media/image-to-video"
)

// MediaEndpoints maps each media table name to its API endpoint.
var MediaEndpoints = map[string]string{
	"text_to_image":  EndpointTextToImage,
	"image_editing":  EndpointImageEditing,
	"text_to_speech": EndpointTextToSpeech,
	"text_to_video":  EndpointTextToVideo,
	"image_to_video": EndpointImageToVideo,
}

// Client talks to the Artificial Analysis API with cache-through reads.
type Client struct {
	http   *http.Client
	base   string
	apiKey string
	cache  *cache.Cache
	logger *zap.Logger
}

// NewClient builds a client from configuration and a resolved API key.
func NewClient(cfg Config, apiKey string, c *cache.Cache, logger *zap.Logger) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: time.Duration(cfg.ConnectTimeoutSeconds) * time.Second,
		}).DialContext,
	}

	return &Client{
		http: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
			Transport: transport,
		},
		base:   cfg.BaseURL,
		apiKey: apiKey,
		cache:  c,
		logger: logger,
	}
}

// FetchLLMs returns all LLM records.
func (c *Client) FetchLLMs(ctx context.Context, refresh bool) ([]Model, error) {
	body, err := c.get(ctx, EndpointLLMs, refresh)
	if err != nil {
		return nil, err
	}

	var env Envelope[[]Model]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("aa: decode %s response: %w", EndpointLLMs, err)
	}
	return env.Data, nil
}

// FetchMedia returns all records for one media-arena endpoint.
func (c *Client) FetchMedia(ctx context.Context, endpoint string, refresh bool) ([]MediaModel, error) {
	body, err := c.get(ctx, endpoint, refresh)
	if err != nil {
		return nil, err
	}

	var env Envelope[[]MediaModel]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("aa: decode %s response: %w", endpoint, err)
	}
	return env.Data, nil
}

// get returns the raw response payload for endpoint, consulting the
// cache first unless refresh forces a live request.
func (c *Client) get(ctx context.Context, endpoint string, refresh bool) ([]byte, error) {
	key := cache.Key(endpoint, nil)

	if !refresh {
		if data, ok := c.cache.Get(key); ok {
			c.logger.Debug("cache hit", zap.String("endpoint", endpoint))
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("aa: build request for %s: %w", endpoint, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching", zap.String("endpoint", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aa: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("aa: read %s response: %w", endpoint, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrInvalidAPIKey
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{RetryAfter: resp.Header.Get("Retry-After")}
	case resp.StatusCode >= 500:
		return nil, &ServerError{Status: resp.StatusCode}
	default:
		return nil, &APIError{Status: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := c.cache.Set(key, body); err != nil {
		c.logger.Warn("failed to cache response",
			zap.String("endpoint", endpoint), zap.Error(err))
	}

	return body, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

package hosted

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"which-llm/core/cache"
	"which-llm/feature/aa"
	"which-llm/feature/modelsdev"
)

// Config locates the snapshot bucket.
type Config struct {
	// Endpoint is the object-store host.
	Endpoint string `mapstructure:"endpoint" default:"data.which-llm.dev"`
	// UseSSL toggles TLS for the endpoint.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket holds the snapshot objects.
	Bucket string `mapstructure:"bucket" default:"which-llm"`
	// Prefix is the object key prefix, typically a schema version.
	Prefix string `mapstructure:"prefix" default:"v1"`
}

// Snapshot object names under the configured prefix.
const (
	objectLLMs    = "llms.json"
	objectCatalog = "models-dev.json"
)

// Client reads snapshots anonymously with cache-through semantics.
type Client struct {
	store  *minio.Client
	bucket string
	prefix string
	cache  *cache.Cache
	logger *zap.Logger
}

// NewClient builds an anonymous snapshot client.
func NewClient(cfg Config, c *cache.Cache, logger *zap.Logger) (*Client, error) {
	store, err := minio.New(cfg.Endpoint, &minio.Options{Secure: cfg.UseSSL})
	if err != nil {
		return nil, fmt.Errorf("hosted: connect to %s: %w", cfg.Endpoint, err)
	}

	return &Client{
		store:  store,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		cache:  c,
		logger: logger,
	}, nil
}

// FetchLLMs returns the LLM snapshot.
func (c *Client) FetchLLMs(ctx context.Context, refresh bool) ([]aa.Model, error) {
	body, err := c.get(ctx, objectLLMs, refresh)
	if err != nil {
		return nil, err
	}

	var env aa.Envelope[[]aa.Model]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("hosted: decode %s: %w", objectLLMs, err)
	}
	return env.Data, nil
}

// FetchCatalog returns the models.dev snapshot.
func (c *Client) FetchCatalog(ctx context.Context, refresh bool) (modelsdev.Catalog, error) {
	body, err := c.get(ctx, objectCatalog, refresh)
	if err != nil {
		return nil, err
	}

	var catalog modelsdev.Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("hosted: decode %s: %w", objectCatalog, err)
	}
	return catalog, nil
}

// FetchMedia returns the snapshot for one media table.
func (c *Client) FetchMedia(ctx context.Context, table string, refresh bool) ([]aa.MediaModel, error) {
	object := table + ".json"
	body, err := c.get(ctx, object, refresh)
	if err != nil {
		return nil, err
	}

	var env aa.Envelope[[]aa.MediaModel]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("hosted: decode %s: %w", object, err)
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, object string, refresh bool) ([]byte, error) {
	key := cache.Key("hosted/"+object, nil)

	if !refresh {
		if data, ok := c.cache.Get(key); ok {
			c.logger.Debug("cache hit", zap.String("object", object))
			return data, nil
		}
	}

	name := c.prefix + "/" + object
	c.logger.Debug("downloading snapshot",
		zap.String("bucket", c.bucket), zap.String("object", name))

	obj, err := c.store.GetObject(ctx, c.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("hosted: get %s: %w", name, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("hosted: read %s: %w", name, err)
	}

	if err := c.cache.Set(key, body); err != nil {
		c.logger.Warn("failed to cache snapshot",
			zap.String("object", object), zap.Error(err))
	}

	return body, nil
}

package hosted

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"which-llm/core/cache"
)

// serveObject answers S3-style GET requests for one object key with a
// fixed payload, counting hits.
func serveObject(t *testing.T, key string, payload []byte, hits *int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["location"]; ok {
			w.Header().Set("Content-Type", "application/xml")
			w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/"></LocationConstraint>`))
			return
		}
		if r.URL.Path != key {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		*hits++
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("ETag", `"abc123"`)
		w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	c, err := cache.New(cache.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	cfg := Config{Endpoint: u.Host, UseSSL: false, Bucket: "which-llm", Prefix: "v1"}
	client, err := NewClient(cfg, c, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClient_FetchLLMs(t *testing.T) {
	payload := []byte(`{
	  "status": 200,
	  "data": [
	    {"id": "m-1", "name": "GPT-5", "slug": "gpt-5", "model_creator": {"id": "c-1", "name": "OpenAI"}}
	  ]
	}`)

	hits := 0
	client := newTestClient(t, serveObject(t, "/which-llm/v1/llms.json", payload, &hits))

	models, err := client.FetchLLMs(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "gpt-5", models[0].Slug)
}

func TestClient_FetchCatalog(t *testing.T) {
	payload := []byte(`{
	  "openai": {"id": "openai", "name": "OpenAI", "models": {"o3-mini": {"id": "o3-mini", "name": "o3-mini"}}}
	}`)

	hits := 0
	client := newTestClient(t, serveObject(t, "/which-llm/v1/models-dev.json", payload, &hits))

	catalog, err := client.FetchCatalog(context.Background(), false)
	require.NoError(t, err)
	require.Contains(t, catalog, "openai")
	assert.Contains(t, catalog["openai"].Models, "o3-mini")
}

func TestClient_FetchMedia(t *testing.T) {
	payload := []byte(`{
	  "status": 200,
	  "data": [
	    {"id": "img-1", "name": "Imagen 4", "slug": "imagen-4", "model_creator": {"id": "c-1", "name": "Google"}, "elo": 1100.0}
	  ]
	}`)

	hits := 0
	client := newTestClient(t, serveObject(t, "/which-llm/v1/text_to_image.json", payload, &hits))

	models, err := client.FetchMedia(context.Background(), "text_to_image", false)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Imagen 4", models[0].Name)
}

func TestClient_CacheThrough(t *testing.T) {
	payload := []byte(`{"status": 200, "data": []}`)

	hits := 0
	client := newTestClient(t, serveObject(t, "/which-llm/v1/llms.json", payload, &hits))

	_, err := client.FetchLLMs(context.Background(), false)
	require.NoError(t, err)
	_, err = client.FetchLLMs(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "second fetch must be served from cache")

	_, err = client.FetchLLMs(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, hits, "refresh must bypass the cache")
}

func TestClient_MissingObject(t *testing.T) {
	hits := 0
	client := newTestClient(t, serveObject(t, "/which-llm/v1/llms.json", nil, &hits))

	_, err := client.FetchMedia(context.Background(), "text_to_video", false)
	assert.Error(t, err)
}

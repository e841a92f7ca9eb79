package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"which-llm/core/profile"
	"which-llm/feature/aa"
	"which-llm/feature/hosted"
	"which-llm/feature/modelsdev"
)

// dataSource abstracts over hosted snapshots and the live APIs so
// commands never care which one they read from.
type dataSource interface {
	FetchLLMs(ctx context.Context, refresh bool) ([]aa.Model, error)
	FetchCatalog(ctx context.Context, refresh bool) (modelsdev.Catalog, error)
	FetchMedia(ctx context.Context, table string, refresh bool) ([]aa.MediaModel, error)
}

// apiSource reads from the live APIs. Requires a credential.
type apiSource struct {
	llms    *aa.Client
	catalog *modelsdev.Client
}

func (s apiSource) FetchLLMs(ctx context.Context, refresh bool) ([]aa.Model, error) {
	return s.llms.FetchLLMs(ctx, refresh)
}

func (s apiSource) FetchCatalog(ctx context.Context, refresh bool) (modelsdev.Catalog, error) {
	return s.catalog.Fetch(ctx, refresh)
}

func (s apiSource) FetchMedia(ctx context.Context, table string, refresh bool) ([]aa.MediaModel, error) {
	endpoint, ok := aa.MediaEndpoints[table]
	if !ok {
		return nil, fmt.Errorf("no media endpoint for table %s", table)
	}
	return s.llms.FetchMedia(ctx, endpoint, refresh)
}

// newSource picks the data source for this invocation. Hosted snapshots
// are the default, falling back to the live APIs when a credential is
// configured; --use-api skips the snapshots entirely.
func (e *env) newSource() (dataSource, error) {
	if useAPIFlag {
		return e.newAPISource()
	}

	snapshots, err := hosted.NewClient(e.cfg.Hosted, e.cache, e.logger)
	if err != nil {
		return nil, err
	}
	return &fallbackSource{snapshots: snapshots, e: e}, nil
}

// newAPISource builds the live-API source, resolving a credential
// through the profile store.
func (e *env) newAPISource() (dataSource, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	store, err := profile.Open(dir)
	if err != nil {
		return nil, err
	}
	key, err := store.ResolveAPIKey(profileFlag)
	if err != nil {
		return nil, err
	}

	return apiSource{
		llms:    aa.NewClient(e.cfg.API, key, e.cache, e.logger),
		catalog: modelsdev.NewClient(e.cfg.Catalog, e.cache, e.logger),
	}, nil
}

// fallbackSource reads hosted snapshots first. When a snapshot fetch
// fails and a credential is configured it warns and retries against the
// live APIs; without a credential the snapshot error stands.
type fallbackSource struct {
	snapshots dataSource
	e         *env
	api       dataSource
}

// apiFallback returns the live-API source for a failed snapshot fetch,
// or nil when no credential is available.
func (s *fallbackSource) apiFallback(hostedErr error) dataSource {
	if s.api == nil {
		api, err := s.e.newAPISource()
		if err != nil {
			return nil
		}
		s.api = api
	}
	s.e.logger.Warn("hosted snapshot unavailable, falling back to the live API",
		zap.Error(hostedErr))
	return s.api
}

func (s *fallbackSource) FetchLLMs(ctx context.Context, refresh bool) ([]aa.Model, error) {
	models, err := s.snapshots.FetchLLMs(ctx, refresh)
	if err == nil {
		return models, nil
	}
	api := s.apiFallback(err)
	if api == nil {
		return nil, err
	}
	return api.FetchLLMs(ctx, refresh)
}

func (s *fallbackSource) FetchCatalog(ctx context.Context, refresh bool) (modelsdev.Catalog, error) {
	catalog, err := s.snapshots.FetchCatalog(ctx, refresh)
	if err == nil {
		return catalog, nil
	}
	api := s.apiFallback(err)
	if api == nil {
		return nil, err
	}
	return api.FetchCatalog(ctx, refresh)
}

func (s *fallbackSource) FetchMedia(ctx context.Context, table string, refresh bool) ([]aa.MediaModel, error) {
	models, err := s.snapshots.FetchMedia(ctx, table, refresh)
	if err == nil {
		return models, nil
	}
	api := s.apiFallback(err)
	if api == nil {
		return nil, err
	}
	return api.FetchMedia(ctx, table, refresh)
}

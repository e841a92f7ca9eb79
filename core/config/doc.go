// Package config provides configuration management for which-llm.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Cache: Local response cache location
//   - API: Artificial Analysis endpoint and timeouts
//   - Catalog: models.dev catalog location
//   - Hosted: Snapshot bucket coordinates
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Cache.Dir)
//
// Environment variables map to nested keys with underscores, so
// CACHE_DIR overrides cache.dir and API_TIMEOUT_SECONDS overrides
// api.timeout_seconds.
package config

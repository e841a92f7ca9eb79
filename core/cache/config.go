package cache

// Config holds configuration for the local data directory.
type Config struct {
	// Dir is the directory holding cached responses and Parquet tables.
	// Empty means the platform user cache directory plus "which-llm".
	Dir string `mapstructure:"dir" default:""`
}

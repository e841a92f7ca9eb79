package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTTL is the maximum age of a cached API response.
const DefaultTTL = time.Hour

// entry wraps a cached payload with its capture timestamp.
type entry struct {
	Data     json.RawMessage `json:"data"`
	CachedAt time.Time       `json:"cached_at"`
}

// Cache is a file-backed store for API responses and Parquet tables.
// Each cache key maps to one JSON file under the base directory.
type Cache struct {
	baseDir string
	ttl     time.Duration
}

// New creates a cache rooted at cfg.Dir, creating the directory if needed.
// An empty Dir resolves to the platform user cache directory.
func New(cfg Config) (*Cache, error) {
	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("cache: could not determine cache directory: %w", err)
		}
		dir = filepath.Join(base, "which-llm")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}

	return &Cache{baseDir: dir, ttl: DefaultTTL}, nil
}

// BaseDir returns the cache base directory.
func (c *Cache) BaseDir() string {
	return c.baseDir
}

// ParquetPath returns the path of the Parquet file backing a logical table.
func (c *Cache) ParquetPath(name string) string {
	return filepath.Join(c.baseDir, name+".parquet")
}

// Key derives a stable cache key from endpoint identity and ordered
// parameter pairs. Identical inputs always produce identical keys.
func Key(endpoint string, params [][2]string) string {
	h := sha256.New()
	h.Write([]byte(endpoint))
	for _, p := range params {
		h.Write([]byte(p[0]))
		h.Write([]byte(p[1]))
	}
	sum := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s-%s", strings.ReplaceAll(endpoint, "/", "-"), sum[:16])
}

// Get returns the cached payload for key if present and younger than the
// TTL. Expired entries are deleted on read. Unreadable or corrupt entries
// are treated as misses, never as errors.
func (c *Cache) Get(key string) ([]byte, bool) {
	path := filepath.Join(c.baseDir, key+".json")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(content, &e); err != nil {
		return nil, false
	}

	if time.Since(e.CachedAt) >= c.ttl {
		_ = os.Remove(path)
		return nil, false
	}

	return e.Data, true
}

// Set stores the payload under key with the current timestamp, overwriting
// any prior entry.
func (c *Cache) Set(key string, payload []byte) error {
	e := entry{Data: payload, CachedAt: time.Now().UTC()}

	content, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("cache: encode entry %s: %w", key, err)
	}

	path := filepath.Join(c.baseDir, key+".json")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("cache: write entry %s: %w", key, err)
	}
	return nil
}

// Clear removes all cached payloads and Parquet tables.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		return fmt.Errorf("cache: read directory: %w", err)
	}

	for _, ent := range entries {
		ext := filepath.Ext(ent.Name())
		if ext == ".json" || ext == ".parquet" {
			if err := os.Remove(filepath.Join(c.baseDir, ent.Name())); err != nil {
				return fmt.Errorf("cache: remove %s: %w", ent.Name(), err)
			}
		}
	}
	return nil
}

// Stats reports entry count and total byte size of the cache directory.
func (c *Cache) Stats() (Stats, error) {
	stats := Stats{Location: c.baseDir}

	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		return stats, fmt.Errorf("cache: read directory: %w", err)
	}

	for _, ent := range entries {
		ext := filepath.Ext(ent.Name())
		if ext != ".json" && ext != ".parquet" {
			continue
		}
		info, err := ent.Info()
		if err != nil {
			continue
		}
		stats.EntryCount++
		stats.TotalSize += info.Size()
	}
	return stats, nil
}

// Stats describes the cache contents.
type Stats struct {
	Location   string
	EntryCount int
	TotalSize  int64
}

// SizeHuman renders the total size as a human-readable string.
func (s Stats) SizeHuman() string {
	switch {
	case s.TotalSize < 1024:
		return fmt.Sprintf("%d B", s.TotalSize)
	case s.TotalSize < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(s.TotalSize)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(s.TotalSize)/(1024*1024))
	}
}

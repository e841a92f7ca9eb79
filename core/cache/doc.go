// Package cache provides file-based caching for API responses.
//
// Each entry is one JSON file named after its cache key, wrapping the raw
// payload with a capture timestamp. Reads are TTL-checked (one hour);
// expired entries are deleted as a side effect of the failed read rather
// than swept proactively. Corrupt entries count as misses.
//
// The same directory also holds the Parquet files produced by the columnar
// writer, so Clear and Stats cover both.
package cache

package duck

import (
	"database/sql"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// OpenFunc opens a database handle for one write or query pass.
// Overridable in tests so they do not need a cgo DuckDB build.
type OpenFunc func() (*sql.DB, error)

// openMemory opens a fresh in-memory DuckDB instance. No state survives
// across invocations; Parquet files are the only persistence.
func openMemory() (*sql.DB, error) {
	return sql.Open("duckdb", "")
}

// quotePath escapes a filesystem path for use inside a SQL string literal.
func quotePath(path string) string {
	return strings.ReplaceAll(strings.ReplaceAll(path, "\\", "/"), "'", "''")
}

// Package schema is the single source of truth for table definitions.
//
// Every logical table the tool produces or queries is declared here once:
// the unified llms table, the five media-category tables (one shared
// column set), and the two internal raw source tables kept for debugging.
// The columnar writer derives its DDL and INSERT statements from these
// definitions and the query engine derives alias resolution and the
// user-facing table listing from them.
package schema

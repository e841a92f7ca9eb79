// Package duck is the analytic storage layer, built on an embedded DuckDB.
//
// It has two halves. The Writer turns flat rows into Parquet files: each
// write creates the table in a fresh in-memory instance, bulk-appends all
// rows in one transaction, and exports with COPY ... (FORMAT PARQUET) to a
// temporary file that is renamed into place, so readers never observe a
// half-written table. The Engine answers ad-hoc SQL: known table names are
// registered as views over read_parquet on a fresh instance per call, a
// referenced table without a backing file fails before execution with the
// command that produces it, and results come back as string-rendered rows.
//
// The Parquet files are plain, standard Parquet; any external analytic
// tool can open them directly.
package duck

package duck

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"which-llm/core/schema"

	"go.uber.org/zap"
)

// Writer serializes flat rows into Parquet files, one file per logical
// table. Each write builds the full table in an in-memory DuckDB instance
// and exports it in a single COPY, so the target is replaced wholesale.
type Writer struct {
	logger *zap.Logger
	open   OpenFunc
}

// NewWriter creates a Parquet writer.
func NewWriter(logger *zap.Logger) *Writer {
	return &Writer{logger: logger, open: openMemory}
}

// WriteTable writes rows to path under the table's schema. Every row must
// have exactly one value per column; optional columns take nil. The export
// goes to a temporary file renamed onto path on success, so a reader never
// observes a truncated file.
func (w *Writer) WriteTable(ctx context.Context, table schema.Table, rows [][]any, path string) error {
	for i, row := range rows {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("write %s: row %d has %d values, schema has %d columns",
				table.Name, i, len(row), len(table.Columns))
		}
	}

	db, err := w.open()
	if err != nil {
		return fmt.Errorf("write %s: open engine: %w", table.Name, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, table.CreateSQL()); err != nil {
		return fmt.Errorf("write %s: create table: %w", table.Name, err)
	}

	if err := w.appendRows(ctx, db, table, rows); err != nil {
		return err
	}

	tmp := path + ".tmp"
	copySQL := fmt.Sprintf("COPY %s TO '%s' (FORMAT PARQUET)", table.Name, quotePath(tmp))
	if _, err := db.ExecContext(ctx, copySQL); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: export parquet: %w", table.Name, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: replace %s: %w", table.Name, path, err)
	}

	w.logger.Debug("Wrote parquet table",
		zap.String("table", table.Name),
		zap.Int("rows", len(rows)),
		zap.String("path", path))
	return nil
}

// appendRows bulk-inserts all rows inside one transaction.
func (w *Writer) appendRows(ctx context.Context, db *sql.DB, table schema.Table, rows [][]any) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write %s: begin append: %w", table.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx, table.InsertSQL())
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("write %s: prepare append: %w", table.Name, err)
	}

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("write %s: append row %d: %w", table.Name, i, err)
		}
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("write %s: close append: %w", table.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write %s: commit append: %w", table.Name, err)
	}
	return nil
}

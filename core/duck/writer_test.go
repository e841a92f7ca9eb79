package duck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"which-llm/core/schema"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newMockWriter returns a Writer whose engine is a sqlmock database, so
// the create/append/export sequencing is verifiable without a cgo DuckDB
// build.
func newMockWriter(t *testing.T) (*Writer, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	w := NewWriter(zap.NewNop())
	w.open = func() (*sql.DB, error) { return db, nil }
	return w, mock
}

func mediaRow(id string) []any {
	elo := 1246.0
	rank := int32(1)
	return []any{id, "GPT Image", "gpt-image", "OpenAI", &elo, &rank, nil}
}

func TestWriter_WriteTable(t *testing.T) {
	w, mock := newMockWriter(t)
	table := schema.TextToImage

	dir := t.TempDir()
	path := filepath.Join(dir, table.File)

	mock.ExpectExec(table.CreateSQL()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(table.InsertSQL())
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	copySQL := fmt.Sprintf("COPY %s TO '%s' (FORMAT PARQUET)", table.Name, quotePath(path+".tmp"))
	mock.ExpectExec(copySQL).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectClose()

	// The mocked COPY writes nothing, so stand in for its output.
	require.NoError(t, os.WriteFile(path+".tmp", []byte("parquet"), 0o644))

	rows := [][]any{mediaRow("a"), mediaRow("b")}
	require.NoError(t, w.WriteTable(context.Background(), table, rows, path))

	assert.NoError(t, mock.ExpectationsWereMet())

	// The temp file was renamed onto the target.
	_, err := os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_WriteTableEmpty(t *testing.T) {
	w, mock := newMockWriter(t)
	table := schema.TextToImage

	dir := t.TempDir()
	path := filepath.Join(dir, table.File)

	mock.ExpectExec(table.CreateSQL()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectPrepare(table.InsertSQL())
	mock.ExpectCommit()
	copySQL := fmt.Sprintf("COPY %s TO '%s' (FORMAT PARQUET)", table.Name, quotePath(path+".tmp"))
	mock.ExpectExec(copySQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	require.NoError(t, os.WriteFile(path+".tmp", []byte("parquet"), 0o644))

	require.NoError(t, w.WriteTable(context.Background(), table, nil, path))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriter_RowWidthMismatch(t *testing.T) {
	w, _ := newMockWriter(t)

	err := w.WriteTable(context.Background(), schema.TextToImage, [][]any{{"only-one"}}, "unused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema has")
}

func TestWriter_CreateFails(t *testing.T) {
	w, mock := newMockWriter(t)
	table := schema.TextToImage

	mock.ExpectExec(table.CreateSQL()).WillReturnError(errors.New("boom"))
	mock.ExpectClose()

	err := w.WriteTable(context.Background(), table, nil, filepath.Join(t.TempDir(), table.File))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create table")
}

func TestWriter_AppendFails(t *testing.T) {
	w, mock := newMockWriter(t)
	table := schema.TextToImage

	mock.ExpectExec(table.CreateSQL()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(table.InsertSQL())
	prep.ExpectExec().WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()
	mock.ExpectClose()

	err := w.WriteTable(context.Background(), table, [][]any{mediaRow("a")},
		filepath.Join(t.TempDir(), table.File))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append row 0")
}

func TestWriter_ExportFailureLeavesNoTarget(t *testing.T) {
	w, mock := newMockWriter(t)
	table := schema.TextToImage

	dir := t.TempDir()
	path := filepath.Join(dir, table.File)

	mock.ExpectExec(table.CreateSQL()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectPrepare(table.InsertSQL())
	mock.ExpectCommit()
	copySQL := fmt.Sprintf("COPY %s TO '%s' (FORMAT PARQUET)", table.Name, quotePath(path+".tmp"))
	mock.ExpectExec(copySQL).WillReturnError(errors.New("disk full"))
	mock.ExpectClose()

	err := w.WriteTable(context.Background(), table, nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export parquet")

	// Neither a target nor a leftover temp file is observable.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

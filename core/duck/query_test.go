package duck

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("dummy"), 0o644))
}

func TestReferencedTables(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{"SimpleFrom", "SELECT * FROM llms WHERE intelligence > 40", []string{"llms"}},
		{"CaseInsensitive", "select name from LLMS", []string{"llms"}},
		{"Join", "SELECT * FROM llms JOIN benchmarks ON llms.id = benchmarks.id", []string{"llms", "benchmarks"}},
		{"CommaList", "SELECT * FROM llms, models_dev", []string{"llms", "models_dev"}},
		{"EndOfQuery", "SELECT COUNT(*) FROM text_to_image", []string{"text_to_image"}},
		{"ColumnNameNotMatched", "SELECT llms FROM other_table", nil},
		{"SubstringColumnNotMatched", "SELECT llms_count FROM somewhere", nil},
		{"StringLiteralNotMatched", "SELECT * FROM benchmarks WHERE name = 'best llms ever'", []string{"benchmarks"}},
		{"LiteralWithFromNotMatched", "SELECT 'select * from llms'", nil},
		{"UnknownTable", "SELECT * FROM nope", nil},
		{"Newlines", "SELECT *\nFROM\nllms", []string{"llms"}},
		{"QuotedIdentifierSkipped", `SELECT "llms" FROM benchmarks`, []string{"benchmarks"}},
		{"EscapedQuoteInLiteral", "SELECT * FROM llms WHERE name = 'it''s from llms'", []string{"llms"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, referencedTables(tt.sql))
		})
	}
}

func TestEngine_MissingTableFailsBeforeExecution(t *testing.T) {
	dir := t.TempDir()
	e := NewEngine(dir)
	e.open = func() (*sql.DB, error) {
		t.Fatal("engine must not open before the missing-table check")
		return nil, nil
	}

	_, err := e.Execute(context.Background(), "SELECT * FROM llms")

	var missing *MissingTableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "llms", missing.Table)
	assert.Equal(t, "which-llm llms", missing.Command)
	assert.Contains(t, err.Error(), "Run 'which-llm llms' first")
}

func TestEngine_MissingMediaTableNamesItsCommand(t *testing.T) {
	e := NewEngine(t.TempDir())

	_, err := e.Execute(context.Background(), "SELECT * FROM text_to_video")

	var missing *MissingTableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "which-llm text-to-video", missing.Command)
}

func TestEngine_InternalTableProducedByLlms(t *testing.T) {
	e := NewEngine(t.TempDir())

	_, err := e.Execute(context.Background(), "SELECT * FROM models_dev")

	var missing *MissingTableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "models_dev", missing.Table)
	assert.Equal(t, "which-llm llms", missing.Command)
}

func TestEngine_OpenFailureIsExecError(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "llms.parquet")

	e := NewEngine(dir)
	e.open = func() (*sql.DB, error) { return nil, errors.New("no engine") }

	_, err := e.Execute(context.Background(), "SELECT * FROM llms")

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, CategoryExec, qerr.Category)
}

func TestEngine_ListTables(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "llms.parquet")

	e := NewEngine(dir)
	infos := e.ListTables()

	// Six user-facing tables; internal raw tables stay hidden.
	require.Len(t, infos, 6)
	for _, info := range infos {
		assert.NotEqual(t, "benchmarks", info.Name)
		assert.NotEqual(t, "models_dev", info.Name)
	}

	assert.Equal(t, "llms", infos[0].Name)
	assert.True(t, infos[0].Exists)
	assert.False(t, infos[1].Exists)
	assert.NotEmpty(t, infos[0].Columns)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"Syntax", errors.New(`Parser Error: syntax error at or near "SELEC"`), CategorySyntax},
		{"MissingColumn", errors.New(`Binder Error: Referenced column "intellgence" not found`), CategoryMissing},
		{"MissingTable", errors.New(`Catalog Error: Table with name foo does not exist`), CategoryMissing},
		{"Other", errors.New("Out of Memory Error"), CategoryExec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err).Category)
		})
	}
}

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "", renderValue(nil))
	assert.Equal(t, "true", renderValue(true))
	assert.Equal(t, "false", renderValue(false))
	assert.Equal(t, "42", renderValue(int64(42)))
	assert.Equal(t, "42", renderValue(int32(42)))
	assert.Equal(t, "62.90", renderValue(62.9))
	assert.Equal(t, "0.50", renderValue(float32(0.5)))
	assert.Equal(t, "o3-mini", renderValue("o3-mini"))
	assert.Equal(t, "bytes", renderValue([]byte("bytes")))
}

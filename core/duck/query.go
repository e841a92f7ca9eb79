package duck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"which-llm/core/schema"
)

// ErrorCategory classifies query failures for user-facing reporting.
type ErrorCategory int

const (
	// CategorySyntax marks malformed SQL.
	CategorySyntax ErrorCategory = iota
	// CategoryMissing marks an unresolved table or column identifier.
	CategoryMissing
	// CategoryExec marks any other execution failure.
	CategoryExec
)

// QueryError is a failed query with a user-readable message.
type QueryError struct {
	Category ErrorCategory
	Message  string
}

func (e *QueryError) Error() string {
	return e.Message
}

// MissingTableError reports a referenced table whose Parquet file does not
// exist yet. Detected before any execution attempt.
type MissingTableError struct {
	Table   string
	Command string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("Table '%s' not found. Run '%s' first to fetch and cache the data.",
		e.Table, e.Command)
}

// Result holds the outcome of a query: column names and string-rendered
// rows in the engine's native order.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// Engine executes ad-hoc SQL against the Parquet tables in a data
// directory. Each call runs on a fresh in-memory DuckDB instance; every
// known table with a backing file is registered as a view over
// read_parquet, so the user's SQL runs unmodified and identifiers inside
// string literals or column names can never be corrupted.
type Engine struct {
	dataDir string
	open    OpenFunc
}

// NewEngine creates a query engine over dataDir.
func NewEngine(dataDir string) *Engine {
	return &Engine{dataDir: dataDir, open: openMemory}
}

// tablePath returns the Parquet path backing a table.
func (e *Engine) tablePath(t schema.Table) string {
	return filepath.Join(e.dataDir, t.File)
}

// producerFor names the command that creates a table's backing file. The
// internal raw tables are written as a side effect of the llms refresh.
func producerFor(t schema.Table) string {
	if t.Internal() {
		return schema.LLMs.Command
	}
	return t.Command
}

// Execute runs sqlText and returns rendered results.
func (e *Engine) Execute(ctx context.Context, sqlText string) (*Result, error) {
	for _, name := range referencedTables(sqlText) {
		t, _ := schema.Lookup(name)
		if _, err := os.Stat(e.tablePath(t)); err != nil {
			return nil, &MissingTableError{Table: name, Command: producerFor(t)}
		}
	}

	db, err := e.open()
	if err != nil {
		return nil, &QueryError{CategoryExec, fmt.Sprintf("could not start query engine: %v", err)}
	}
	defer db.Close()

	for _, t := range schema.All {
		path := e.tablePath(t)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		view := fmt.Sprintf("CREATE VIEW %s AS SELECT * FROM read_parquet('%s')",
			t.Name, quotePath(path))
		if _, err := db.ExecContext(ctx, view); err != nil {
			return nil, &QueryError{CategoryExec, fmt.Sprintf("could not register table %s: %v", t.Name, err)}
		}
	}

	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{CategoryExec, fmt.Sprintf("could not read columns: %v", err)}
	}

	result := &Result{Columns: cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{CategoryExec, fmt.Sprintf("could not read row: %v", err)}
		}
		rendered := make([]string, len(cols))
		for i, v := range values {
			rendered[i] = renderValue(v)
		}
		result.Rows = append(result.Rows, rendered)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return result, nil
}

// classify maps an engine error onto the user-facing error taxonomy.
func classify(err error) *QueryError {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "syntax error") || strings.Contains(msg, "Parser Error"):
		return &QueryError{CategorySyntax, fmt.Sprintf("SQL syntax error: %v", err)}
	case strings.Contains(lower, "does not exist") || strings.Contains(lower, "not found") ||
		strings.Contains(msg, "Binder Error"):
		return &QueryError{CategoryMissing, fmt.Sprintf(
			"Table or column not found. Use 'which-llm query --tables' to see available tables and columns.\nError: %v", err)}
	default:
		return &QueryError{CategoryExec, fmt.Sprintf("SQL error: %v", err)}
	}
}

// renderValue converts an engine value to its display string. Floats use a
// fixed two-decimal precision; NULL renders as the empty string.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", val)
	case int8:
		return fmt.Sprintf("%d", val)
	case int16:
		return fmt.Sprintf("%d", val)
	case int32:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case uint8:
		return fmt.Sprintf("%d", val)
	case uint16:
		return fmt.Sprintf("%d", val)
	case uint32:
		return fmt.Sprintf("%d", val)
	case uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return fmt.Sprintf("%.2f", val)
	case float64:
		return fmt.Sprintf("%.2f", val)
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// referencedTables returns the known table names referenced in sqlText. A
// table is referenced when it appears as a whole token whose previous
// significant token is FROM, JOIN, or a comma, so substrings inside column
// names or string literals never count.
func referencedTables(sqlText string) []string {
	tokens := tokenize(sqlText)

	var refs []string
	seen := make(map[string]bool)
	for i, tok := range tokens {
		if i == 0 {
			continue
		}
		prev := tokens[i-1]
		if prev != "from" && prev != "join" && prev != "," {
			continue
		}
		if _, ok := schema.Lookup(tok); ok && !seen[tok] {
			seen[tok] = true
			refs = append(refs, tok)
		}
	}
	return refs
}

// tokenize splits SQL into lower-cased word and punctuation tokens,
// skipping the contents of single-quoted string literals and double-quoted
// identifiers.
func tokenize(sqlText string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, strings.ToLower(word.String()))
			word.Reset()
		}
	}

	runes := []rune(sqlText)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'' || r == '"':
			flush()
			quote := r
			i++
			for i < len(runes) {
				if runes[i] == quote {
					// Doubled quote is an escaped quote inside the literal.
					if i+1 < len(runes) && runes[i+1] == quote {
						i += 2
						continue
					}
					break
				}
				i++
			}
			tokens = append(tokens, "'*'")
		case r == '_' || r == '.' || (r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			word.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}

// TableInfo describes one user-facing table for listings.
type TableInfo struct {
	Name    string
	Exists  bool
	Columns []schema.Column
}

// ListTables reports the user-facing tables, whether each has a backing
// file, and their column schemas.
func (e *Engine) ListTables() []TableInfo {
	var infos []TableInfo
	for _, t := range schema.All {
		if t.Internal() {
			continue
		}
		_, err := os.Stat(e.tablePath(t))
		infos = append(infos, TableInfo{
			Name:    t.Name,
			Exists:  err == nil,
			Columns: t.Columns,
		})
	}
	return infos
}

package schema

import (
	"fmt"
	"strings"
)

// Column defines one column of a logical table.
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// Table defines a logical table bound to one Parquet file.
type Table struct {
	// Name is the table name as used in SQL queries.
	Name string
	// Command is the CLI command that produces the table, shown in
	// missing-table errors. Empty for internal tables.
	Command string
	// File is the Parquet filename under the data directory.
	File string
	// Columns is the ordered column list.
	Columns []Column
}

// Internal reports whether the table is for debugging only and should be
// hidden from user-facing table listings.
func (t Table) Internal() bool {
	return t.Command == ""
}

// CreateSQL generates the CREATE TABLE statement for the table.
func (t Table) CreateSQL() string {
	cols := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		notNull := ""
		if !col.Nullable {
			notNull = " NOT NULL"
		}
		cols[i] = fmt.Sprintf("%s %s%s", col.Name, col.Type, notNull)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n    %s\n)", t.Name, strings.Join(cols, ",\n    "))
}

// InsertSQL generates a positional-placeholder INSERT statement.
func (t Table) InsertSQL() string {
	names := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(names, ", "), strings.Join(marks, ", "))
}

// mediaColumns is shared by all five media tables.
var mediaColumns = []Column{
	{Name: "id", Type: "VARCHAR"},
	{Name: "name", Type: "VARCHAR"},
	{Name: "slug", Type: "VARCHAR"},
	{Name: "creator", Type: "VARCHAR"},
	{Name: "elo", Type: "DOUBLE", Nullable: true},
	{Name: "rank", Type: "INTEGER", Nullable: true},
	{Name: "release_date", Type: "VARCHAR", Nullable: true},
}

// LLMs is the unified model table combining both data sources.
var LLMs = Table{
	Name:    "llms",
	Command: "which-llm llms",
	File:    "llms.parquet",
	Columns: []Column{
		{Name: "id", Type: "VARCHAR"},
		{Name: "name", Type: "VARCHAR"},
		{Name: "slug", Type: "VARCHAR"},
		{Name: "creator", Type: "VARCHAR"},
		{Name: "creator_slug", Type: "VARCHAR", Nullable: true},
		{Name: "release_date", Type: "VARCHAR", Nullable: true},
		{Name: "intelligence", Type: "DOUBLE", Nullable: true},
		{Name: "coding", Type: "DOUBLE", Nullable: true},
		{Name: "math", Type: "DOUBLE", Nullable: true},
		{Name: "mmlu_pro", Type: "DOUBLE", Nullable: true},
		{Name: "gpqa", Type: "DOUBLE", Nullable: true},
		{Name: "hle", Type: "DOUBLE", Nullable: true},
		{Name: "livecodebench", Type: "DOUBLE", Nullable: true},
		{Name: "scicode", Type: "DOUBLE", Nullable: true},
		{Name: "math_500", Type: "DOUBLE", Nullable: true},
		{Name: "aime", Type: "DOUBLE", Nullable: true},
		{Name: "input_price", Type: "DOUBLE", Nullable: true},
		{Name: "output_price", Type: "DOUBLE", Nullable: true},
		{Name: "price", Type: "DOUBLE", Nullable: true},
		{Name: "tps", Type: "DOUBLE", Nullable: true},
		{Name: "latency", Type: "DOUBLE", Nullable: true},
		{Name: "reasoning", Type: "BOOLEAN", Nullable: true},
		{Name: "tool_call", Type: "BOOLEAN", Nullable: true},
		{Name: "structured_output", Type: "BOOLEAN", Nullable: true},
		{Name: "attachment", Type: "BOOLEAN", Nullable: true},
		{Name: "temperature", Type: "BOOLEAN", Nullable: true},
		{Name: "context_window", Type: "BIGINT", Nullable: true},
		{Name: "max_input_tokens", Type: "BIGINT", Nullable: true},
		{Name: "max_output_tokens", Type: "BIGINT", Nullable: true},
		{Name: "input_modalities", Type: "VARCHAR", Nullable: true},
		{Name: "output_modalities", Type: "VARCHAR", Nullable: true},
		{Name: "knowledge_cutoff", Type: "VARCHAR", Nullable: true},
		{Name: "open_weights", Type: "BOOLEAN", Nullable: true},
		{Name: "last_updated", Type: "VARCHAR", Nullable: true},
		{Name: "models_dev_matched", Type: "BOOLEAN"},
	},
}

// The five media-category tables share one schema.
var (
	TextToImage  = Table{Name: "text_to_image", Command: "which-llm text-to-image", File: "text_to_image.parquet", Columns: mediaColumns}
	ImageEditing = Table{Name: "image_editing", Command: "which-llm image-editing", File: "image_editing.parquet", Columns: mediaColumns}
	TextToSpeech = Table{Name: "text_to_speech", Command: "which-llm text-to-speech", File: "text_to_speech.parquet", Columns: mediaColumns}
	TextToVideo  = Table{Name: "text_to_video", Command: "which-llm text-to-video", File: "text_to_video.parquet", Columns: mediaColumns}
	ImageToVideo = Table{Name: "image_to_video", Command: "which-llm image-to-video", File: "image_to_video.parquet", Columns: mediaColumns}
)

// Benchmarks holds raw Provider-A rows before merging. Internal.
var Benchmarks = Table{
	Name: "benchmarks",
	File: "benchmarks.parquet",
	Columns: []Column{
		{Name: "id", Type: "VARCHAR"},
		{Name: "name", Type: "VARCHAR"},
		{Name: "slug", Type: "VARCHAR"},
		{Name: "creator", Type: "VARCHAR"},
		{Name: "creator_slug", Type: "VARCHAR", Nullable: true},
		{Name: "release_date", Type: "VARCHAR", Nullable: true},
		{Name: "intelligence", Type: "DOUBLE", Nullable: true},
		{Name: "coding", Type: "DOUBLE", Nullable: true},
		{Name: "math", Type: "DOUBLE", Nullable: true},
		{Name: "mmlu_pro", Type: "DOUBLE", Nullable: true},
		{Name: "gpqa", Type: "DOUBLE", Nullable: true},
		{Name: "hle", Type: "DOUBLE", Nullable: true},
		{Name: "livecodebench", Type: "DOUBLE", Nullable: true},
		{Name: "scicode", Type: "DOUBLE", Nullable: true},
		{Name: "math_500", Type: "DOUBLE", Nullable: true},
		{Name: "aime", Type: "DOUBLE", Nullable: true},
		{Name: "input_price", Type: "DOUBLE", Nullable: true},
		{Name: "output_price", Type: "DOUBLE", Nullable: true},
		{Name: "price", Type: "DOUBLE", Nullable: true},
		{Name: "tps", Type: "DOUBLE", Nullable: true},
		{Name: "latency", Type: "DOUBLE", Nullable: true},
	},
}

// ModelsDev holds raw Provider-B rows before merging. Internal.
var ModelsDev = Table{
	Name: "models_dev",
	File: "models_dev.parquet",
	Columns: []Column{
		{Name: "provider_id", Type: "VARCHAR"},
		{Name: "provider_name", Type: "VARCHAR"},
		{Name: "provider_env", Type: "VARCHAR", Nullable: true},
		{Name: "provider_npm", Type: "VARCHAR", Nullable: true},
		{Name: "provider_api", Type: "VARCHAR", Nullable: true},
		{Name: "provider_doc", Type: "VARCHAR", Nullable: true},
		{Name: "model_id", Type: "VARCHAR"},
		{Name: "model_name", Type: "VARCHAR"},
		{Name: "family", Type: "VARCHAR", Nullable: true},
		{Name: "attachment", Type: "BOOLEAN", Nullable: true},
		{Name: "reasoning", Type: "BOOLEAN", Nullable: true},
		{Name: "tool_call", Type: "BOOLEAN", Nullable: true},
		{Name: "structured_output", Type: "BOOLEAN", Nullable: true},
		{Name: "temperature", Type: "BOOLEAN", Nullable: true},
		{Name: "knowledge", Type: "VARCHAR", Nullable: true},
		{Name: "release_date", Type: "VARCHAR", Nullable: true},
		{Name: "last_updated", Type: "VARCHAR", Nullable: true},
		{Name: "open_weights", Type: "BOOLEAN", Nullable: true},
		{Name: "status", Type: "VARCHAR", Nullable: true},
		{Name: "context_window", Type: "BIGINT", Nullable: true},
		{Name: "max_input_tokens", Type: "BIGINT", Nullable: true},
		{Name: "max_output_tokens", Type: "BIGINT", Nullable: true},
		{Name: "cost_input", Type: "DOUBLE", Nullable: true},
		{Name: "cost_output", Type: "DOUBLE", Nullable: true},
		{Name: "cost_cache_read", Type: "DOUBLE", Nullable: true},
		{Name: "cost_cache_write", Type: "DOUBLE", Nullable: true},
		{Name: "input_modalities", Type: "VARCHAR", Nullable: true},
		{Name: "output_modalities", Type: "VARCHAR", Nullable: true},
	},
}

// All lists every table the query engine can resolve, user-facing first.
var All = []Table{
	LLMs,
	TextToImage,
	ImageEditing,
	TextToSpeech,
	TextToVideo,
	ImageToVideo,
	Benchmarks,
	ModelsDev,
}

// Lookup returns the table definition for name, if known.
func Lookup(name string) (Table, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

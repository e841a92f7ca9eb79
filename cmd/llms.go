package cmd

import (
	"context"
	"fmt"

	"which-llm/core/duck"
	"which-llm/core/output"
	"which-llm/core/schema"
	"which-llm/feature/aa"
	"which-llm/feature/merge"
	"which-llm/feature/modelsdev"

	"github.com/spf13/cobra"
)

const attribution = "Data: Artificial Analysis (https://artificialanalysis.ai) and models.dev (https://models.dev)"

const queryHint = `Tip: which-llm query "SELECT name, intelligence, input_price FROM llms ORDER BY intelligence DESC LIMIT 10"`

// llmsCmd represents the llms command
var llmsCmd = &cobra.Command{
	Use:   "llms [query]",
	Short: "Fetch and list AI language models",
	Long: `Fetches benchmark and capability data for all known language models,
merges the two sources, caches the result as Parquet tables and prints
a ranked listing. An optional query filters by model or creator name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := newEnv()
		if err != nil {
			return err
		}
		src, err := e.newSource()
		if err != nil {
			return err
		}

		unified, err := loadUnified(ctx, e, src, true)
		if err != nil {
			return err
		}

		list := unified
		if len(args) == 1 {
			list = merge.Search(unified, args[0])
			if len(list) == 0 {
				fmt.Printf("No models matching %q.\n", args[0])
				return nil
			}
		}

		headers, rows := llmListing(list)
		fmt.Println(output.Render(headers, rows, e.format))

		if e.format == output.Table && !quietFlag {
			fmt.Println(attribution)
			fmt.Println(queryHint)
		}
		return nil
	},
}

// loadUnified fetches both sources and merges them. With persist set it
// also rewrites the Parquet tables backing the query engine.
func loadUnified(ctx context.Context, e *env, src dataSource, persist bool) ([]merge.UnifiedModel, error) {
	models, err := src.FetchLLMs(ctx, refreshFlag)
	if err != nil {
		return nil, err
	}
	catalog, err := src.FetchCatalog(ctx, refreshFlag)
	if err != nil {
		return nil, err
	}

	unified := merge.MergeModels(models, catalog, e.logger)

	if persist {
		writer := duck.NewWriter(e.logger)
		exports := []struct {
			table schema.Table
			rows  [][]any
		}{
			{schema.LLMs, merge.Rows(unified)},
			{schema.Benchmarks, aa.BenchmarkRows(models)},
			{schema.ModelsDev, modelsdev.Flatten(catalog)},
		}
		for _, ex := range exports {
			path := e.cache.ParquetPath(ex.table.Name)
			if err := writer.WriteTable(ctx, ex.table, ex.rows, path); err != nil {
				return nil, err
			}
		}
	}

	return unified, nil
}

// llmListing builds the default model listing.
func llmListing(models []merge.UnifiedModel) ([]string, [][]string) {
	headers := []string{"Name", "Creator", "Intelligence", "In $/M", "Out $/M", "Tok/s", "Context"}

	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{
			m.Name,
			m.Creator,
			fmtFloat(m.Intelligence),
			fmtFloat(m.InputPrice),
			fmtFloat(m.OutputPrice),
			fmtFloat(m.TPS),
			fmtInt(m.ContextWindow),
		})
	}
	return headers, rows
}

func init() {
	RootCmd.AddCommand(llmsCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"which-llm/core/output"
	"which-llm/feature/compare"
	"which-llm/feature/merge"

	"github.com/spf13/cobra"
)

var verboseFlag bool

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <model> <model> [model...]",
	Short: "Compare models side by side",
	Long: `Compares two or more models metric by metric. The best value in each
directional row is marked with *. Use --verbose to include the full
benchmark breakdown.`,
	Args: cobra.MinimumNArgs(2),
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

		unified, err := loadUnified(ctx, e, src, false)
		if err != nil {
			return err
		}

		selected, err := resolveModels(unified, args)
		if err != nil {
			return err
		}
		if len(selected) < 2 {
			return fmt.Errorf("the queries resolve to a single model, nothing to compare")
		}

		headers, rows := compare.Table(selected, verboseFlag)
		fmt.Println(output.Render(headers, rows, e.format))

		if e.format == output.Table && !quietFlag {
			fmt.Println(attribution)
		}
		return nil
	},
}

// resolveModels resolves each query and deduplicates the hits, so two
// queries landing on the same model count once.
func resolveModels(unified []merge.UnifiedModel, queries []string) ([]merge.UnifiedModel, error) {
	seen := make(map[string]bool, len(queries))
	selected := make([]merge.UnifiedModel, 0, len(queries))
	for _, query := range queries {
		m, err := resolveModel(unified, query)
		if err != nil {
			return nil, err
		}
		if seen[m.Slug] {
			continue
		}
		seen[m.Slug] = true
		selected = append(selected, m)
	}
	return selected, nil
}

// resolveModel turns a user query into exactly one model, with a
// helpful error for ambiguous or unknown names.
func resolveModel(models []merge.UnifiedModel, query string) (merge.UnifiedModel, error) {
	m, candidates, ok := merge.FindOne(models, query)
	if ok {
		return m, nil
	}

	if len(candidates) == 0 {
		return merge.UnifiedModel{}, fmt.Errorf("model %q not found", query)
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Slug)
		if len(names) == 5 {
			names = append(names, "...")
			break
		}
	}
	return merge.UnifiedModel{}, fmt.Errorf(
		"model %q is ambiguous, matches: %s", query, strings.Join(names, ", "))
}

func init() {
	compareCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"include the full benchmark breakdown")
	RootCmd.AddCommand(compareCmd)
}

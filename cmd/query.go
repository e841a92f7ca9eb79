package cmd

import (
	"fmt"

	"which-llm/core/duck"
	"which-llm/core/output"

	"github.com/spf13/cobra"
)

var tablesFlag bool

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run SQL against the cached dataset",
	Long: `Runs a SQL query against the locally cached Parquet tables. Table
names like llms or text_to_image resolve to their cached files; a table
that has not been fetched yet produces an error naming the command that
fetches it.

Use --tables to list the available tables and their cache state.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		engine := duck.NewEngine(e.cache.BaseDir())

		if tablesFlag {
			headers, rows := tableListing(engine)
			fmt.Println(output.Render(headers, rows, e.format))
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("provide a SQL query, or --tables to list tables")
		}

		result, err := engine.Execute(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if result.Empty() {
			fmt.Println("No rows.")
			return nil
		}

		fmt.Println(output.Render(result.Columns, result.Rows, e.format))
		return nil
	},
}

func tableListing(engine *duck.Engine) ([]string, [][]string) {
	headers := []string{"Table", "Cached", "Columns"}

	var rows [][]string
	for _, info := range engine.ListTables() {
		cached := "no"
		if info.Exists {
			cached = "yes"
		}
		rows = append(rows, []string{info.Name, cached, fmt.Sprintf("%d", len(info.Columns))})
	}
	return headers, rows
}

func init() {
	queryCmd.Flags().BoolVar(&tablesFlag, "tables", false, "list available tables instead of querying")
	RootCmd.AddCommand(queryCmd)
}

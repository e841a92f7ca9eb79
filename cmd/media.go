package cmd

import (
	"fmt"
	"strings"

	"which-llm/core/duck"
	"which-llm/core/output"
	"which-llm/core/schema"
	"which-llm/feature/aa"

	"github.com/spf13/cobra"
)

// newMediaCmd builds one media-ranking command. All five share the
// fetch, persist and listing logic; only the table differs.
func newMediaCmd(table schema.Table, short string) *cobra.Command {
	use := strings.ReplaceAll(table.Name, "_", "-")

	return &cobra.Command{
		Use:   use + " [query]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
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

			models, err := src.FetchMedia(ctx, table.Name, refreshFlag)
			if err != nil {
				return err
			}

			writer := duck.NewWriter(e.logger)
			path := e.cache.ParquetPath(table.Name)
			if err := writer.WriteTable(ctx, table, aa.MediaRows(models), path); err != nil {
				return err
			}

			list := models
			if len(args) == 1 {
				list = filterMedia(models, args[0])
				if len(list) == 0 {
					fmt.Printf("No models matching %q.\n", args[0])
					return nil
				}
			}

			headers, rows := mediaListing(list)
			fmt.Println(output.Render(headers, rows, e.format))

			if e.format == output.Table && !quietFlag {
				fmt.Println(attribution)
			}
			return nil
		},
	}
}

func filterMedia(models []aa.MediaModel, query string) []aa.MediaModel {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models
	}

	var matched []aa.MediaModel
	for _, m := range models {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Slug), q) ||
			strings.Contains(strings.ToLower(m.Creator.Name), q) {
			matched = append(matched, m)
		}
	}
	return matched
}

func mediaListing(models []aa.MediaModel) ([]string, [][]string) {
	headers := []string{"Rank", "Name", "Creator", "Elo", "Release Date"}

	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rank := "-"
		if m.Rank != nil {
			rank = fmt.Sprintf("%d", *m.Rank)
		}
		date := "-"
		if m.ReleaseDate != nil {
			date = *m.ReleaseDate
		}
		rows = append(rows, []string{rank, m.Name, m.Creator.Name, fmtFloat(m.Elo), date})
	}
	return headers, rows
}

func init() {
	RootCmd.AddCommand(
		newMediaCmd(schema.TextToImage, "Rank text-to-image models"),
		newMediaCmd(schema.ImageEditing, "Rank image-editing models"),
		newMediaCmd(schema.TextToSpeech, "Rank text-to-speech models"),
		newMediaCmd(schema.TextToVideo, "Rank text-to-video models"),
		newMediaCmd(schema.ImageToVideo, "Rank image-to-video models"),
	)
}

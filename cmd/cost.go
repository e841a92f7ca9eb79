package cmd

import (
	"fmt"

	"which-llm/core/output"
	"which-llm/feature/cost"
	"which-llm/feature/merge"

	"github.com/spf13/cobra"
)

var (
	costInputFlag    string
	costOutputFlag   string
	costPeriodFlag   string
	costRequestsFlag int64
)

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost <model> [model...]",
	Short: "Estimate API spend for a usage volume",
	Long: `Estimates spend from each model's per-million-token prices and the
given token volumes. Volumes accept k, m and b suffixes, so --input 10k
means ten thousand input tokens. With --period daily or monthly the
volume is treated as recurring and projected accordingly. When several
models are given the cheapest total is marked with *.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		inTokens, err := cost.ParseTokens(costInputFlag)
		if err != nil {
			return err
		}
		outTokens, err := cost.ParseTokens(costOutputFlag)
		if err != nil {
			return err
		}
		period, err := cost.ParsePeriod(costPeriodFlag)
		if err != nil {
			return err
		}
		if costRequestsFlag < 1 {
			return fmt.Errorf("--requests must be at least 1")
		}
		inTokens *= costRequestsFlag
		outTokens *= costRequestsFlag

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

		var headers []string
		var rows [][]string
		if len(selected) == 1 {
			headers, rows = costDetail(selected[0], inTokens, outTokens, period)
		} else {
			headers, rows = costListing(selected, inTokens, outTokens, period)
		}
		fmt.Println(output.Render(headers, rows, e.format))
		return nil
	},
}

// costDetail renders one model's estimate metric by metric.
func costDetail(m merge.UnifiedModel, inTokens, outTokens int64, period cost.Period) ([]string, [][]string) {
	headers := []string{"Metric", "Value"}

	if m.InputPrice == nil || m.OutputPrice == nil {
		return headers, [][]string{
			{"Model", m.Name},
			{"Total", "- (no published prices)"},
		}
	}

	est := cost.New(*m.InputPrice, *m.OutputPrice, inTokens, outTokens)
	rows := [][]string{
		{"Model", m.Name},
		{"Input tokens", fmt.Sprintf("%d", est.InputTokens)},
		{"Input price", money(*m.InputPrice) + "/M"},
		{"Input cost", money(est.InputCost)},
		{"Output tokens", fmt.Sprintf("%d", est.OutputTokens)},
		{"Output price", money(*m.OutputPrice) + "/M"},
		{"Output cost", money(est.OutputCost)},
		{"Total", money(est.Total)},
	}

	proj := cost.Project(est.Total, period)
	if proj.Daily > 0 {
		rows = append(rows, []string{"Per day", money(proj.Daily)})
	}
	if proj.Monthly > 0 {
		rows = append(rows, []string{"Per month", money(proj.Monthly)})
	}
	return headers, rows
}

// costListing builds the estimate table. Models without published
// prices show "-" and never win the cheapest mark.
func costListing(models []merge.UnifiedModel, inTokens, outTokens int64, period cost.Period) ([]string, [][]string) {
	headers := []string{"Model", "Input Cost", "Output Cost", "Total"}
	switch period {
	case cost.PeriodDaily:
		headers = append(headers, "Per Month")
	}

	type line struct {
		estimate cost.Estimate
		priced   bool
	}

	lines := make([]line, len(models))
	var totals []float64
	for i, m := range models {
		if m.InputPrice == nil || m.OutputPrice == nil {
			continue
		}
		est := cost.New(*m.InputPrice, *m.OutputPrice, inTokens, outTokens)
		lines[i] = line{estimate: est, priced: true}
		totals = append(totals, est.Total)
	}

	cheapest := cost.Cheapest(totals)
	markTotals := len(totals) > 1

	rows := make([][]string, 0, len(models))
	priced := 0
	for i, m := range models {
		if !lines[i].priced {
			row := []string{m.Name, "-", "-", "-"}
			if period == cost.PeriodDaily {
				row = append(row, "-")
			}
			rows = append(rows, row)
			continue
		}

		est := lines[i].estimate
		total := money(est.Total)
		if markTotals && cheapest[priced] {
			total += " *"
		}

		row := []string{m.Name, money(est.InputCost), money(est.OutputCost), total}
		if period == cost.PeriodDaily {
			row = append(row, money(cost.Project(est.Total, period).Monthly))
		}
		rows = append(rows, row)
		priced++
	}
	return headers, rows
}

// money renders a dollar amount, keeping small per-request estimates
// readable.
func money(v float64) string {
	if v < 1 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func init() {
	costCmd.Flags().StringVar(&costInputFlag, "input", "1m", "input token volume (accepts k/m/b suffix)")
	costCmd.Flags().StringVar(&costOutputFlag, "output", "100k", "output token volume (accepts k/m/b suffix)")
	costCmd.Flags().StringVar(&costPeriodFlag, "period", "once", "usage period (once, daily, monthly)")
	costCmd.Flags().Int64Var(&costRequestsFlag, "requests", 1, "number of requests at the given volumes")
	RootCmd.AddCommand(costCmd)
}

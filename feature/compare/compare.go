package compare

import (
	"fmt"
	"strings"

	"which-llm/feature/merge"
)

// Epsilon is the metric difference below which two models tie. Ties
// leave a row unmarked.
const Epsilon = 0.001

// Marker flags the winning cell of a directional metric.
const Marker = " *"

type direction int

const (
	neutral direction = iota
	higherBetter
	lowerBetter
)

// field is one comparison row: either numeric with a direction, or
// plain text.
type field struct {
	label string
	dir   direction
	num   func(u merge.UnifiedModel) *float64
	text  func(u merge.UnifiedModel) string
}

func fromFloat(get func(u merge.UnifiedModel) *float64) func(u merge.UnifiedModel) *float64 {
	return get
}

func fromInt(get func(u merge.UnifiedModel) *int64) func(u merge.UnifiedModel) *float64 {
	return func(u merge.UnifiedModel) *float64 {
		v := get(u)
		if v == nil {
			return nil
		}
		f := float64(*v)
		return &f
	}
}

func fromString(get func(u merge.UnifiedModel) *string) func(u merge.UnifiedModel) string {
	return func(u merge.UnifiedModel) string {
		v := get(u)
		if v == nil {
			return ""
		}
		return *v
	}
}

func fromBool(get func(u merge.UnifiedModel) *bool) func(u merge.UnifiedModel) string {
	return func(u merge.UnifiedModel) string {
		v := get(u)
		if v == nil {
			return ""
		}
		if *v {
			return "yes"
		}
		return "no"
	}
}

// coreFields is the default comparison set.
var coreFields = []field{
	{label: "Creator", text: func(u merge.UnifiedModel) string { return u.Creator }},
	{label: "Release Date", text: fromString(func(u merge.UnifiedModel) *string { return u.ReleaseDate })},
	{label: "Intelligence", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.Intelligence })},
	{label: "Coding", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.Coding })},
	{label: "Math", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.Math })},
	{label: "Input $/M", dir: lowerBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.InputPrice })},
	{label: "Output $/M", dir: lowerBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.OutputPrice })},
	{label: "Blended $/M", dir: lowerBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.Price })},
	{label: "Speed (tok/s)", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.TPS })},
	{label: "Latency (s)", dir: lowerBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.Latency })},
	{label: "Context Window", dir: higherBetter, num: fromInt(func(u merge.UnifiedModel) *int64 { return u.ContextWindow })},
	{label: "Max Output", dir: higherBetter, num: fromInt(func(u merge.UnifiedModel) *int64 { return u.MaxOutputTokens })},
	{label: "Reasoning", text: fromBool(func(u merge.UnifiedModel) *bool { return u.Reasoning })},
	{label: "Tool Call", text: fromBool(func(u merge.UnifiedModel) *bool { return u.ToolCall })},
	{label: "Structured Output", text: fromBool(func(u merge.UnifiedModel) *bool { return u.StructuredOutput })},
	{label: "Open Weights", text: fromBool(func(u merge.UnifiedModel) *bool { return u.OpenWeights })},
	{label: "Input Modalities", text: fromString(func(u merge.UnifiedModel) *string { return u.InputModalities })},
	{label: "Output Modalities", text: fromString(func(u merge.UnifiedModel) *string { return u.OutputModalities })},
	{label: "Knowledge Cutoff", text: fromString(func(u merge.UnifiedModel) *string { return u.KnowledgeCutoff })},
}

// benchmarkFields is the extra tail shown in verbose mode.
var benchmarkFields = []field{
	{label: "MMLU-Pro", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.MMLUPro })},
	{label: "GPQA", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.GPQA })},
	{label: "HLE", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.HLE })},
	{label: "LiveCodeBench", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.LiveCodeBench })},
	{label: "SciCode", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.SciCode })},
	{label: "MATH-500", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.Math500 })},
	{label: "AIME", dir: higherBetter, num: fromFloat(func(u merge.UnifiedModel) *float64 { return u.AIME })},
}

// Table builds a metric-per-row comparison. The first header cell is
// "Metric", followed by the model names. Absent values render as "-".
func Table(models []merge.UnifiedModel, verbose bool) ([]string, [][]string) {
	headers := make([]string, 0, len(models)+1)
	headers = append(headers, "Metric")
	for _, m := range models {
		headers = append(headers, m.Name)
	}

	fields := coreFields
	if verbose {
		fields = append(append([]field{}, coreFields...), benchmarkFields...)
	}

	rows := make([][]string, 0, len(fields))
	for _, fld := range fields {
		rows = append(rows, buildRow(fld, models))
	}
	return headers, rows
}

func buildRow(fld field, models []merge.UnifiedModel) []string {
	row := make([]string, 0, len(models)+1)
	row = append(row, fld.label)

	if fld.num == nil {
		for _, m := range models {
			cell := strings.TrimSpace(fld.text(m))
			if cell == "" {
				cell = "-"
			}
			row = append(row, cell)
		}
		return row
	}

	values := make([]*float64, len(models))
	for i, m := range models {
		values[i] = fld.num(m)
	}
	winner := winnerIndex(values, fld.dir)

	for i, v := range values {
		if v == nil {
			row = append(row, "-")
			continue
		}
		cell := formatNumber(*v)
		if i == winner {
			cell += Marker
		}
		row = append(row, cell)
	}
	return row
}

// winnerIndex picks the strictly best value, -1 when fewer than two
// values are present or the best two tie within Epsilon.
func winnerIndex(values []*float64, dir direction) int {
	if dir == neutral {
		return -1
	}

	best, present := -1, 0
	for i, v := range values {
		if v == nil {
			continue
		}
		present++
		if best == -1 {
			best = i
			continue
		}
		if (dir == higherBetter && *v > *values[best]) ||
			(dir == lowerBetter && *v < *values[best]) {
			best = i
		}
	}
	if present < 2 {
		return -1
	}

	for i, v := range values {
		if i == best || v == nil {
			continue
		}
		diff := *v - *values[best]
		if diff < 0 {
			diff = -diff
		}
		if diff < Epsilon {
			return -1
		}
	}
	return best
}

// formatNumber renders whole values without a fraction and everything
// else with two decimals.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

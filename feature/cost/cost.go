package cost

import "fmt"

// Epsilon is the cost difference below which two models tie.
const Epsilon = 0.001

// Period describes what one usage volume represents.
type Period string

const (
	PeriodOnce    Period = "once"
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates a period flag value.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodOnce, PeriodDaily, PeriodMonthly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period %q (want once, daily or monthly)", s)
	}
}

// Estimate is the spend for one model at one usage volume. Prices are
// USD per million tokens, costs are USD.
type Estimate struct {
	InputTokens  int64
	OutputTokens int64
	InputCost    float64
	OutputCost   float64
	Total        float64
}

// New computes the estimate for one usage volume.
func New(inputPrice, outputPrice float64, inputTokens, outputTokens int64) Estimate {
	in := float64(inputTokens) / 1_000_000 * inputPrice
	out := float64(outputTokens) / 1_000_000 * outputPrice
	return Estimate{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputCost:    in,
		OutputCost:   out,
		Total:        in + out,
	}
}

// Projection scales a per-period total into daily and monthly figures.
// A zero value means the figure does not apply to the period.
type Projection struct {
	Daily   float64
	Monthly float64
}

// Project derives the projection for a period. Months count as 30 days.
func Project(total float64, period Period) Projection {
	switch period {
	case PeriodDaily:
		return Projection{Daily: total, Monthly: total * 30}
	case PeriodMonthly:
		return Projection{Monthly: total}
	default:
		return Projection{}
	}
}

// Cheapest marks every total within Epsilon of the minimum. All
// entries tie when the list is empty or holds one element.
func Cheapest(totals []float64) []bool {
	marks := make([]bool, len(totals))
	if len(totals) == 0 {
		return marks
	}

	min := totals[0]
	for _, t := range totals[1:] {
		if t < min {
			min = t
		}
	}
	for i, t := range totals {
		marks[i] = t-min < Epsilon
	}
	return marks
}

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"which-llm/feature/merge"
)

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }
func i64(v int64) *int64   { return &v }
func s(v string) *string   { return &v }

func twoModels() []merge.UnifiedModel {
	return []merge.UnifiedModel{
		{
			Name:          "GPT-5",
			Creator:       "OpenAI",
			Intelligence:  f(68.5),
			InputPrice:    f(1.25),
			TPS:           f(120),
			ContextWindow: i64(400000),
			Reasoning:     b(true),
			GPQA:          f(85.7),
		},
		{
			Name:          "Claude Opus",
			Creator:       "Anthropic",
			Intelligence:  f(64.0),
			InputPrice:    f(15.0),
			TPS:           f(60),
			ContextWindow: i64(200000),
			Reasoning:     b(true),
			GPQA:          f(83.3),
		},
	}
}

func rowByLabel(t *testing.T, rows [][]string, label string) []string {
	t.Helper()
	for _, row := range rows {
		if row[0] == label {
			return row
		}
	}
	t.Fatalf("no row labeled %q", label)
	return nil
}

func TestTable_Headers(t *testing.T) {
	headers, _ := Table(twoModels(), false)
	assert.Equal(t, []string{"Metric", "GPT-5", "Claude Opus"}, headers)
}

func TestTable_HigherBetterWinner(t *testing.T) {
	_, rows := Table(twoModels(), false)

	intelligence := rowByLabel(t, rows, "Intelligence")
	assert.Equal(t, "68.50 *", intelligence[1])
	assert.Equal(t, "64", intelligence[2])

	ctx := rowByLabel(t, rows, "Context Window")
	assert.Equal(t, "400000 *", ctx[1])
}

func TestTable_LowerBetterWinner(t *testing.T) {
	_, rows := Table(twoModels(), false)

	price := rowByLabel(t, rows, "Input $/M")
	assert.Equal(t, "1.25 *", price[1])
	assert.Equal(t, "15", price[2])
}

func TestTable_AbsentValues(t *testing.T) {
	models := twoModels()
	models[1].InputPrice = nil
	models[1].Reasoning = nil
	_, rows := Table(models, false)

	price := rowByLabel(t, rows, "Input $/M")
	assert.Equal(t, "-", price[2])
	assert.Equal(t, "1.25", price[1], "single present value gets no marker")

	reasoning := rowByLabel(t, rows, "Reasoning")
	assert.Equal(t, "yes", reasoning[1])
	assert.Equal(t, "-", reasoning[2])
}

func TestTable_TieWithinEpsilon(t *testing.T) {
	models := twoModels()
	models[0].Intelligence = f(64.0004)
	models[1].Intelligence = f(64.0)
	_, rows := Table(models, false)

	intelligence := rowByLabel(t, rows, "Intelligence")
	assert.NotContains(t, intelligence[1], Marker)
	assert.NotContains(t, intelligence[2], Marker)
}

func TestTable_TextRowsNeverMarked(t *testing.T) {
	models := twoModels()
	models[0].InputModalities = s("text,image")
	_, rows := Table(models, false)

	mod := rowByLabel(t, rows, "Input Modalities")
	assert.Equal(t, "text,image", mod[1])
	assert.Equal(t, "-", mod[2])
}

func TestTable_VerboseAddsBenchmarks(t *testing.T) {
	_, core := Table(twoModels(), false)
	_, verbose := Table(twoModels(), true)

	require.Greater(t, len(verbose), len(core))
	gpqa := rowByLabel(t, verbose, "GPQA")
	assert.Equal(t, "85.70 *", gpqa[1])

	for _, row := range core {
		assert.NotEqual(t, "GPQA", row[0], "benchmark tail stays out of the core table")
	}
}

func TestTable_ThreeModels(t *testing.T) {
	models := append(twoModels(), merge.UnifiedModel{
		Name:         "Cheapo",
		Creator:      "Acme",
		InputPrice:   f(0.1),
		Intelligence: f(30),
	})

	headers, rows := Table(models, false)
	assert.Len(t, headers, 4)

	price := rowByLabel(t, rows, "Input $/M")
	assert.Equal(t, "0.10 *", price[3])
	assert.NotContains(t, price[1], Marker)
}

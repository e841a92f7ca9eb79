package aa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"which-llm/core/schema"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestBenchmarkRows(t *testing.T) {
	models := []Model{
		{
			ID:      "m-1",
			Name:    "GPT-5",
			Slug:    "gpt-5",
			Creator: Creator{ID: "c-1", Name: "OpenAI", Slug: s("openai")},
			Evaluations: &Evaluations{
				Intelligence: f(68.5),
				Coding:       f(60.1),
			},
			Pricing: &Pricing{Input: f(1.25), Output: f(10.0), Blended: f(3.44)},
			TPS:     f(120.3),
		},
		{
			ID:      "m-2",
			Name:    "Mystery",
			Slug:    "mystery",
			Creator: Creator{ID: "c-2", Name: "Acme"},
		},
	}

	rows := BenchmarkRows(models)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(schema.Benchmarks.Columns))
	}

	full := rows[0]
	assert.Equal(t, "m-1", full[0])
	assert.Equal(t, "OpenAI", full[3])
	assert.Equal(t, "openai", full[4])
	assert.Equal(t, 68.5, full[6])
	assert.Equal(t, 1.25, full[16])
	assert.Equal(t, 3.44, full[18])
	assert.Equal(t, 120.3, full[19])

	sparse := rows[1]
	assert.Equal(t, "m-2", sparse[0])
	for i := 4; i < len(sparse); i++ {
		assert.Nil(t, sparse[i], "column %d should be nil", i)
	}
}

func TestMediaRows(t *testing.T) {
	rank := int32(2)
	models := []MediaModel{
		{
			ID:          "img-1",
			Name:        "Imagen 4",
			Slug:        "imagen-4",
			Creator:     Creator{Name: "Google"},
			Elo:         f(1124.5),
			Rank:        &rank,
			ReleaseDate: s("2025-05-20"),
		},
		{ID: "img-2", Name: "Sparse", Slug: "sparse", Creator: Creator{Name: "Acme"}},
	}

	rows := MediaRows(models)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(schema.TextToImage.Columns))
	}

	assert.Equal(t, []any{"img-1", "Imagen 4", "imagen-4", "Google", 1124.5, int32(2), "2025-05-20"}, rows[0])
	assert.Equal(t, []any{"img-2", "Sparse", "sparse", "Acme", nil, nil, nil}, rows[1])
}

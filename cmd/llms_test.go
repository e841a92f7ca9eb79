package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"which-llm/feature/merge"
)

func i64(v int64) *int64 { return &v }

func TestLLMListing(t *testing.T) {
	models := []merge.UnifiedModel{
		{
			Name:          "GPT-5",
			Creator:       "OpenAI",
			Intelligence:  f(68.5),
			InputPrice:    f(1.25),
			OutputPrice:   f(10),
			TPS:           f(120.3),
			ContextWindow: i64(400000),
		},
		{Name: "Sparse", Creator: "Acme"},
	}

	headers, rows := llmListing(models)
	assert.Equal(t, []string{"Name", "Creator", "Intelligence", "In $/M", "Out $/M", "Tok/s", "Context"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"GPT-5", "OpenAI", "68.50", "1.25", "10", "120.30", "400000"}, rows[0])
	assert.Equal(t, []string{"Sparse", "Acme", "-", "-", "-", "-", "-"}, rows[1])
}

func TestResolveModel(t *testing.T) {
	models := []merge.UnifiedModel{
		{Name: "GPT-5", Slug: "gpt-5"},
		{Name: "GPT-5 mini", Slug: "gpt-5-mini"},
		{Name: "Claude Opus", Slug: "claude-opus"},
	}

	t.Run("ExactSlug", func(t *testing.T) {
		m, err := resolveModel(models, "gpt-5")
		require.NoError(t, err)
		assert.Equal(t, "GPT-5", m.Name)
	})

	t.Run("UniqueSubstring", func(t *testing.T) {
		m, err := resolveModel(models, "opus")
		require.NoError(t, err)
		assert.Equal(t, "Claude Opus", m.Name)
	})

	t.Run("Ambiguous", func(t *testing.T) {
		_, err := resolveModel(models, "gpt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
		assert.Contains(t, err.Error(), "gpt-5-mini")
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := resolveModel(models, "gemini")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestResolveModels_Dedupe(t *testing.T) {
	models := []merge.UnifiedModel{
		{Name: "GPT-5", Slug: "gpt-5"},
		{Name: "Claude Opus", Slug: "claude-opus"},
	}

	selected, err := resolveModels(models, []string{"gpt-5", "opus", "GPT-5"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "gpt-5", selected[0].Slug)
	assert.Equal(t, "claude-opus", selected[1].Slug)
}

func TestFmtHelpers(t *testing.T) {
	assert.Equal(t, "-", fmtFloat(nil))
	assert.Equal(t, "3.14", fmtFloat(f(3.14)))
	assert.Equal(t, "42", fmtFloat(f(42)))
	assert.Equal(t, "-", fmtInt(nil))
	assert.Equal(t, "128000", fmtInt(i64(128000)))
}

package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", Table},
		{"table", Table},
		{"markdown", Markdown},
		{"md", Markdown},
		{"JSON", JSON},
		{"csv", CSV},
		{"plain", Plain},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("yaml")
	assert.Error(t, err)
}

var (
	testHeaders = []string{"name", "score"}
	testRows    = [][]string{
		{"Model A", "100"},
		{"Model B", "95"},
	}
)

func TestRender_Markdown(t *testing.T) {
	out := Render(testHeaders, testRows, Markdown)
	assert.Contains(t, out, "| name | score |")
	assert.Contains(t, out, "| --- | --- |")
	assert.Contains(t, out, "| Model A | 100 |")
}

func TestRender_JSON(t *testing.T) {
	out := Render(testHeaders, testRows, JSON)
	assert.Contains(t, out, `"name": "Model A"`)
	assert.Contains(t, out, `"score": "95"`)
}

func TestRender_JSONEmpty(t *testing.T) {
	out := Render(testHeaders, nil, JSON)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestRender_CSV(t *testing.T) {
	out := Render(testHeaders, [][]string{{"a,b", "1"}}, CSV)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,score", lines[0])
	assert.Equal(t, `"a,b",1`, lines[1])
}

func TestRender_Plain(t *testing.T) {
	out := Render(testHeaders, testRows, Plain)
	assert.Equal(t, "Model A\t100\nModel B\t95\n", out)
}

func TestRender_Table(t *testing.T) {
	out := Render(testHeaders, testRows, Table)
	assert.Contains(t, out, "| name    | score |")
	assert.Contains(t, out, "| Model A | 100   |")
	assert.True(t, strings.HasPrefix(out, "+"))
}

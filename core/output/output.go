package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects how tabular results are rendered.
type Format int

const (
	Table Format = iota
	Markdown
	JSON
	CSV
	Plain
)

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return Table, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "plain":
		return Plain, nil
	default:
		return Table, fmt.Errorf("invalid format '%s'. Use 'table', 'markdown', 'json', 'csv', or 'plain'", s)
	}
}

// Render renders headers and string rows in the requested format.
func Render(headers []string, rows [][]string, format Format) string {
	switch format {
	case JSON:
		return renderJSON(headers, rows)
	case CSV:
		return renderCSV(headers, rows)
	case Markdown:
		return renderMarkdown(headers, rows)
	case Plain:
		return renderPlain(rows)
	default:
		return renderTable(headers, rows)
	}
}

func renderJSON(headers []string, rows [][]string) string {
	objs := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		objs = append(objs, obj)
	}
	out, err := json.MarshalIndent(objs, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(out)
}

func renderCSV(headers []string, rows [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
	return sb.String()
}

func renderPlain(rows [][]string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderMarkdown(headers []string, rows [][]string) string {
	var sb strings.Builder

	sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	sb.WriteString("| " + strings.Join(seps, " | ") + " |\n")

	for _, row := range rows {
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return sb.String()
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	border := func() {
		sb.WriteByte('+')
		for _, w := range widths {
			sb.WriteString(strings.Repeat("-", w+2))
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
	line := func(cells []string) {
		sb.WriteByte('|')
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(&sb, " %-*s |", w, cell)
		}
		sb.WriteByte('\n')
	}

	border()
	line(headers)
	border()
	for _, row := range rows {
		line(row)
	}
	border()
	return sb.String()
}

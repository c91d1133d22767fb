// Package report turns stat results into an aligned plain-text report.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/anorum/hoyt-fantasy-stats/internal/models"
)

// Render emits one section per result in order: a title banner, the column
// header, and the aligned rows. Empty result sets still get their section,
// with an explicit no-data line, so the report shape never changes.
func Render(header string, results []models.Result) string {
	var sb strings.Builder

	if header != "" {
		sb.WriteString(strings.Repeat("=", 64))
		sb.WriteString("\n")
		sb.WriteString(header)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", 64))
		sb.WriteString("\n")
	}

	for _, res := range results {
		sb.WriteString("\n=== ")
		sb.WriteString(res.Title)
		sb.WriteString(" ===\n")
		sb.WriteString(RenderTable(res))
	}

	return sb.String()
}

// RenderTable formats a single result set.
func RenderTable(res models.Result) string {
	if len(res.Rows) == 0 {
		return "(no data)\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(res.Columns, "\t"))
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	w.Flush()
	return sb.String()
}

func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return "-"
	case float64:
		return fmt.Sprintf("%.2f", c)
	case int64:
		return fmt.Sprintf("%d", c)
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

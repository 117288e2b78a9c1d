package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hsiuhsiu/ffibench-go/internal/harness"
)

const na = "N/A"

func millis(r harness.Result, adapter string) string {
	s, ok := r.Stats[adapter]
	if !ok || adapter == "" {
		return na
	}
	return fmt.Sprintf("%.4f", s.Mean*1000)
}

func speedupText(r harness.Result) string {
	if !r.HasSpeedup() {
		return na
	}
	return fmt.Sprintf("%.2fx", r.Speedup)
}

// resultRows returns one row per result: name, baseline ms, candidate ms,
// speedup.
func resultRows(results []harness.Result, baseline, candidate string) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Name, millis(r, baseline), millis(r, candidate), speedupText(r)})
	}
	return rows
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})
}

// SummaryTables renders one table per category with the mean time per
// adapter in milliseconds and the speedup.
func SummaryTables(res *harness.Results) string {
	baseline, candidate := res.Metadata.Baseline(), res.Metadata.Candidate()
	order, by := groups(res)

	var b strings.Builder
	for i, category := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(TitleStyle.Render(category))
		b.WriteString("\n")
		t := newTable("Benchmark", adapterHeader(baseline), adapterHeader(candidate), "Speedup").
			Rows(resultRows(by[category], baseline, candidate)...)
		b.WriteString(t.Render())
		b.WriteString("\n")
	}
	return b.String()
}

// CategoryTable renders the per-category speedup statistics.
func CategoryTable(an Analysis) string {
	t := newTable("Category", "Mean", "Median", "Std Dev", "Min", "Max", "Tests")
	for _, c := range an.Categories {
		t.Row(
			c.Category,
			fmt.Sprintf("%.2fx", c.Mean),
			fmt.Sprintf("%.2fx", c.Median),
			fmt.Sprintf("%.2f", c.Std),
			fmt.Sprintf("%.2fx", c.Min),
			fmt.Sprintf("%.2fx", c.Max),
			fmt.Sprintf("%d", c.Count),
		)
	}
	return t.Render()
}

func adapterHeader(name string) string {
	if name == "" {
		return na
	}
	return name + " (ms)"
}

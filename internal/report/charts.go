package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/hsiuhsiu/ffibench-go/internal/harness"
)

// Bar is one labelled value in a speedup chart.
type Bar struct {
	Label string
	Value float64
}

const (
	minBarWidth = 10
	valueWidth  = 9
)

// Chart renders horizontal bars scaled to the largest value, with a marker
// at 1.0x. width is the total line width.
func Chart(title string, bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	labelWidth := 0
	maxValue := 1.0
	for _, b := range bars {
		labelWidth = max(labelWidth, len(b.Label))
		maxValue = max(maxValue, b.Value)
	}
	barWidth := width - labelWidth - valueWidth - 2
	if barWidth < minBarWidth {
		labelWidth = max(0, labelWidth-(minBarWidth-barWidth))
		barWidth = minBarWidth
	}
	ref := min(scale(1, maxValue, barWidth), barWidth-1)

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(title))
	sb.WriteString("\n")
	for _, b := range bars {
		label := b.Label
		if len(label) > labelWidth {
			label = label[:labelWidth]
		}
		n := scale(b.Value, maxValue, barWidth)
		fmt.Fprintf(&sb, "%-*s ", labelWidth, label)
		sb.WriteString(speedupStyle(b.Value).Render(strings.Repeat("█", n)))
		if ref >= n {
			sb.WriteString(strings.Repeat(" ", ref-n))
			sb.WriteString(referenceStyle.Render("│"))
			n = ref + 1
		}
		sb.WriteString(strings.Repeat(" ", barWidth-n))
		fmt.Fprintf(&sb, " %*s\n", valueWidth-1, fmt.Sprintf("%.2fx", b.Value))
	}
	sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("%*s│ 1.0x", labelWidth+1+ref, "")))
	sb.WriteString("\n")
	return sb.String()
}

func scale(v, maxValue float64, width int) int {
	if v <= 0 || maxValue <= 0 {
		return 0
	}
	n := int(math.Round(v / maxValue * float64(width)))
	return min(max(n, 0), width)
}

// SpeedupChart charts every benchmark that has a speedup.
func SpeedupChart(res *harness.Results, width int) string {
	var bars []Bar
	for _, r := range res.Results {
		if r.HasSpeedup() {
			bars = append(bars, Bar{Label: r.Name, Value: r.Speedup})
		}
	}
	return Chart(chartTitle("Speedup by benchmark", res), bars, width)
}

// CategoryChart charts the mean speedup of each category.
func CategoryChart(an Analysis, width int) string {
	bars := make([]Bar, 0, len(an.Categories))
	for _, c := range an.Categories {
		bars = append(bars, Bar{Label: c.Category, Value: c.Mean})
	}
	title := "Average speedup by category"
	if an.Baseline != "" && an.Candidate != "" {
		title = fmt.Sprintf("%s (%s vs %s)", title, an.Baseline, an.Candidate)
	}
	return Chart(title, bars, width)
}

func chartTitle(title string, res *harness.Results) string {
	b, c := res.Metadata.Baseline(), res.Metadata.Candidate()
	if b == "" || c == "" {
		return title
	}
	return fmt.Sprintf("%s (%s vs %s)", title, b, c)
}

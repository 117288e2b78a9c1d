package report

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hsiuhsiu/ffibench-go/internal/harness"
)

func names(cs []CategoryStats) string {
	if len(cs) == 0 {
		return na
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Category
	}
	return strings.Join(out, ", ")
}

func orNA(s string) string {
	if s == "" {
		return na
	}
	return s
}

// Markdown builds the full report document.
func Markdown(res *harness.Results, an Analysis) string {
	md := res.Metadata
	baseline, candidate := orNA(an.Baseline), orNA(an.Candidate)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s vs %s Binding Benchmark Report\n\n", baseline, candidate)

	b.WriteString("## Test Configuration\n\n")
	fmt.Fprintf(&b, "- Adapters: %s\n", strings.Join(md.Adapters, ", "))
	fmt.Fprintf(&b, "- Iterations: %d\n", md.Iterations)
	fmt.Fprintf(&b, "- Warmup: %d\n", md.Warmup)
	fmt.Fprintf(&b, "- Memory probe: %t\n", md.Memory)
	fmt.Fprintf(&b, "- Input seed: %#x\n", md.Seed)
	fmt.Fprintf(&b, "- Go version: %s\n", orNA(md.GoVersion))
	fmt.Fprintf(&b, "- Platform: %s/%s, %d CPUs\n", orNA(md.OS), orNA(md.Arch), md.CPUs)
	if md.Started != "" {
		fmt.Fprintf(&b, "- Started: %s\n", md.Started)
	}
	if md.Version != "" {
		fmt.Fprintf(&b, "- ffibench version: %s\n", md.Version)
	}
	b.WriteString("\n")

	b.WriteString("## Overall Statistics\n\n")
	if an.Overall.Count == 0 {
		b.WriteString("No benchmark produced a speedup.\n\n")
	} else {
		fmt.Fprintf(&b, "- Mean Speedup: %.2fx\n", an.Overall.Mean)
		fmt.Fprintf(&b, "- Median Speedup: %.2fx\n", an.Overall.Median)
		fmt.Fprintf(&b, "- Best Speedup: %.2fx (%s)\n", an.Overall.Max, an.Best)
		fmt.Fprintf(&b, "- Worst Speedup: %.2fx (%s)\n\n", an.Overall.Min, an.Worst)
	}

	b.WriteString("## Performance by Category\n\n")
	b.WriteString("| Category | Mean | Median | Std Dev | Min | Max | Tests |\n")
	b.WriteString("|----------|------|--------|---------|-----|-----|-------|\n")
	for _, c := range an.Categories {
		fmt.Fprintf(&b, "| %s | %.2fx | %.2fx | %.2f | %.2fx | %.2fx | %d |\n",
			c.Category, c.Mean, c.Median, c.Std, c.Min, c.Max, c.Count)
	}

	b.WriteString("\n## Detailed Results\n\n")
	order, by := groups(res)
	for _, category := range order {
		fmt.Fprintf(&b, "### %s\n\n", category)
		fmt.Fprintf(&b, "| Benchmark | %s (ms) | %s (ms) | Speedup |\n", baseline, candidate)
		b.WriteString("|-----------|------|------|---------|\n")
		for _, row := range resultRows(by[category], an.Baseline, an.Candidate) {
			fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
		}
		b.WriteString("\n")
		writeFailures(&b, by[category])
	}

	b.WriteString("## Key Findings\n\n")
	if len(an.Excels) > 0 {
		fmt.Fprintf(&b, "### Areas Where %s Excels (>%.1fx speedup)\n\n", baseline, ExcelsAbove)
		for _, c := range an.Excels {
			fmt.Fprintf(&b, "- **%s**: %.2fx average speedup\n", c.Category, c.Mean)
		}
		b.WriteString("\n")
	}
	if len(an.Similar) > 0 {
		fmt.Fprintf(&b, "### Areas With Similar Performance (%.1fx - %.1fx)\n\n", SimilarLow, SimilarHigh)
		for _, c := range an.Similar {
			fmt.Fprintf(&b, "- **%s**: %.2fx average speedup\n", c.Category, c.Mean)
		}
		b.WriteString("\n")
	}
	if len(an.Excels) == 0 && len(an.Similar) == 0 {
		b.WriteString("No category crossed a finding threshold.\n\n")
	}

	b.WriteString("## Recommendations\n\n")
	b.WriteString("Based on the benchmark results:\n\n")
	fmt.Fprintf(&b, "1. **Use %s for**: %s\n", baseline, names(an.Excels))
	fmt.Fprintf(&b, "2. **Either %s or %s acceptable for**: %s\n", baseline, candidate, names(an.Similar))
	b.WriteString("3. **Consider implementation complexity**: direct calls need the library at build time, " +
		"symbol lookup binds at run time and checks signatures on open, the C ABI needs a C toolchain\n")
	return b.String()
}

func writeFailures(b *strings.Builder, results []harness.Result) {
	var lines []string
	for _, r := range results {
		for _, adapter := range slices.Sorted(maps.Keys(r.Failures)) {
			lines = append(lines, fmt.Sprintf("- %s: %d failed %s calls", r.Name, r.Failures[adapter], adapter))
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("Failed samples:\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
}

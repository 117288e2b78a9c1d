package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ffibench-go/internal/report"
	"github.com/hsiuhsiu/ffibench-go/internal/suite"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the benchmark catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			selected := suite.Select(suite.Catalog(), a.cfg.Categories, a.cfg.Filter)
			current := ""
			for _, bm := range selected {
				if bm.Category != current {
					if current != "" {
						fmt.Fprintln(w)
					}
					current = bm.Category
					fmt.Fprintln(w, report.TitleStyle.Render(current))
				}
				fmt.Fprintf(w, "  %s%s\n", bm.Name, params(bm.Params))
			}
			fmt.Fprintln(w, report.SubtitleStyle.Render(fmt.Sprintf("\n%d benchmarks", len(selected))))
			return nil
		},
	}
}

func params(p map[string]any) string {
	if len(p) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(p))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, p[k])
	}
	return report.SubtitleStyle.Render("  " + strings.Join(parts, " "))
}

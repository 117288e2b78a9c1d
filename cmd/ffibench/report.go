package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ffibench-go/internal/config"
	"github.com/hsiuhsiu/ffibench-go/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	var noRender bool
	cmd := &cobra.Command{
		Use:   "report [results-file]",
		Short: "Summarise a results file as tables, charts and a markdown report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Output
			if len(args) == 1 {
				path = args[0]
			}
			return a.report(cmd, path, !noRender)
		},
	}
	defaults := config.Default()
	f := cmd.Flags()
	f.String("report-output", defaults.Report.Output, "markdown report file")
	f.Int("width", defaults.Report.Width, "chart and wrap width")
	f.BoolVar(&noRender, "no-render", false, "skip printing the rendered markdown")
	return cmd
}

func (a *app) report(cmd *cobra.Command, path string, render bool) error {
	ctx := cmd.Context()
	cfg := a.cfg

	res, err := report.Load(path)
	if err != nil {
		return err
	}
	an := report.Analyze(res)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, report.CategoryTable(an))
	fmt.Fprint(w, report.CategoryChart(an, cfg.Report.Width))

	out, err := config.SecurePath(cfg.Report.Output)
	if err != nil {
		return err
	}
	md := report.Markdown(res, an)
	if err := os.WriteFile(out, []byte(md), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	a.logger.Info(ctx, "report written", "path", out)

	if !render {
		return nil
	}
	rendered, err := report.Render(md, cfg.Report.Width)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	fmt.Fprint(w, rendered)
	return nil
}

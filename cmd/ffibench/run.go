package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/internal/config"
	"github.com/hsiuhsiu/ffibench-go/internal/harness"
	"github.com/hsiuhsiu/ffibench-go/internal/report"
	"github.com/hsiuhsiu/ffibench-go/internal/suite"
	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time the benchmark catalog through the baseline and candidate adapters",
		Args:  cobra.NoArgs,
		RunE:  a.run,
	}
	defaults := config.Default()
	f := cmd.Flags()
	f.IntP("iterations", "n", defaults.Iterations, "timed calls per adapter and benchmark")
	f.Int("warmup", defaults.Warmup, "untimed calls before timing")
	f.StringP("output", "o", defaults.Output, "results file (.json or .toml)")
	f.Bool("memory", defaults.Memory, "record single-call allocation deltas")
	f.Int("width", defaults.Report.Width, "chart width")
	return cmd
}

// openPair opens the baseline and candidate adapters.
func openPair(cfg *config.Config) (first, second bindings.Binding, err error) {
	first, err = bindings.Open(bindings.Config{Adapter: cfg.Baseline})
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.Baseline, ffibench.RemapError(err))
	}
	second, err = bindings.Open(bindings.Config{Adapter: cfg.Candidate})
	if err != nil {
		_ = first.Close()
		return nil, nil, fmt.Errorf("open %s: %w", cfg.Candidate, ffibench.RemapError(err))
	}
	return first, second, nil
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := a.cfg

	out, err := config.SecurePath(cfg.Output)
	if err != nil {
		return err
	}
	if _, err := report.FormatOf(out); err != nil {
		return err
	}

	benchmarks := suite.Select(suite.Catalog(), cfg.Categories, cfg.Filter)
	if len(benchmarks) == 0 {
		return errors.New("no benchmarks match the category and filter settings")
	}

	first, second, err := openPair(cfg)
	if err != nil {
		return err
	}
	defer first.Close()
	defer second.Close()

	runner, err := harness.New(harness.Options{
		Iterations: cfg.Iterations,
		Warmup:     cfg.Warmup,
		Memory:     cfg.Memory,
		Logger:     a.logger.With("component", "harness"),
		Version:    ffibench.WrapperVersion(),
	}, first, second)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "starting benchmarks",
		"count", len(benchmarks), "iterations", cfg.Iterations, "warmup", cfg.Warmup,
		"baseline", cfg.Baseline, "candidate", cfg.Candidate)
	res, runErr := runner.Run(ctx, benchmarks)
	if res != nil && len(res.Results) > 0 {
		if err := report.Save(out, res); err != nil {
			return err
		}
		a.logger.Info(ctx, "results written", "path", out, "benchmarks", len(res.Results))

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, report.SummaryTables(res))
		fmt.Fprint(w, report.SpeedupChart(res, cfg.Report.Width))
	}
	return runErr
}

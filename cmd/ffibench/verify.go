package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/internal/conformance"
	"github.com/hsiuhsiu/ffibench-go/internal/report"
)

func newVerifyCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the conformance suite against the adapters",
		Long: `verify checks every library operation, including its error cases,
through the baseline and candidate adapters and then compares the two
adapters result by result. It exits with status 1 when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.verify(cmd, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "verify every adapter built into this binary")
	return cmd
}

func (a *app) verify(cmd *cobra.Command, all bool) error {
	ctx := cmd.Context()
	names := []string{a.cfg.Baseline, a.cfg.Candidate}
	if all {
		names = bindings.Adapters()
	}

	w := cmd.OutOrStdout()
	cases := conformance.Cases()
	var opened []bindings.Binding
	defer func() {
		for _, b := range opened {
			_ = b.Close()
		}
	}()

	failed := 0
	for _, name := range names {
		b, err := bindings.Open(bindings.Config{Adapter: name})
		if errors.Is(err, bindings.ErrNotBuilt) && all {
			fmt.Fprintf(w, "%s: skipped (not built)\n", name)
			continue
		}
		if err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}
		opened = append(opened, b)

		failures := conformance.Failures(conformance.Run(b, cases))
		for _, o := range failures {
			a.logger.Error(ctx, "check failed", "adapter", name, "case", o.Case, "detail", o.Detail)
		}
		failed += len(failures)
		fmt.Fprintf(w, "%s: %d/%d checks passed\n", report.TitleStyle.Render(name), len(cases)-len(failures), len(cases))
	}

	for i := 0; i < len(opened); i++ {
		for j := i + 1; j < len(opened); j++ {
			mismatches := conformance.Equivalent(opened[i], opened[j], cases)
			for _, m := range mismatches {
				a.logger.Error(ctx, "adapters disagree",
					"first", opened[i].Name(), "second", opened[j].Name(), "case", m.Case, "detail", m.Detail)
			}
			failed += len(mismatches)
			fmt.Fprintf(w, "%s vs %s: %d mismatches\n", opened[i].Name(), opened[j].Name(), len(mismatches))
		}
	}

	if failed > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%d conformance checks failed", failed)}
	}
	return nil
}

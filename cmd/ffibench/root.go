package main

import (
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ffibench-go/internal/config"
	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench/logging"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"iterations":    "iterations",
	"warmup":        "warmup",
	"baseline":      "baseline",
	"candidate":     "candidate",
	"output":        "output",
	"memory":        "memory",
	"category":      "categories",
	"filter":        "filter",
	"log-level":     "log.level",
	"report-output": "report.output",
	"width":         "report.width",
}

// app carries the state shared by every subcommand.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ffibench",
		Short: "Benchmark library bindings against each other",
		Long: `ffibench times the same computation library through several binding
adapters: direct calls, symbol lookup with declared signatures, and the
exported C ABI. It verifies the adapters return identical results and
reports how much each binding's overhead costs per workload.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	defaults := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "TOML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.String("log-level", defaults.Log.Level, "log level: debug, info, warn, error")
	pf.String("baseline", defaults.Baseline, "first adapter, the speedup baseline")
	pf.String("candidate", defaults.Candidate, "second adapter")
	pf.StringSlice("category", nil, "only benchmarks in these categories")
	pf.String("filter", "", "only benchmarks whose name contains this text")

	root.AddCommand(
		newRunCmd(a),
		newVerifyCmd(a),
		newReportCmd(a),
		newListCmd(a),
		newVersionCmd(),
	)
	return root
}

// load resolves the configuration for the command being executed.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Context(), config.LoadOptions{
		ConfigFile: a.cfgFile,
		Flags:      cmd.Flags(),
		FlagKeys:   flagKeys,
	})
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.NewWithOptions(cmd.ErrOrStderr(), logging.Options{Prefix: "ffibench", Level: level})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and the adapters built into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ffibench %s (%s, %s/%s)\n", ffibench.WrapperVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			for _, name := range bindings.Adapters() {
				b, err := bindings.Open(bindings.Config{Adapter: name})
				switch {
				case errors.Is(err, bindings.ErrNotBuilt):
					fmt.Fprintf(w, "  %-9s not built\n", name)
				case err != nil:
					fmt.Fprintf(w, "  %-9s error: %v\n", name, err)
				default:
					_ = b.Close()
					fmt.Fprintf(w, "  %-9s available\n", name)
				}
			}
			return nil
		},
	}
}

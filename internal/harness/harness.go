// Package harness times catalog benchmarks through two or more bindings and
// collects the per-adapter statistics.
package harness

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/internal/stats"
	"github.com/hsiuhsiu/ffibench-go/internal/suite"
	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench/logging"
)

var (
	// ErrNoAdapters is returned by New when no binding is supplied.
	ErrNoAdapters = errors.New("harness: no adapters")
	// ErrDuplicateAdapter is returned when two bindings share a name.
	ErrDuplicateAdapter = errors.New("harness: duplicate adapter")
	// ErrBadOptions reports non-positive iterations or negative warmup.
	ErrBadOptions = errors.New("harness: invalid options")
)

// Options controls a run.
type Options struct {
	Iterations int
	Warmup     int
	// Memory enables the single-call allocation probe.
	Memory  bool
	Logger  logging.Logger
	Version string
}

// Runner executes benchmarks. It is not safe for concurrent use.
type Runner struct {
	opts     Options
	adapters []bindings.Binding
	now      func() time.Time
}

// New returns a Runner timing each benchmark through adapters in order. The
// first adapter is the baseline for speedups.
func New(opts Options, adapters ...bindings.Binding) (*Runner, error) {
	if len(adapters) == 0 {
		return nil, ErrNoAdapters
	}
	if opts.Iterations <= 0 || opts.Warmup < 0 {
		return nil, fmt.Errorf("%w: iterations=%d warmup=%d", ErrBadOptions, opts.Iterations, opts.Warmup)
	}
	seen := map[string]bool{}
	for _, b := range adapters {
		if seen[b.Name()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAdapter, b.Name())
		}
		seen[b.Name()] = true
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Runner{opts: opts, adapters: adapters, now: time.Now}, nil
}

// Names returns the adapter names in run order.
func (r *Runner) Names() []string {
	names := make([]string, len(r.adapters))
	for i, b := range r.adapters {
		names[i] = b.Name()
	}
	return names
}

// Run times every benchmark. When ctx is cancelled it stops between samples
// and returns the results gathered so far with the context error.
func (r *Runner) Run(ctx context.Context, benchmarks []suite.Benchmark) (*Results, error) {
	res := &Results{Metadata: r.metadata()}
	for _, bm := range benchmarks {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out, err := r.RunOne(ctx, bm)
		if err != nil {
			return res, err
		}
		res.Results = append(res.Results, out)
	}
	return res, nil
}

// RunOne warms up and times a single benchmark through every adapter.
func (r *Runner) RunOne(ctx context.Context, bm suite.Benchmark) (Result, error) {
	log := r.opts.Logger.With("benchmark", bm.Name)
	log.Info(ctx, "running", "category", bm.Category)

	calls := make([]suite.Call, len(r.adapters))
	for i := range r.adapters {
		calls[i] = bm.Setup()
	}

	for i, b := range r.adapters {
		for range r.opts.Warmup {
			if err := calls[i](b); err != nil {
				log.Warn(ctx, "warmup call failed", "adapter", b.Name(), "err", err)
			}
		}
	}

	out := Result{
		Name:     bm.Name,
		Category: bm.Category,
		Params:   bm.Params,
		Stats:    map[string]stats.Summary{},
	}

	for i, b := range r.adapters {
		samples, failures, err := r.measure(ctx, log, b, calls[i])
		if err != nil {
			return out, err
		}
		if failures > 0 {
			if out.Failures == nil {
				out.Failures = map[string]int{}
			}
			out.Failures[b.Name()] = failures
		}
		if sum, err := stats.Durations(samples); err == nil {
			out.Stats[b.Name()] = sum
		}

		if r.opts.Memory {
			mem, err := probe(b, calls[i])
			if err != nil {
				log.Warn(ctx, "memory probe failed", "adapter", b.Name(), "err", err)
				continue
			}
			if out.Memory == nil {
				out.Memory = map[string]Memory{}
			}
			out.Memory[b.Name()] = mem
		}
	}

	if len(r.adapters) >= 2 {
		first, second := out.Stats[r.adapters[0].Name()], out.Stats[r.adapters[1].Name()]
		if sp, ok := stats.Speedup(first, second); ok {
			out.Speedup = sp
			log.Info(ctx, "done", "speedup", fmt.Sprintf("%.2fx", sp))
			return out, nil
		}
	}
	log.Info(ctx, "done")
	return out, nil
}

// measure runs the timed loop for one adapter. A failing call is counted and
// skipped.
func (r *Runner) measure(ctx context.Context, log logging.Logger, b bindings.Binding, call suite.Call) ([]time.Duration, int, error) {
	runtime.GC()
	samples := make([]time.Duration, 0, r.opts.Iterations)
	failures := 0
	for range r.opts.Iterations {
		if err := ctx.Err(); err != nil {
			return samples, failures, err
		}
		start := r.now()
		err := call(b)
		elapsed := r.now().Sub(start)
		if err != nil {
			failures++
			if failures == 1 {
				log.Warn(ctx, "call failed", "adapter", b.Name(), "err", err)
			} else {
				log.Debug(ctx, "call failed", "adapter", b.Name(), "err", err, "failures", failures)
			}
			continue
		}
		samples = append(samples, elapsed)
	}
	if failures > 0 {
		log.Warn(ctx, "failed samples skipped", "adapter", b.Name(), "failures", failures)
	}
	return samples, failures, nil
}

// probe measures the allocations of one call. A failing call yields no
// profile.
func probe(b bindings.Binding, call suite.Call) (Memory, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	err := call(b)
	runtime.ReadMemStats(&after)
	if err != nil {
		return Memory{}, err
	}
	return Memory{
		Allocated: after.TotalAlloc - before.TotalAlloc,
		Mallocs:   after.Mallocs - before.Mallocs,
		HeapDelta: int64(after.HeapInuse) - int64(before.HeapInuse),
	}, nil
}

func (r *Runner) metadata() Metadata {
	return Metadata{
		Iterations: r.opts.Iterations,
		Warmup:     r.opts.Warmup,
		Adapters:   r.Names(),
		Memory:     r.opts.Memory,
		Seed:       suite.Seed,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		CPUs:       runtime.NumCPU(),
		Started:    r.now().UTC().Format(time.RFC3339),
		Version:    r.opts.Version,
	}
}

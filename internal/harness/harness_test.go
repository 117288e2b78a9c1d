package harness

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/internal/suite"
	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T, name string) bindings.Binding {
	t.Helper()
	b, err := bindings.Open(bindings.Config{Adapter: name})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

// fakeClock advances only when a benchmark call tells it to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newRunner(t *testing.T, opts Options) (*Runner, *fakeClock) {
	t.Helper()
	r, err := New(opts, open(t, bindings.AdapterCompiled), open(t, bindings.AdapterDynamic))
	require.NoError(t, err)
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	r.now = clock.now
	return r, clock
}

func TestNewValidates(t *testing.T) {
	_, err := New(Options{Iterations: 1})
	require.ErrorIs(t, err, ErrNoAdapters)

	b := open(t, bindings.AdapterCompiled)
	_, err = New(Options{Iterations: 0}, b)
	require.ErrorIs(t, err, ErrBadOptions)
	_, err = New(Options{Iterations: 1, Warmup: -1}, b)
	require.ErrorIs(t, err, ErrBadOptions)

	_, err = New(Options{Iterations: 1}, b, open(t, bindings.AdapterCompiled))
	require.ErrorIs(t, err, ErrDuplicateAdapter)
}

func TestRunOneComputesSpeedup(t *testing.T) {
	r, clock := newRunner(t, Options{Iterations: 10, Warmup: 3})

	calls := map[string]int{}
	bm := suite.Benchmark{
		Name:     "fake",
		Category: suite.CategoryCallOverhead,
		Params:   map[string]any{"n": 1},
		Setup: func() suite.Call {
			return func(b bindings.Binding) error {
				calls[b.Name()]++
				if b.Name() == bindings.AdapterCompiled {
					clock.advance(time.Microsecond)
				} else {
					clock.advance(4 * time.Microsecond)
				}
				_, err := b.Noop(1)
				return err
			}
		},
	}

	res, err := r.RunOne(context.Background(), bm)
	require.NoError(t, err)

	assert.Equal(t, 13, calls[bindings.AdapterCompiled], "warmup plus timed")
	assert.Equal(t, 13, calls[bindings.AdapterDynamic])

	base := res.Stats[bindings.AdapterCompiled]
	assert.Equal(t, 10, base.Samples)
	assert.InDelta(t, 1e-6, base.Mean, 1e-12)
	assert.InDelta(t, 4e-6, res.Stats[bindings.AdapterDynamic].Mean, 1e-12)
	assert.InDelta(t, 4.0, res.Speedup, 1e-9)
	assert.True(t, res.HasSpeedup())
	assert.Empty(t, res.Failures)
	assert.Nil(t, res.Memory)
	assert.Equal(t, map[string]any{"n": 1}, res.Params)
}

func TestFailuresAreCountedAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithOptions(&buf, logging.Options{Level: "warn"})
	require.NoError(t, err)

	r, clock := newRunner(t, Options{Iterations: 10, Warmup: 2, Logger: logger})

	n := 0
	bm := suite.Benchmark{
		Name:     "flaky",
		Category: suite.CategoryMixed,
		Setup: func() suite.Call {
			return func(b bindings.Binding) error {
				clock.advance(time.Microsecond)
				if b.Name() != bindings.AdapterDynamic {
					return nil
				}
				n++
				if n%2 == 0 {
					return errors.New("boom")
				}
				return nil
			}
		},
	}

	res, err := r.RunOne(context.Background(), bm)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Stats[bindings.AdapterCompiled].Samples)
	assert.Equal(t, 5, res.Stats[bindings.AdapterDynamic].Samples)
	assert.Equal(t, map[string]int{bindings.AdapterDynamic: 5}, res.Failures)
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "warmup call failed")
}

func TestFailedMemoryProbeIsOmitted(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithOptions(&buf, logging.Options{Level: "warn"})
	require.NoError(t, err)

	r, _ := newRunner(t, Options{Iterations: 2, Memory: true, Logger: logger})
	bm := suite.Benchmark{
		Name:     "leaky",
		Category: suite.CategoryAllocation,
		Setup: func() suite.Call {
			return func(b bindings.Binding) error {
				if b.Name() == bindings.AdapterDynamic {
					return errors.New("no profile")
				}
				_, err := b.AllocateAndSum(64)
				return err
			}
		},
	}

	res, err := r.RunOne(context.Background(), bm)
	require.NoError(t, err)
	require.Len(t, res.Memory, 1)
	assert.Contains(t, res.Memory, bindings.AdapterCompiled)
	assert.NotContains(t, res.Memory, bindings.AdapterDynamic)
	assert.Contains(t, buf.String(), "memory probe failed")
}

func TestAllFailingAdapterHasNoStats(t *testing.T) {
	r, _ := newRunner(t, Options{Iterations: 3})
	bm := suite.Benchmark{
		Name:     "broken",
		Category: suite.CategoryMixed,
		Setup: func() suite.Call {
			return func(b bindings.Binding) error {
				if b.Name() == bindings.AdapterDynamic {
					return errors.New("always")
				}
				return nil
			}
		},
	}
	res, err := r.RunOne(context.Background(), bm)
	require.NoError(t, err)
	_, ok := res.Stats[bindings.AdapterDynamic]
	assert.False(t, ok)
	assert.False(t, res.HasSpeedup())
	assert.Equal(t, 3, res.Failures[bindings.AdapterDynamic])
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _ := newRunner(t, Options{Iterations: 100})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	count := 0
	cancelling := suite.Benchmark{
		Name:     "cancelling",
		Category: suite.CategoryMixed,
		Setup: func() suite.Call {
			return func(bindings.Binding) error {
				count++
				if count == 3 {
					cancel()
				}
				return nil
			}
		},
	}
	second := cancelling
	second.Name = "never"

	res, err := r.Run(ctx, []suite.Benchmark{cancelling, second})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, count)
	assert.Empty(t, res.Results)
}

func TestRunCatalogSubset(t *testing.T) {
	r, err := New(Options{Iterations: 3, Warmup: 1, Memory: true, Version: "test"},
		open(t, bindings.AdapterCompiled), open(t, bindings.AdapterDynamic))
	require.NoError(t, err)

	benchmarks := suite.Select(suite.Catalog(), []string{suite.CategoryCallOverhead, suite.CategoryPointer}, "")
	res, err := r.Run(context.Background(), benchmarks)
	require.NoError(t, err)
	require.Len(t, res.Results, 4)

	md := res.Metadata
	assert.Equal(t, 3, md.Iterations)
	assert.Equal(t, 1, md.Warmup)
	assert.Equal(t, []string{bindings.AdapterCompiled, bindings.AdapterDynamic}, md.Adapters)
	assert.Equal(t, bindings.AdapterCompiled, md.Baseline())
	assert.Equal(t, bindings.AdapterDynamic, md.Candidate())
	assert.Equal(t, suite.Seed, md.Seed)
	assert.Equal(t, "test", md.Version)
	assert.NotEmpty(t, md.GoVersion)

	for _, out := range res.Results {
		assert.Len(t, out.Stats, 2, out.Name)
		assert.Len(t, out.Memory, 2, out.Name)
		assert.Empty(t, out.Failures, out.Name)
	}

	list := res.Results[3]
	assert.Equal(t, "list_operations(1000)", list.Name)
	assert.Positive(t, list.Memory[bindings.AdapterCompiled].Mallocs)
}

func TestSingleAdapterHasNoSpeedup(t *testing.T) {
	r, err := New(Options{Iterations: 2}, open(t, bindings.AdapterCompiled))
	require.NoError(t, err)
	bm, ok := suite.Lookup(suite.Catalog(), "noop(42)")
	require.True(t, ok)

	res, err := r.RunOne(context.Background(), bm)
	require.NoError(t, err)
	assert.False(t, res.HasSpeedup())
	assert.Empty(t, Metadata{Adapters: r.Names()}.Candidate())
}

package conformance_test

import (
	"errors"
	"testing"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/internal/conformance"
	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openOrSkip(t *testing.T, name string) bindings.Binding {
	t.Helper()
	b, err := bindings.Open(bindings.Config{Adapter: name})
	if errors.Is(err, bindings.ErrNotBuilt) {
		t.Skipf("%s adapter not built", name)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestSuiteAgainstEveryAdapter(t *testing.T) {
	for _, name := range bindings.Adapters() {
		t.Run(name, func(t *testing.T) {
			b := openOrSkip(t, name)
			for _, c := range conformance.Cases() {
				t.Run(c.Name, func(t *testing.T) {
					o := conformance.Check(b, c)
					assert.True(t, o.Passed, o.Detail)
				})
			}
		})
	}
}

func TestAdaptersAreEquivalent(t *testing.T) {
	adapters := bindings.Adapters()
	for i := 0; i < len(adapters); i++ {
		for j := i + 1; j < len(adapters); j++ {
			first, second := adapters[i], adapters[j]
			t.Run(first+"_vs_"+second, func(t *testing.T) {
				a := openOrSkip(t, first)
				b := openOrSkip(t, second)
				for _, m := range conformance.Equivalent(a, b, conformance.Cases()) {
					t.Errorf("%s: %s", m.Case, m.Detail)
				}
			})
		}
	}
}

func TestCheckReportsFailures(t *testing.T) {
	b := openOrSkip(t, bindings.AdapterCompiled)

	wrong := conformance.Case{
		Name: "noop/wrong",
		Call: func(b bindings.Binding) (any, error) { return b.Noop(1) },
		Want: int32(2),
	}
	o := conformance.Check(b, wrong)
	assert.False(t, o.Passed)
	assert.Contains(t, o.Detail, "want 2")

	missingErr := conformance.Case{
		Name:    "noop/error",
		Call:    func(b bindings.Binding) (any, error) { return b.Noop(1) },
		WantErr: benchlib.ErrOutOfDomain,
	}
	o = conformance.Check(b, missingErr)
	assert.False(t, o.Passed)

	tolerant := conformance.Case{
		Name:    "sum/tolerance",
		Call:    func(b bindings.Binding) (any, error) { return b.SumArray([]float64{0.1, 0.2}) },
		Want:    0.3,
		Compare: conformance.Tolerance,
		Tol:     1e-12,
	}
	assert.True(t, conformance.Check(b, tolerant).Passed)

	failed := conformance.Failures(conformance.Run(b, []conformance.Case{wrong, tolerant}))
	require.Len(t, failed, 1)
	assert.Equal(t, "noop/wrong", failed[0].Case)
}

func TestClosedBindingFailsSuite(t *testing.T) {
	b, err := bindings.Open(bindings.Config{Adapter: bindings.AdapterDynamic})
	require.NoError(t, err)
	require.NoError(t, b.Close())

	outcomes := conformance.Run(b, conformance.Cases())
	failed := conformance.Failures(outcomes)
	assert.NotEmpty(t, failed)
	for _, o := range failed {
		if o.Err != nil {
			assert.ErrorIs(t, o.Err, bindings.ErrClosed)
		}
	}
}

func TestCompareString(t *testing.T) {
	assert.Equal(t, "exact", conformance.Exact.String())
	assert.Equal(t, "statistical", conformance.Statistical.String())
}

package ffibench_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDefaultsToCompiled(t *testing.T) {
	lib, err := ffibench.Open(ffibench.Config{})
	require.NoError(t, err)
	defer lib.Close()

	assert.Equal(t, ffibench.AdapterCompiled, lib.Adapter())
	b, err := lib.Binding()
	require.NoError(t, err)
	got, err := b.AddNumbers(2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(5), got)
}

func TestOpenEveryAdapter(t *testing.T) {
	for _, name := range ffibench.Adapters() {
		t.Run(name, func(t *testing.T) {
			lib, err := ffibench.Open(ffibench.Config{Adapter: name})
			if errors.Is(err, ffibench.ErrNotBuilt) {
				t.Skipf("%s adapter not built", name)
			}
			require.NoError(t, err)
			assert.Equal(t, name, lib.Config().Adapter)

			failed, err := lib.Verify()
			require.NoError(t, err)
			for _, o := range failed {
				t.Errorf("%s: %s", o.Case, o.Detail)
			}
			require.NoError(t, lib.Close())
		})
	}
}

func TestOpenUnknownAdapter(t *testing.T) {
	lib, err := ffibench.Open(ffibench.Config{Adapter: "ctypes"})
	require.ErrorIs(t, err, ffibench.ErrUnknownAdapter)
	require.ErrorIs(t, err, bindings.ErrUnknownAdapter)
	assert.Nil(t, lib)
}

func TestCloseTwice(t *testing.T) {
	lib, err := ffibench.Open(ffibench.Config{Adapter: ffibench.AdapterDynamic})
	require.NoError(t, err)
	require.NoError(t, lib.Close())
	require.ErrorIs(t, lib.Close(), ffibench.ErrLibraryClosed)

	_, err = lib.Binding()
	require.ErrorIs(t, err, ffibench.ErrLibraryClosed)
	_, err = lib.Verify()
	require.ErrorIs(t, err, ffibench.ErrLibraryClosed)

	var nilLib *ffibench.Library
	assert.NoError(t, nilLib.Close())
	assert.Empty(t, nilLib.Adapter())
}

func TestRemapError(t *testing.T) {
	assert.NoError(t, ffibench.RemapError(nil))

	tests := []struct {
		in   error
		want error
	}{
		{bindings.ErrClosed, ffibench.ErrLibraryClosed},
		{bindings.ErrNotBuilt, ffibench.ErrNotBuilt},
		{fmt.Errorf("open: %w", bindings.ErrUnknownAdapter), ffibench.ErrUnknownAdapter},
		{bindings.ErrSymbolNotFound, ffibench.ErrBindingFailed},
		{bindings.ErrSignatureMismatch, ffibench.ErrBindingFailed},
	}
	for _, tc := range tests {
		got := ffibench.RemapError(tc.in)
		assert.ErrorIs(t, got, tc.want)
		assert.ErrorIs(t, got, tc.in, "original stays in the chain")
		assert.Equal(t, got, ffibench.RemapError(got), "remapping is idempotent")
	}

	lib := fmt.Errorf("wrapped: %w", benchlib.ErrNegativeSize)
	assert.Equal(t, lib, ffibench.RemapError(lib))
}

func TestWrapperVersion(t *testing.T) {
	assert.NotEmpty(t, ffibench.WrapperVersion())

	old := ffibench.Version
	t.Cleanup(func() { ffibench.Version = old })
	ffibench.Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", ffibench.WrapperVersion())
}

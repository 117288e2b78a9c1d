//go:build cgo && !windows

package bindings

import (
	"testing"
	"unsafe"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataPointLayoutMatchesC(t *testing.T) {
	var dp benchlib.DataPoint
	size, value, name := cDataPointLayout()
	assert.Equal(t, unsafe.Sizeof(dp), size)
	assert.Equal(t, unsafe.Offsetof(dp.Value), value)
	assert.Equal(t, unsafe.Offsetof(dp.Name), name)
}

func TestStatusRoundTrip(t *testing.T) {
	sentinels := []error{
		benchlib.ErrNegativeSize,
		benchlib.ErrLengthMismatch,
		benchlib.ErrAliased,
		benchlib.ErrOutOfDomain,
		benchlib.ErrNilPointer,
		benchlib.ErrReleased,
		benchlib.ErrUnterminated,
		benchlib.ErrNameTooLong,
		benchlib.ErrInvalidStride,
		ErrBadHandle,
	}
	for _, e := range sentinels {
		require.ErrorIs(t, errorOf(statusOf(e)), e)
	}
	require.NoError(t, errorOf(statusOf(nil)))
	require.ErrorIs(t, errorOf(99), errUnknownStatus)
}

func TestCGOHandlesReleased(t *testing.T) {
	b, err := openCGO()
	require.NoError(t, err)
	defer b.Close()

	before := cobjects.len()
	sum, err := b.ListOperations(100)
	require.NoError(t, err)
	assert.Equal(t, int64(4950), sum)

	total, err := b.AllocateAndSum(10)
	require.NoError(t, err)
	assert.Equal(t, 45.0, total)
	assert.Equal(t, before, cobjects.len())
}

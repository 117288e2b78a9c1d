package benchlib_test

import (
	"testing"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateArray(t *testing.T) {
	arr, err := benchlib.AllocateArray(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, arr.Data())
	assert.Equal(t, 10.0, benchlib.SumArray(arr.Data()))

	require.NoError(t, arr.Free())
	assert.Nil(t, arr.Data())
	assert.Equal(t, 0, arr.Len())
	require.ErrorIs(t, arr.Free(), benchlib.ErrReleased)

	empty, err := benchlib.AllocateArray(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = benchlib.AllocateArray(-1)
	require.ErrorIs(t, err, benchlib.ErrNegativeSize)
}

func TestListSumClosedForm(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 1000, 100000} {
		l, err := benchlib.CreateList(n)
		require.NoError(t, err)
		require.Equal(t, n, l.Len())

		sum, err := benchlib.SumList(l)
		require.NoError(t, err)
		assert.Equal(t, int64(n)*int64(n-1)/2, sum, "n=%d", n)
		require.NoError(t, l.Free())
	}
}

func TestListOrder(t *testing.T) {
	l, err := benchlib.CreateList(4)
	require.NoError(t, err)
	defer l.Free()

	var got []int32
	require.NoError(t, l.Walk(func(p int32) { got = append(got, p) }))
	assert.Equal(t, []int32{0, 1, 2, 3}, got)
}

func TestListRelease(t *testing.T) {
	l, err := benchlib.CreateList(3)
	require.NoError(t, err)
	require.NoError(t, l.Free())

	_, err = benchlib.SumList(l)
	require.ErrorIs(t, err, benchlib.ErrReleased)
	require.ErrorIs(t, l.Free(), benchlib.ErrReleased)
	assert.Equal(t, 0, l.Len())

	sum, err := benchlib.SumList(nil)
	require.NoError(t, err)
	assert.Zero(t, sum)

	_, err = benchlib.CreateList(-2)
	require.ErrorIs(t, err, benchlib.ErrNegativeSize)
}

package benchlib_test

import (
	"math"
	"testing"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonteCarloPi(t *testing.T) {
	est, err := benchlib.MonteCarloPi(200000)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, est, 0.05)

	_, err = benchlib.MonteCarloPi(0)
	require.ErrorIs(t, err, benchlib.ErrOutOfDomain)
}

func TestMonteCarloPiSeeded(t *testing.T) {
	a, err := benchlib.MonteCarloPiSeeded(10000, 7)
	require.NoError(t, err)
	b, err := benchlib.MonteCarloPiSeeded(10000, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	one, err := benchlib.MonteCarloPiSeeded(1, 7)
	require.NoError(t, err)
	assert.Contains(t, []float64{0, 4}, one)
}

func TestBlurArray(t *testing.T) {
	const w, h = 4, 3
	flat := make([]float64, w*h)
	for i := range flat {
		flat[i] = 7
	}
	out := make([]float64, w*h)
	require.NoError(t, benchlib.BlurArray(flat, out, w, h))
	for i, v := range out {
		assert.InDelta(t, 7.0, v, 1e-12, "pixel %d", i)
	}

	// A single bright corner pixel is counted four times by its own clamped
	// neighbourhood.
	in := make([]float64, w*h)
	in[0] = 9
	require.NoError(t, benchlib.BlurArray(in, out, w, h))
	assert.InDelta(t, 4.0, out[0], 1e-12)
	assert.InDelta(t, 2.0, out[1], 1e-12)
	assert.InDelta(t, 1.0, out[w+1], 1e-12)
	assert.InDelta(t, 0.0, out[3], 1e-12)

	require.ErrorIs(t, benchlib.BlurArray(in, out[:5], w, h), benchlib.ErrLengthMismatch)
	require.ErrorIs(t, benchlib.BlurArray(in, in, w, h), benchlib.ErrAliased)
	require.ErrorIs(t, benchlib.BlurArray(in, out, -1, h), benchlib.ErrNegativeSize)
	require.ErrorIs(t, benchlib.BlurArray(nil, nil, math.MaxInt/3, 4), benchlib.ErrOutOfDomain)
	require.ErrorIs(t, benchlib.BlurArray(nil, nil, math.MaxInt, 2), benchlib.ErrOutOfDomain)
	require.NoError(t, benchlib.BlurArray(nil, nil, 0, math.MaxInt))

	arena := make([]float64, 2*w*h)
	copy(arena, in)
	require.NoError(t, benchlib.BlurArray(arena[:w*h], arena[w*h:], w, h))
	assert.InDelta(t, 4.0, arena[w*h], 1e-12)
	require.ErrorIs(t, benchlib.BlurArray(arena[:w*h], arena[1:w*h+1], w, h), benchlib.ErrAliased)
}

func TestBufferTransforms(t *testing.T) {
	buf := []byte{0, 1, 242, 243, 255}
	orig := append([]byte(nil), buf...)
	benchlib.ProcessBuffer(buf)
	assert.Equal(t, []byte{13, 14, 255, 0, 12}, buf)
	benchlib.RestoreBuffer(buf)
	assert.Equal(t, orig, buf)
}

func TestChecksum(t *testing.T) {
	assert.Zero(t, benchlib.Checksum(nil))
	assert.Equal(t, uint32(6), benchlib.Checksum([]byte{1, 2, 3}))

	buf := make([]byte, 100000)
	for i := range buf {
		buf[i] = byte(i)
	}
	base := benchlib.Checksum(buf)
	buf[500]++
	assert.NotEqual(t, base, benchlib.Checksum(buf))
}

func TestBitwise(t *testing.T) {
	assert.Equal(t, int32(0), benchlib.Popcount(0))
	assert.Equal(t, int32(32), benchlib.Popcount(0xFFFFFFFF))
	assert.Equal(t, int32(2), benchlib.Popcount(0b1010))

	assert.Zero(t, benchlib.BitwiseReduce(nil))
	assert.Equal(t, uint32(0b110), benchlib.BitwiseReduce([]uint32{0b011, 0b101}))
	assert.Zero(t, benchlib.BitwiseReduce([]uint32{0xDEADBEEF, 0xDEADBEEF}))
}

package benchlib_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sieve(limit int) []bool {
	composite := make([]bool, limit+1)
	composite[0], composite[1] = true, true
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return composite
}

func TestIsPrimeMatchesSieve(t *testing.T) {
	limit := 1_000_000
	if testing.Short() {
		limit = 10_000
	}
	composite := sieve(limit)
	for n := 0; n <= limit; n++ {
		if benchlib.IsPrime(int64(n)) == composite[n] {
			t.Fatalf("IsPrime(%d) = %v", n, !composite[n])
		}
	}
}

func TestCountPrimesMatchesSieve(t *testing.T) {
	composite := sieve(10_000)
	var want int32
	for n := 1; n <= 10_000; n++ {
		if !composite[n] {
			want++
		}
	}
	assert.Equal(t, want, benchlib.CountPrimes(1, 10_000))
	assert.Equal(t, int32(1229), want)
}

func randomMatrix(r *rand.Rand, n int) []float64 {
	m := make([]float64, n*n)
	for i := range m {
		m[i] = float64(r.IntN(11) - 5)
	}
	return m
}

func mul(t *testing.T, a, b []float64, n int) []float64 {
	t.Helper()
	c := make([]float64, n*n)
	require.NoError(t, benchlib.MatrixMultiply(a, b, c, n))
	return c
}

func TestMatrixMultiplyAssociative(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for n := 1; n <= 6; n++ {
		a, b, c := randomMatrix(r, n), randomMatrix(r, n), randomMatrix(r, n)
		// Small integer entries keep every product exact.
		assert.Equal(t, mul(t, mul(t, a, b, n), c, n), mul(t, a, mul(t, b, c, n), n), "n=%d", n)
	}
}

func TestSumStridedUnitStride(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	arr := make([]float64, 257)
	for i := range arr {
		arr[i] = float64(r.IntN(1000))
	}
	got, err := benchlib.SumStrided(arr, 1)
	require.NoError(t, err)
	assert.Equal(t, benchlib.SumArray(arr), got)
}

func TestStringConcatLength(t *testing.T) {
	for _, tc := range []struct{ a, b string }{
		{"", ""},
		{"a", ""},
		{"", "b"},
		{strings.Repeat("x", 100), strings.Repeat("y", 100)},
	} {
		joined, err := benchlib.StringConcat([]byte(tc.a+"\x00"), []byte(tc.b+"\x00"))
		require.NoError(t, err)
		n, err := benchlib.StringLength(joined.Terminated())
		require.NoError(t, err)
		assert.Equal(t, len(tc.a)+len(tc.b), n)
		require.NoError(t, joined.Free())
	}
}

func TestBufferRoundTrip(t *testing.T) {
	buf := make([]byte, 512)
	for i := range buf {
		buf[i] = byte(i)
	}
	orig := append([]byte(nil), buf...)
	benchlib.ProcessBuffer(buf)
	assert.NotEqual(t, orig, buf)
	benchlib.RestoreBuffer(buf)
	assert.Equal(t, orig, buf)
}

package conformance

import (
	"math"
	"strings"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
)

// mathTol bounds cross-platform differences of transcendental functions.
const mathTol = 1e-9

type binding = bindings.Binding

func wrap[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func inPlace(arr []float64, f func([]float64) error) (any, error) {
	if err := f(arr); err != nil {
		return nil, err
	}
	return arr, nil
}

func identity(n int) []float64 {
	m := make([]float64, n*n)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
	return m
}

// Cases returns a fresh copy of the suite. Inputs are rebuilt on every call
// so in-place cases cannot leak state between adapters.
func Cases() []Case {
	a2 := []float64{1, 2, 3, 4}
	b2 := []float64{5, 6, 7, 8}
	m3 := []float64{2, -1, 0, 1, 3, 1, 0.5, 0, 4}

	return []Case{
		// Function call overhead.
		{Name: "noop", Call: func(b binding) (any, error) { return wrap(b.Noop(42)) }, Want: int32(42)},
		{Name: "add_numbers", Call: func(b binding) (any, error) { return wrap(b.AddNumbers(100, 200)) }, Want: int32(300)},
		{Name: "add_numbers/wrap", Call: func(b binding) (any, error) { return wrap(b.AddNumbers(math.MaxInt32, 1)) }, Want: int32(math.MinInt32)},
		{Name: "calculate_simple", Call: func(b binding) (any, error) { return wrap(b.CalculateSimple(1, 2.5, 3, 4.5)) }, Want: -5.25},

		// Compute.
		{Name: "fibonacci_recursive/20", Call: func(b binding) (any, error) { return wrap(b.FibonacciRecursive(20)) }, Want: int64(6765)},
		{Name: "fibonacci_recursive/0", Call: func(b binding) (any, error) { return wrap(b.FibonacciRecursive(0)) }, Want: int64(0)},
		{Name: "fibonacci_iterative/90", Call: func(b binding) (any, error) { return wrap(b.FibonacciIterative(90)) }, Want: int64(2880067194370816120)},
		{Name: "fibonacci_iterative/max", Call: func(b binding) (any, error) { return wrap(b.FibonacciIterative(benchlib.MaxFibonacciN)) }, Want: int64(7540113804746346429)},
		{Name: "fibonacci_iterative/negative", Call: func(b binding) (any, error) { return wrap(b.FibonacciIterative(-1)) }, WantErr: benchlib.ErrNegativeSize},
		{Name: "fibonacci_recursive/overflow", Call: func(b binding) (any, error) { return wrap(b.FibonacciRecursive(benchlib.MaxFibonacciN + 1)) }, WantErr: benchlib.ErrOutOfDomain},
		{Name: "is_prime/1000003", Call: func(b binding) (any, error) { return wrap(b.IsPrime(1000003)) }, Want: true},
		{Name: "is_prime/1", Call: func(b binding) (any, error) { return wrap(b.IsPrime(1)) }, Want: false},
		{Name: "is_prime/negative", Call: func(b binding) (any, error) { return wrap(b.IsPrime(-13)) }, Want: false},
		{Name: "count_primes/1-10000", Call: func(b binding) (any, error) { return wrap(b.CountPrimes(1, 10000)) }, Want: int32(1229)},
		{Name: "count_primes/inverted", Call: func(b binding) (any, error) { return wrap(b.CountPrimes(5, 2)) }, Want: int32(0)},
		{Name: "matrix_multiply/2x2", Call: func(b binding) (any, error) { return wrap(b.MatrixMultiply(a2, b2, 2)) }, Want: []float64{19, 22, 43, 50}},
		{Name: "matrix_multiply/identity", Call: func(b binding) (any, error) { return wrap(b.MatrixMultiply(m3, identity(3), 3)) }, Want: append([]float64(nil), m3...)},
		{Name: "matrix_multiply/empty", Call: func(b binding) (any, error) { return wrap(b.MatrixMultiply(nil, nil, 0)) }, Want: []float64{}},
		{Name: "matrix_multiply/short", Call: func(b binding) (any, error) { return wrap(b.MatrixMultiply(a2[:3], b2, 2)) }, WantErr: benchlib.ErrLengthMismatch},
		{Name: "matrix_multiply/negative", Call: func(b binding) (any, error) { return wrap(b.MatrixMultiply(nil, nil, -1)) }, WantErr: benchlib.ErrNegativeSize},
		{Name: "matrix_multiply/overflow", Call: func(b binding) (any, error) { return wrap(b.MatrixMultiply(nil, nil, int(math.Sqrt(math.MaxInt))+1)) }, WantErr: benchlib.ErrOutOfDomain},
		{Name: "compute_math_intensive", Call: func(b binding) (any, error) { return wrap(b.ComputeMathIntensive(1.5, 10000)) }, Want: mathReference(1.5, 10000), Compare: Tolerance, Tol: mathTol},
		{Name: "compute_math_intensive/negative", Call: func(b binding) (any, error) { return wrap(b.ComputeMathIntensive(1.5, -1)) }, WantErr: benchlib.ErrNegativeSize},

		// Arrays.
		{Name: "sum_array", Call: func(b binding) (any, error) { return wrap(b.SumArray([]float64{1, 2, 3, 4})) }, Want: 10.0},
		{Name: "sum_array/empty", Call: func(b binding) (any, error) { return wrap(b.SumArray(nil)) }, Want: 0.0},
		{Name: "scale_array", Call: func(b binding) (any, error) {
			return inPlace([]float64{1, -2, 3}, func(a []float64) error { return b.ScaleArray(a, 2.5) })
		}, Want: []float64{2.5, -5, 7.5}},
		{Name: "copy_array", Call: func(b binding) (any, error) { return wrap(b.CopyArray([]float64{4, 5, 6})) }, Want: []float64{4, 5, 6}},
		{Name: "dot_product/orthogonal", Call: func(b binding) (any, error) { return wrap(b.DotProduct([]float64{1, 0, 0}, []float64{0, 1, 0})) }, Want: 0.0},
		{Name: "dot_product/self", Call: func(b binding) (any, error) { return wrap(b.DotProduct([]float64{1, 2, 3}, []float64{1, 2, 3})) }, Want: 14.0},
		{Name: "dot_product/mismatch", Call: func(b binding) (any, error) { return wrap(b.DotProduct([]float64{1}, []float64{1, 2})) }, WantErr: benchlib.ErrLengthMismatch},
		{Name: "array_reverse", Call: func(b binding) (any, error) { return inPlace([]float64{1, 2, 3, 4, 5}, b.ArrayReverse) }, Want: []float64{5, 4, 3, 2, 1}},
		{Name: "array_reverse/twice", Call: func(b binding) (any, error) {
			return inPlace([]float64{1, 2, 3, 4}, func(a []float64) error {
				if err := b.ArrayReverse(a); err != nil {
					return err
				}
				return b.ArrayReverse(a)
			})
		}, Want: []float64{1, 2, 3, 4}},
		{Name: "array_reverse/single", Call: func(b binding) (any, error) { return inPlace([]float64{7}, b.ArrayReverse) }, Want: []float64{7}},
		{Name: "sum_strided/1", Call: func(b binding) (any, error) { return wrap(b.SumStrided([]float64{1, 2, 3, 4}, 1)) }, Want: 10.0},
		{Name: "sum_strided/3", Call: func(b binding) (any, error) { return wrap(b.SumStrided([]float64{1, 2, 3, 4, 5, 6, 7}, 3)) }, Want: 12.0},
		{Name: "sum_strided/wide", Call: func(b binding) (any, error) { return wrap(b.SumStrided([]float64{9, 2, 3}, 50)) }, Want: 9.0},
		{Name: "sum_strided/zero", Call: func(b binding) (any, error) { return wrap(b.SumStrided([]float64{1}, 0)) }, WantErr: benchlib.ErrInvalidStride},

		// Marshalling.
		{Name: "string_length", Call: func(b binding) (any, error) { return wrap(b.StringLength(strings.Repeat("x", 150))) }, Want: 150},
		{Name: "string_length/empty", Call: func(b binding) (any, error) { return wrap(b.StringLength("")) }, Want: 0},
		{Name: "string_concat", Call: func(b binding) (any, error) {
			return wrap(b.StringConcat(strings.Repeat("a", 100), strings.Repeat("b", 100)))
		}, Want: strings.Repeat("a", 100) + strings.Repeat("b", 100)},
		{Name: "string_concat/empty", Call: func(b binding) (any, error) { return wrap(b.StringConcat("", "tail")) }, Want: "tail"},
		{Name: "process_datapoint", Call: func(b binding) (any, error) {
			return wrap(b.ProcessDataPoint(bindings.Point{ID: 42, Value: 3.14, Name: "test"}))
		}, Want: 131.88, Compare: Tolerance, Tol: 1e-9},
		{Name: "process_datapoint/long_name", Call: func(b binding) (any, error) {
			return wrap(b.ProcessDataPoint(bindings.Point{ID: 1, Value: 1, Name: strings.Repeat("n", 40)}))
		}, WantErr: benchlib.ErrNameTooLong},
		{Name: "sum_datapoints/empty", Call: func(b binding) (any, error) { return wrap(b.SumDataPoints(nil)) }, Want: 0.0},
		{Name: "sum_datapoints/one", Call: func(b binding) (any, error) {
			return wrap(b.SumDataPoints([]bindings.Point{{ID: 42, Value: 3.14, Name: "test"}}))
		}, Want: 131.88, Compare: Tolerance, Tol: 1e-9},
		{Name: "sum_datapoints/100", Call: func(b binding) (any, error) { return wrap(b.SumDataPoints(points(100))) }, Want: pointsSum(100), Compare: Tolerance, Tol: 1e-6},

		// Mixed workloads.
		{Name: "monte_carlo_pi", Call: func(b binding) (any, error) { return wrap(b.MonteCarloPi(1_000_000)) }, Want: math.Pi, Compare: Statistical, Tol: 0.05},
		{Name: "monte_carlo_pi/zero", Call: func(b binding) (any, error) { return wrap(b.MonteCarloPi(0)) }, WantErr: benchlib.ErrOutOfDomain},
		{Name: "blur_array/flat", Call: func(b binding) (any, error) { return wrap(b.BlurArray([]float64{2, 2, 2, 2, 2, 2}, 3, 2)) }, Want: []float64{2, 2, 2, 2, 2, 2}, Compare: Tolerance, Tol: 1e-12},
		{Name: "blur_array/corner", Call: func(b binding) (any, error) { return wrap(b.BlurArray([]float64{9, 0, 0, 0}, 2, 2)) }, Want: []float64{4, 2, 2, 1}, Compare: Tolerance, Tol: 1e-12},
		{Name: "blur_array/shape", Call: func(b binding) (any, error) { return wrap(b.BlurArray([]float64{1, 2, 3}, 2, 2)) }, WantErr: benchlib.ErrLengthMismatch},
		{Name: "blur_array/overflow", Call: func(b binding) (any, error) { return wrap(b.BlurArray(nil, math.MaxInt/3, 4)) }, WantErr: benchlib.ErrOutOfDomain},
		{Name: "sort_array", Call: func(b binding) (any, error) { return inPlace([]float64{3, 1, 2}, b.SortArray) }, Want: []float64{1, 2, 3}},

		// Ownership and callbacks.
		{Name: "allocate_and_sum", Call: func(b binding) (any, error) { return wrap(b.AllocateAndSum(100000)) }, Want: float64(100000) * 99999 / 2},
		{Name: "allocate_and_sum/empty", Call: func(b binding) (any, error) { return wrap(b.AllocateAndSum(0)) }, Want: 0.0},
		{Name: "allocate_and_sum/negative", Call: func(b binding) (any, error) { return wrap(b.AllocateAndSum(-1)) }, WantErr: benchlib.ErrNegativeSize},
		{Name: "apply_operation", Call: func(b binding) (any, error) { return wrap(b.ApplyOperation(1.0, 3)) }, Want: ((1.0*1.1+0.5)*1.1+0.5)*1.1 + 0.5, Compare: Tolerance, Tol: 1e-12},

		// Buffers, pointers and bits.
		{Name: "process_buffer", Call: func(b binding) (any, error) {
			buf := []byte{0, 100, 243, 255}
			if err := b.ProcessBuffer(buf); err != nil {
				return nil, err
			}
			return buf, nil
		}, Want: []byte{13, 113, 0, 12}},
		{Name: "checksum", Call: func(b binding) (any, error) { return wrap(b.Checksum([]byte{1, 2, 3, 250})) }, Want: uint32(256)},
		{Name: "checksum/empty", Call: func(b binding) (any, error) { return wrap(b.Checksum(nil)) }, Want: uint32(0)},
		{Name: "list_operations/0", Call: func(b binding) (any, error) { return wrap(b.ListOperations(0)) }, Want: int64(0)},
		{Name: "list_operations/1000", Call: func(b binding) (any, error) { return wrap(b.ListOperations(1000)) }, Want: int64(499500)},
		{Name: "list_operations/negative", Call: func(b binding) (any, error) { return wrap(b.ListOperations(-5)) }, WantErr: benchlib.ErrNegativeSize},
		{Name: "popcount/0", Call: func(b binding) (any, error) { return wrap(b.Popcount(0)) }, Want: int32(0)},
		{Name: "popcount/all", Call: func(b binding) (any, error) { return wrap(b.Popcount(0xFFFFFFFF)) }, Want: int32(32)},
		{Name: "bitwise_reduce", Call: func(b binding) (any, error) { return wrap(b.BitwiseReduce([]uint32{0xF0, 0x0F, 0xFF})) }, Want: uint32(0)},
		{Name: "bitwise_reduce/empty", Call: func(b binding) (any, error) { return wrap(b.BitwiseReduce(nil)) }, Want: uint32(0)},
	}
}

func points(n int) []bindings.Point {
	ps := make([]bindings.Point, n)
	for i := range ps {
		ps[i] = bindings.Point{ID: int32(i), Value: float64(i) * 0.5, Name: "point"}
	}
	return ps
}

func pointsSum(n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(i) * float64(i) * 0.5
	}
	return sum
}

func mathReference(x float64, iterations int32) float64 {
	v, err := benchlib.ComputeMathIntensive(x, iterations)
	if err != nil {
		panic(err)
	}
	return v
}

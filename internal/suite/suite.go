// Package suite holds the benchmark catalog: every workload the harness
// times, grouped by category, with inputs drawn from a fixed-seed generator.
package suite

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
)

// Categories, in report order.
const (
	CategoryCallOverhead = "Function Call Overhead"
	CategoryCompute      = "Compute-Intensive"
	CategoryMemory       = "Memory-Intensive"
	CategoryMarshalling  = "Data Marshalling"
	CategoryMixed        = "Mixed Workload"
	CategoryAllocation   = "Memory Allocation"
	CategoryCallback     = "Callback Simulation"
	CategoryBuffer       = "Buffer Processing"
	CategoryPointer      = "Pointer-Intensive"
	CategoryBitwise      = "Bitwise Operations"
)

// Seed drives every generated input.
const Seed uint64 = 0x5eed_f1b0

// Categories returns the category names in report order.
func Categories() []string {
	return []string{
		CategoryCallOverhead,
		CategoryCompute,
		CategoryMemory,
		CategoryMarshalling,
		CategoryMixed,
		CategoryAllocation,
		CategoryCallback,
		CategoryBuffer,
		CategoryPointer,
		CategoryBitwise,
	}
}

// Call is one timed invocation against a binding.
type Call func(b bindings.Binding) error

// Benchmark describes one catalog entry. Setup builds fresh inputs and
// returns the call that uses them; the harness runs Setup once per adapter so
// that in-place workloads never see another adapter's output.
type Benchmark struct {
	Name     string
	Category string
	Params   map[string]any
	Setup    func() Call
}

// Catalog returns every benchmark in category order.
func Catalog() []Benchmark {
	var out []Benchmark
	out = append(out, callOverhead()...)
	out = append(out, compute()...)
	out = append(out, memory()...)
	out = append(out, marshalling()...)
	out = append(out, mixed()...)
	out = append(out, allocation()...)
	out = append(out, callback()...)
	out = append(out, buffers()...)
	out = append(out, pointers()...)
	out = append(out, bitwise()...)
	return out
}

// Select keeps the benchmarks whose category is in categories (all when
// empty) and whose name contains filter. Both matches ignore case.
func Select(benchmarks []Benchmark, categories []string, filter string) []Benchmark {
	filter = strings.ToLower(filter)
	var out []Benchmark
	for _, bm := range benchmarks {
		if len(categories) > 0 && !slices.ContainsFunc(categories, func(c string) bool {
			return strings.EqualFold(strings.TrimSpace(c), bm.Category)
		}) {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(bm.Name), filter) {
			continue
		}
		out = append(out, bm)
	}
	return out
}

// Lookup returns the benchmark with the given name.
func Lookup(benchmarks []Benchmark, name string) (Benchmark, bool) {
	i := slices.IndexFunc(benchmarks, func(bm Benchmark) bool { return bm.Name == name })
	if i < 0 {
		return Benchmark{}, false
	}
	return benchmarks[i], true
}

func fixed(call Call) func() Call {
	return func() Call { return call }
}

func ignore[T any](_ T, err error) error { return err }

// rng returns a generator for one benchmark's inputs. Mixing in the label
// keeps inputs independent of catalog order.
func rng(label string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(label))
	return rand.New(rand.NewPCG(Seed, h.Sum64()))
}

func randomDoubles(label string, n int) []float64 {
	r := rng(label)
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}

func randomBytes(label string, n int) []byte {
	r := rng(label)
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.UintN(256))
	}
	return out
}

func randomUint32s(label string, n int) []uint32 {
	r := rng(label)
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Uint32()
	}
	return out
}

func callOverhead() []Benchmark {
	return []Benchmark{
		{
			Name:     "noop(42)",
			Category: CategoryCallOverhead,
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.Noop(42))
			}),
		},
		{
			Name:     "add_numbers(100, 200)",
			Category: CategoryCallOverhead,
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.AddNumbers(100, 200))
			}),
		},
		{
			Name:     "calculate_simple(1, 2.5, 3, 4.5)",
			Category: CategoryCallOverhead,
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.CalculateSimple(1, 2.5, 3, 4.5))
			}),
		},
	}
}

func compute() []Benchmark {
	const size = 50
	return []Benchmark{
		{
			Name:     "fibonacci_recursive(20)",
			Category: CategoryCompute,
			Params:   map[string]any{"n": 20},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.FibonacciRecursive(20))
			}),
		},
		{
			Name:     "fibonacci_iterative(90)",
			Category: CategoryCompute,
			Params:   map[string]any{"n": 90},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.FibonacciIterative(90))
			}),
		},
		{
			Name:     "is_prime(1000003)",
			Category: CategoryCompute,
			Params:   map[string]any{"n": 1000003},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.IsPrime(1000003))
			}),
		},
		{
			Name:     "count_primes(1, 10000)",
			Category: CategoryCompute,
			Params:   map[string]any{"range": []int{1, 10000}},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.CountPrimes(1, 10000))
			}),
		},
		{
			Name:     fmt.Sprintf("matrix_multiply(%dx%d)", size, size),
			Category: CategoryCompute,
			Params:   map[string]any{"size": size},
			Setup: func() Call {
				a := randomDoubles("matrix_multiply/a", size*size)
				m := randomDoubles("matrix_multiply/b", size*size)
				return func(b bindings.Binding) error {
					return ignore(b.MatrixMultiply(a, m, size))
				}
			},
		},
		{
			Name:     "compute_math_intensive(1.5, 10000)",
			Category: CategoryCompute,
			Params:   map[string]any{"iterations": 10000},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.ComputeMathIntensive(1.5, 10000))
			}),
		},
	}
}

func memory() []Benchmark {
	const size = 100000
	var out []Benchmark
	for _, n := range []int{1000, 10000, 100000} {
		out = append(out, Benchmark{
			Name:     fmt.Sprintf("sum_array(size=%d)", n),
			Category: CategoryMemory,
			Params:   map[string]any{"size": n},
			Setup: func() Call {
				arr := randomDoubles("sum_array", n)
				return func(b bindings.Binding) error {
					return ignore(b.SumArray(arr))
				}
			},
		})
	}
	out = append(out,
		Benchmark{
			Name:     "scale_array(size=100000)",
			Category: CategoryMemory,
			Params:   map[string]any{"size": size, "factor": 2.5},
			Setup: func() Call {
				arr := randomDoubles("array", size)
				return func(b bindings.Binding) error {
					return b.ScaleArray(arr, 2.5)
				}
			},
		},
		Benchmark{
			Name:     "copy_array(size=100000)",
			Category: CategoryMemory,
			Params:   map[string]any{"size": size},
			Setup: func() Call {
				arr := randomDoubles("array", size)
				return func(b bindings.Binding) error {
					return ignore(b.CopyArray(arr))
				}
			},
		},
		Benchmark{
			Name:     "dot_product(size=100000)",
			Category: CategoryMemory,
			Params:   map[string]any{"size": size},
			Setup: func() Call {
				x := randomDoubles("dot_product/a", size)
				y := randomDoubles("dot_product/b", size)
				return func(b bindings.Binding) error {
					return ignore(b.DotProduct(x, y))
				}
			},
		},
		Benchmark{
			Name:     "array_reverse(size=100000)",
			Category: CategoryMemory,
			Params:   map[string]any{"size": size},
			Setup: func() Call {
				arr := randomDoubles("array", size)
				return func(b bindings.Binding) error {
					return b.ArrayReverse(arr)
				}
			},
		},
	)
	for _, stride := range []int{1, 10, 100} {
		out = append(out, Benchmark{
			Name:     fmt.Sprintf("sum_strided(stride=%d)", stride),
			Category: CategoryMemory,
			Params:   map[string]any{"size": size, "stride": stride},
			Setup: func() Call {
				arr := randomDoubles("array", size)
				return func(b bindings.Binding) error {
					return ignore(b.SumStrided(arr, stride))
				}
			},
		})
	}
	return out
}

func marshalling() []Benchmark {
	text := strings.Repeat("Hello, World! ", 10)
	s1 := strings.Repeat("Hello", 20)
	s2 := strings.Repeat("World", 20)
	return []Benchmark{
		{
			Name:     "string_length(150 chars)",
			Category: CategoryMarshalling,
			Params:   map[string]any{"length": len(text)},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.StringLength(text))
			}),
		},
		{
			Name:     "string_concat(100+100 chars)",
			Category: CategoryMarshalling,
			Params:   map[string]any{"length": len(s1) + len(s2)},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.StringConcat(s1, s2))
			}),
		},
		{
			Name:     "process_datapoint",
			Category: CategoryMarshalling,
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.ProcessDataPoint(bindings.Point{ID: 42, Value: 3.14, Name: "test"}))
			}),
		},
		{
			Name:     "sum_datapoints(100 structs)",
			Category: CategoryMarshalling,
			Params:   map[string]any{"count": 100},
			Setup: func() Call {
				points := make([]bindings.Point, 100)
				for i := range points {
					points[i] = bindings.Point{ID: int32(i), Value: float64(i), Name: fmt.Sprintf("point_%d", i)}
				}
				return func(b bindings.Binding) error {
					return ignore(b.SumDataPoints(points))
				}
			},
		},
	}
}

func mixed() []Benchmark {
	const width, height = 100, 100
	return []Benchmark{
		{
			Name:     "monte_carlo_pi(100000)",
			Category: CategoryMixed,
			Params:   map[string]any{"iterations": 100000},
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.MonteCarloPi(100000))
			}),
		},
		{
			Name:     "blur_array(100x100)",
			Category: CategoryMixed,
			Params:   map[string]any{"size": []int{width, height}},
			Setup: func() Call {
				img := randomDoubles("blur_array", width*height)
				return func(b bindings.Binding) error {
					return ignore(b.BlurArray(img, width, height))
				}
			},
		},
		{
			// Sorting is in place: only the first sample sees unsorted input,
			// the same as reusing one array across iterations.
			Name:     "sort_array(10000)",
			Category: CategoryMixed,
			Params:   map[string]any{"size": 10000},
			Setup: func() Call {
				arr := randomDoubles("sort_array", 10000)
				return func(b bindings.Binding) error {
					return b.SortArray(arr)
				}
			},
		},
	}
}

func allocation() []Benchmark {
	return []Benchmark{{
		Name:     "allocate_and_sum(100000)",
		Category: CategoryAllocation,
		Params:   map[string]any{"size": 100000},
		Setup: fixed(func(b bindings.Binding) error {
			return ignore(b.AllocateAndSum(100000))
		}),
	}}
}

func callback() []Benchmark {
	return []Benchmark{{
		Name:     "apply_operation(1.0, 10000)",
		Category: CategoryCallback,
		Params:   map[string]any{"iterations": 10000},
		Setup: fixed(func(b bindings.Binding) error {
			return ignore(b.ApplyOperation(1.0, 10000))
		}),
	}}
}

func buffers() []Benchmark {
	const size = 100000
	return []Benchmark{
		{
			Name:     "process_buffer(100000)",
			Category: CategoryBuffer,
			Params:   map[string]any{"size": size},
			Setup: func() Call {
				buf := randomBytes("buffer", size)
				return func(b bindings.Binding) error {
					return b.ProcessBuffer(buf)
				}
			},
		},
		{
			Name:     "checksum(100000)",
			Category: CategoryBuffer,
			Params:   map[string]any{"size": size},
			Setup: func() Call {
				buf := randomBytes("buffer", size)
				return func(b bindings.Binding) error {
					return ignore(b.Checksum(buf))
				}
			},
		},
	}
}

func pointers() []Benchmark {
	return []Benchmark{{
		Name:     "list_operations(1000)",
		Category: CategoryPointer,
		Params:   map[string]any{"size": 1000},
		Setup: fixed(func(b bindings.Binding) error {
			return ignore(b.ListOperations(1000))
		}),
	}}
}

func bitwise() []Benchmark {
	return []Benchmark{
		{
			Name:     "popcount(0xFFFFFFFF)",
			Category: CategoryBitwise,
			Setup: fixed(func(b bindings.Binding) error {
				return ignore(b.Popcount(0xFFFFFFFF))
			}),
		},
		{
			Name:     "bitwise_reduce(10000)",
			Category: CategoryBitwise,
			Params:   map[string]any{"size": 10000},
			Setup: func() Call {
				arr := randomUint32s("bitwise_reduce", 10000)
				return func(b bindings.Binding) error {
					return ignore(b.BitwiseReduce(arr))
				}
			},
		},
	}
}

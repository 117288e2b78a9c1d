package bindings

import "github.com/hsiuhsiu/ffibench-go/pkg/benchlib"

// librarySymbols is the export table of the computation library as the
// dynamic adapter sees it: functions keyed by their C symbol names.
func librarySymbols() map[string]any {
	return map[string]any{
		"noop":                   benchlib.Noop,
		"add_numbers":            benchlib.AddNumbers,
		"calculate_simple":       benchlib.CalculateSimple,
		"fibonacci_recursive":    benchlib.FibonacciRecursive,
		"fibonacci_iterative":    benchlib.FibonacciIterative,
		"is_prime":               benchlib.IsPrime,
		"count_primes":           benchlib.CountPrimes,
		"matrix_multiply":        benchlib.MatrixMultiply,
		"compute_math_intensive": benchlib.ComputeMathIntensive,
		"sum_array":              benchlib.SumArray,
		"scale_array":            benchlib.ScaleArray,
		"copy_array":             benchlib.CopyArray,
		"dot_product":            benchlib.DotProduct,
		"array_reverse":          benchlib.ArrayReverse,
		"sum_strided":            benchlib.SumStrided,
		"string_length":          benchlib.StringLength,
		"string_concat":          benchlib.StringConcat,
		"process_datapoint":      benchlib.ProcessDataPoint,
		"sum_datapoints":         benchlib.SumDataPoints,
		"monte_carlo_pi":         benchlib.MonteCarloPi,
		"blur_array":             benchlib.BlurArray,
		"sort_array":             benchlib.SortArray,
		"allocate_array":         benchlib.AllocateArray,
		"sum_owned_array":        sumOwnedArray,
		"free_array":             (*benchlib.Array).Free,
		"apply_operation":        benchlib.ApplyOperation,
		"process_buffer":         benchlib.ProcessBuffer,
		"checksum":               benchlib.Checksum,
		"create_list":            benchlib.CreateList,
		"sum_list":               benchlib.SumList,
		"free_list":              (*benchlib.List).Free,
		"popcount":               benchlib.Popcount,
		"bitwise_reduce":         benchlib.BitwiseReduce,
	}
}

func sumOwnedArray(a *benchlib.Array) (float64, error) {
	if a == nil {
		return 0, benchlib.ErrNilPointer
	}
	if a.Data() == nil {
		return 0, benchlib.ErrReleased
	}
	return benchlib.SumArray(a.Data()), nil
}

func sig(args []Kind, results ...Kind) Signature {
	return Signature{Args: args, Results: results}
}

func args(k ...Kind) []Kind { return k }

// declarations are the argument and result kinds the dynamic adapter
// declares for every symbol it binds.
var declarations = map[string]Signature{
	"noop":                   sig(args(KindInt32), KindInt32),
	"add_numbers":            sig(args(KindInt32, KindInt32), KindInt32),
	"calculate_simple":       sig(args(KindInt32, KindFloat64, KindInt32, KindFloat64), KindFloat64),
	"fibonacci_recursive":    sig(args(KindInt32), KindInt64, KindError),
	"fibonacci_iterative":    sig(args(KindInt32), KindInt64, KindError),
	"is_prime":               sig(args(KindInt64), KindBool),
	"count_primes":           sig(args(KindInt32, KindInt32), KindInt32),
	"matrix_multiply":        sig(args(KindDoubles, KindDoubles, KindDoublesOut, KindInt), KindError),
	"compute_math_intensive": sig(args(KindFloat64, KindInt32), KindFloat64, KindError),
	"sum_array":              sig(args(KindDoubles), KindFloat64),
	"scale_array":            sig(args(KindDoublesInOut, KindFloat64)),
	"copy_array":             sig(args(KindDoubles, KindDoublesOut), KindError),
	"dot_product":            sig(args(KindDoubles, KindDoubles), KindFloat64, KindError),
	"array_reverse":          sig(args(KindDoublesInOut)),
	"sum_strided":            sig(args(KindDoubles, KindInt), KindFloat64, KindError),
	"string_length":          sig(args(KindString), KindInt, KindError),
	"string_concat":          sig(args(KindString, KindString), KindOwnedString, KindError),
	"process_datapoint":      sig(args(KindRecord), KindFloat64, KindError),
	"sum_datapoints":         sig(args(KindRecords), KindFloat64),
	"monte_carlo_pi":         sig(args(KindInt), KindFloat64, KindError),
	"blur_array":             sig(args(KindDoubles, KindDoublesOut, KindInt, KindInt), KindError),
	"sort_array":             sig(args(KindDoublesInOut)),
	"allocate_array":         sig(args(KindInt), KindPointer, KindError),
	"sum_owned_array":        sig(args(KindPointer), KindFloat64, KindError),
	"free_array":             sig(args(KindPointer), KindError),
	"apply_operation":        sig(args(KindFloat64, KindInt32), KindFloat64, KindError),
	"process_buffer":         sig(args(KindBytes)),
	"checksum":               sig(args(KindBytes), KindUint32),
	"create_list":            sig(args(KindInt), KindPointer, KindError),
	"sum_list":               sig(args(KindPointer), KindInt64, KindError),
	"free_list":              sig(args(KindPointer), KindError),
	"popcount":               sig(args(KindUint32), KindInt32),
	"bitwise_reduce":         sig(args(KindUint32s), KindUint32),
}

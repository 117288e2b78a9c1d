package benchlib

// Noop returns x unchanged. It measures the bare cost of crossing a binding.
func Noop(x int32) int32 {
	return x
}

// AddNumbers returns a+b with two's complement wrap-around on overflow.
func AddNumbers(a, b int32) int32 {
	return a + b
}

// CalculateSimple returns (a+b)*(c-d) evaluated in double precision.
func CalculateSimple(a int32, b float64, c int32, d float64) float64 {
	return (float64(a) + b) * (float64(c) - d)
}

// ApplyOperation repeats r = r*1.1 + 0.5 starting from initial. It stands in
// for a callback invoked once per iteration.
func ApplyOperation(initial float64, iterations int32) (float64, error) {
	if iterations < 0 {
		return 0, ErrNegativeSize
	}
	r := initial
	for i := int32(0); i < iterations; i++ {
		r = r*1.1 + 0.5
	}
	return r, nil
}

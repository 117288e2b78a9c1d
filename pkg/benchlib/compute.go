package benchlib

import "math"

// MaxFibonacciN is the largest n for which F(n) fits in an int64.
const MaxFibonacciN = 92

func checkFibonacci(n int32) error {
	switch {
	case n < 0:
		return ErrNegativeSize
	case n > MaxFibonacciN:
		return ErrOutOfDomain
	}
	return nil
}

// FibonacciRecursive computes F(n) by naive binary recursion with F(0)=0 and
// F(1)=1. The running time is exponential in n.
func FibonacciRecursive(n int32) (int64, error) {
	if err := checkFibonacci(n); err != nil {
		return 0, err
	}
	return fibRec(n), nil
}

func fibRec(n int32) int64 {
	if n < 2 {
		return int64(n)
	}
	return fibRec(n-1) + fibRec(n-2)
}

// FibonacciIterative computes F(n) in linear time over the same domain as
// FibonacciRecursive.
func FibonacciIterative(n int32) (int64, error) {
	if err := checkFibonacci(n); err != nil {
		return 0, err
	}
	var a, b int64 = 0, 1
	for i := int32(0); i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// IsPrime reports whether n is prime using 6k±1 trial division. Values
// below 2, negatives included, are not prime.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// CountPrimes counts the primes in the inclusive range [start, end]. An
// inverted range counts nothing.
func CountPrimes(start, end int32) int32 {
	var count int32
	for i := int64(start); i <= int64(end); i++ {
		if IsPrime(i) {
			count++
		}
	}
	return count
}

// MatrixMultiply writes the row-major n×n product a×b into c. All three
// slices must hold exactly n*n values and c must not overlap a or b.
func MatrixMultiply(a, b, c []float64, n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if n > 0 && n > math.MaxInt/n {
		return ErrOutOfDomain
	}
	size := n * n
	if len(a) != size || len(b) != size || len(c) != size {
		return ErrLengthMismatch
	}
	if overlaps(c, a) || overlaps(c, b) {
		return ErrAliased
	}
	for i := 0; i < n; i++ {
		row := a[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			var sum float64
			for k, v := range row {
				sum += v * b[k*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return nil
}

// ComputeMathIntensive iterates a bounded transcendental recurrence starting
// at x. Results are reproducible on one platform; different math libraries
// may disagree in the last few bits.
func ComputeMathIntensive(x float64, iterations int32) (float64, error) {
	if iterations < 0 {
		return 0, ErrNegativeSize
	}
	r := x
	for i := int32(0); i < iterations; i++ {
		r = math.Sin(r) + math.Cos(r*1.5) + math.Sqrt(math.Abs(r)+1)
		r = r / (1 + math.Abs(r))
	}
	return r, nil
}

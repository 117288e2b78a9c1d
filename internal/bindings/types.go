package bindings

import "errors"

// Adapter names accepted by Open.
const (
	AdapterCompiled = "compiled"
	AdapterDynamic  = "dynamic"
	AdapterCGO      = "cgo"
)

// Config selects the adapter opened by Open.
type Config struct {
	// Adapter is one of AdapterCompiled, AdapterDynamic or AdapterCGO.
	Adapter string
}

// Handle is an opaque identifier for a value kept on the far side of a
// binding: a library opened by the dynamic adapter or a list created through
// the C ABI.
type Handle uintptr

// Point is the host-side form of a benchlib.DataPoint. Each adapter marshals
// it into the fixed-layout record.
type Point struct {
	ID    int32
	Value float64
	Name  string
}

// Binding is the capability surface every adapter exposes. Array arguments
// are never retained. Methods that mutate in place document it; the others
// leave their inputs untouched.
type Binding interface {
	// Name reports the adapter name.
	Name() string

	Noop(x int32) (int32, error)
	AddNumbers(a, b int32) (int32, error)
	CalculateSimple(a int32, b float64, c int32, d float64) (float64, error)

	FibonacciRecursive(n int32) (int64, error)
	FibonacciIterative(n int32) (int64, error)
	IsPrime(n int64) (bool, error)
	CountPrimes(start, end int32) (int32, error)
	// MatrixMultiply returns the n×n product a×b in a new slice.
	MatrixMultiply(a, b []float64, n int) ([]float64, error)
	ComputeMathIntensive(x float64, iterations int32) (float64, error)

	SumArray(arr []float64) (float64, error)
	// ScaleArray scales arr in place.
	ScaleArray(arr []float64, factor float64) error
	// CopyArray returns a copy of src made by the library.
	CopyArray(src []float64) ([]float64, error)
	DotProduct(a, b []float64) (float64, error)
	// ArrayReverse reverses arr in place.
	ArrayReverse(arr []float64) error
	SumStrided(arr []float64, stride int) (float64, error)

	StringLength(s string) (int, error)
	StringConcat(s1, s2 string) (string, error)
	ProcessDataPoint(p Point) (float64, error)
	SumDataPoints(points []Point) (float64, error)

	MonteCarloPi(iterations int) (float64, error)
	// BlurArray returns the blurred width×height image in a new slice.
	BlurArray(input []float64, width, height int) ([]float64, error)
	// SortArray sorts arr in place.
	SortArray(arr []float64) error

	// AllocateAndSum allocates an owned array of size elements, sums it and
	// releases it.
	AllocateAndSum(size int) (float64, error)
	ApplyOperation(initial float64, iterations int32) (float64, error)

	// ProcessBuffer transforms buf in place.
	ProcessBuffer(buf []byte) error
	Checksum(buf []byte) (uint32, error)

	// ListOperations builds a list of size nodes, sums it and releases it.
	ListOperations(size int) (int64, error)

	Popcount(n uint32) (int32, error)
	BitwiseReduce(arr []uint32) (uint32, error)

	// Close releases the adapter. Calls after Close return ErrClosed.
	Close() error
}

var (
	// ErrNotBuilt reports that the requested adapter was not linked into the
	// current binary. The cgo adapter needs a cgo-enabled, non-Windows build.
	ErrNotBuilt = errors.New("ffibench/internal/bindings: adapter not built")

	// ErrUnknownAdapter reports an adapter name Open does not recognise.
	ErrUnknownAdapter = errors.New("ffibench/internal/bindings: unknown adapter")

	// ErrClosed reports a call on a closed binding.
	ErrClosed = errors.New("ffibench/internal/bindings: binding closed")

	// ErrSymbolNotFound reports a symbol missing from the dynamic library.
	ErrSymbolNotFound = errors.New("ffibench/internal/bindings: symbol not found")

	// ErrSignatureMismatch reports a symbol whose declared signature does not
	// match the function it resolves to.
	ErrSignatureMismatch = errors.New("ffibench/internal/bindings: signature mismatch")

	// ErrArgument reports a host value that cannot be marshalled into the
	// declared argument kind.
	ErrArgument = errors.New("ffibench/internal/bindings: bad argument")

	// ErrBadHandle reports a handle that does not name a live object.
	ErrBadHandle = errors.New("ffibench/internal/bindings: bad handle")
)

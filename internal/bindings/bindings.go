//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include "ffib.h"
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
)

// cgoBinding reaches the library through its C ABI. Go slices are passed to
// C without copying; strings are copied into C memory for each call.
type cgoBinding struct {
	closed bool
}

func openCGO() (Binding, error) {
	return &cgoBinding{}, nil
}

func (b *cgoBinding) Name() string { return AdapterCGO }

func (b *cgoBinding) check() error {
	if b.closed {
		return ErrClosed
	}
	return nil
}

func (b *cgoBinding) Close() error {
	if b.closed {
		return ErrClosed
	}
	b.closed = true
	return nil
}

func (b *cgoBinding) Noop(x int32) (int32, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	return int32(C.ffib_noop(C.int32_t(x))), nil
}

func (b *cgoBinding) AddNumbers(x, y int32) (int32, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	return int32(C.ffib_add_numbers(C.int32_t(x), C.int32_t(y))), nil
}

func (b *cgoBinding) CalculateSimple(x int32, y float64, z int32, w float64) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	return float64(C.ffib_calculate_simple(C.int32_t(x), C.double(y), C.int32_t(z), C.double(w))), nil
}

func (b *cgoBinding) FibonacciRecursive(n int32) (int64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var out C.int64_t
	if err := errorOf(C.ffib_fibonacci_recursive(C.int32_t(n), &out)); err != nil {
		return 0, err
	}
	return int64(out), nil
}

func (b *cgoBinding) FibonacciIterative(n int32) (int64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var out C.int64_t
	if err := errorOf(C.ffib_fibonacci_iterative(C.int32_t(n), &out)); err != nil {
		return 0, err
	}
	return int64(out), nil
}

func (b *cgoBinding) IsPrime(n int64) (bool, error) {
	if err := b.check(); err != nil {
		return false, err
	}
	return C.ffib_is_prime(C.int64_t(n)) != 0, nil
}

func (b *cgoBinding) CountPrimes(start, end int32) (int32, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	return int32(C.ffib_count_primes(C.int32_t(start), C.int32_t(end))), nil
}

func (b *cgoBinding) MatrixMultiply(x, y []float64, n int) ([]float64, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, benchlib.ErrNegativeSize
	}
	out := make([]float64, len(x))
	xp, xn := cDoubles(x)
	yp, yn := cDoubles(y)
	op, on := cDoubles(out)
	if err := errorOf(C.ffib_matrix_multiply(xp, xn, yp, yn, op, on, C.int64_t(n))); err != nil {
		return nil, err
	}
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return out, nil
}

func (b *cgoBinding) ComputeMathIntensive(x float64, iterations int32) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var out C.double
	if err := errorOf(C.ffib_compute_math_intensive(C.double(x), C.int32_t(iterations), &out)); err != nil {
		return 0, err
	}
	return float64(out), nil
}

func (b *cgoBinding) SumArray(arr []float64) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	p, n := cDoubles(arr)
	return float64(C.ffib_sum_array(p, n)), nil
}

func (b *cgoBinding) ScaleArray(arr []float64, factor float64) error {
	if err := b.check(); err != nil {
		return err
	}
	p, n := cDoubles(arr)
	C.ffib_scale_array(p, n, C.double(factor))
	return nil
}

func (b *cgoBinding) CopyArray(src []float64) ([]float64, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	dst := make([]float64, len(src))
	sp, sn := cDoubles(src)
	dp, dn := cDoubles(dst)
	if err := errorOf(C.ffib_copy_array(sp, sn, dp, dn)); err != nil {
		return nil, err
	}
	return dst, nil
}

func (b *cgoBinding) DotProduct(x, y []float64) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	xp, xn := cDoubles(x)
	yp, yn := cDoubles(y)
	var out C.double
	if err := errorOf(C.ffib_dot_product(xp, xn, yp, yn, &out)); err != nil {
		return 0, err
	}
	return float64(out), nil
}

func (b *cgoBinding) ArrayReverse(arr []float64) error {
	if err := b.check(); err != nil {
		return err
	}
	p, n := cDoubles(arr)
	C.ffib_array_reverse(p, n)
	return nil
}

func (b *cgoBinding) SumStrided(arr []float64, stride int) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	p, n := cDoubles(arr)
	var out C.double
	if err := errorOf(C.ffib_sum_strided(p, n, C.int64_t(stride), &out)); err != nil {
		return 0, err
	}
	return float64(out), nil
}

func (b *cgoBinding) StringLength(s string) (int, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	var out C.int64_t
	if err := errorOf(C.ffib_string_length(cs, C.size_t(len(s)+1), &out)); err != nil {
		return 0, err
	}
	return int(out), nil
}

func (b *cgoBinding) StringConcat(s1, s2 string) (string, error) {
	if err := b.check(); err != nil {
		return "", err
	}
	c1 := C.CString(s1)
	defer C.free(unsafe.Pointer(c1))
	c2 := C.CString(s2)
	defer C.free(unsafe.Pointer(c2))

	var out *C.char
	if err := errorOf(C.ffib_string_concat(c1, C.size_t(len(s1)+1), c2, C.size_t(len(s2)+1), &out)); err != nil {
		return "", err
	}
	// The result is owned by C: copy it into Go, then release it.
	res := C.GoString(out)
	C.ffib_free_string(out)
	return res, nil
}

func (b *cgoBinding) ProcessDataPoint(p Point) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	dp, err := benchlib.NewDataPoint(p.ID, p.Value, p.Name)
	if err != nil {
		return 0, err
	}
	var out C.double
	if err := errorOf(C.ffib_process_datapoint((*C.ffib_datapoint)(unsafe.Pointer(&dp)), &out)); err != nil {
		return 0, err
	}
	return float64(out), nil
}

func (b *cgoBinding) SumDataPoints(points []Point) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	dps, err := toDataPoints(points)
	if err != nil {
		return 0, err
	}
	p, n := cDataPoints(dps)
	sum := float64(C.ffib_sum_datapoints(p, n))
	runtime.KeepAlive(dps)
	return sum, nil
}

func (b *cgoBinding) MonteCarloPi(iterations int) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var out C.double
	if err := errorOf(C.ffib_monte_carlo_pi(C.int64_t(iterations), &out)); err != nil {
		return 0, err
	}
	return float64(out), nil
}

func (b *cgoBinding) BlurArray(input []float64, width, height int) ([]float64, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	out := make([]float64, len(input))
	ip, in := cDoubles(input)
	op, on := cDoubles(out)
	if err := errorOf(C.ffib_blur_array(ip, in, op, on, C.int64_t(width), C.int64_t(height))); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *cgoBinding) SortArray(arr []float64) error {
	if err := b.check(); err != nil {
		return err
	}
	p, n := cDoubles(arr)
	C.ffib_sort_array(p, n)
	return nil
}

func (b *cgoBinding) AllocateAndSum(size int) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var h C.uintptr_t
	if err := errorOf(C.ffib_allocate_array(C.int64_t(size), &h)); err != nil {
		return 0, err
	}
	var out C.double
	err := errorOf(C.ffib_sum_owned_array(h, &out))
	if ferr := errorOf(C.ffib_free_array(h)); err == nil {
		err = ferr
	}
	if err != nil {
		return 0, err
	}
	return float64(out), nil
}

func (b *cgoBinding) ApplyOperation(initial float64, iterations int32) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var out C.double
	if err := errorOf(C.ffib_apply_operation(C.double(initial), C.int32_t(iterations), &out)); err != nil {
		return 0, err
	}
	return float64(out), nil
}

func (b *cgoBinding) ProcessBuffer(buf []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	p, n := cBytes(buf)
	C.ffib_process_buffer(p, n)
	return nil
}

func (b *cgoBinding) Checksum(buf []byte) (uint32, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	p, n := cBytes(buf)
	return uint32(C.ffib_checksum(p, n)), nil
}

func (b *cgoBinding) ListOperations(size int) (int64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var h C.uintptr_t
	if err := errorOf(C.ffib_create_list(C.int64_t(size), &h)); err != nil {
		return 0, err
	}
	var out C.int64_t
	err := errorOf(C.ffib_sum_list(h, &out))
	if ferr := errorOf(C.ffib_free_list(h)); err == nil {
		err = ferr
	}
	if err != nil {
		return 0, err
	}
	return int64(out), nil
}

func (b *cgoBinding) Popcount(n uint32) (int32, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	return int32(C.ffib_popcount(C.uint32_t(n))), nil
}

func (b *cgoBinding) BitwiseReduce(arr []uint32) (uint32, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	p, n := cUint32s(arr)
	return uint32(C.ffib_bitwise_reduce(p, n)), nil
}

//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <string.h>
#include "ffib_types.h"
*/
import "C"

import (
	"unsafe"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
)

// The functions below are the C ABI of the computation library. Fallible
// entry points return an FFIB_ status and write results through out
// pointers.

// cobjects holds arrays and lists handed to C as uintptr_t handles.
var cobjects = newRegistry()

func goDoubles(p *C.double, n C.size_t) []float64 {
	return unsafe.Slice((*float64)(unsafe.Pointer(p)), int(n))
}

func goBytes(p *C.char, n C.size_t) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

//export ffib_noop
func ffib_noop(x C.int32_t) C.int32_t {
	return C.int32_t(benchlib.Noop(int32(x)))
}

//export ffib_add_numbers
func ffib_add_numbers(a, b C.int32_t) C.int32_t {
	return C.int32_t(benchlib.AddNumbers(int32(a), int32(b)))
}

//export ffib_calculate_simple
func ffib_calculate_simple(a C.int32_t, b C.double, c C.int32_t, d C.double) C.double {
	return C.double(benchlib.CalculateSimple(int32(a), float64(b), int32(c), float64(d)))
}

//export ffib_fibonacci_recursive
func ffib_fibonacci_recursive(n C.int32_t, out *C.int64_t) C.int {
	v, err := benchlib.FibonacciRecursive(int32(n))
	if err != nil {
		return statusOf(err)
	}
	*out = C.int64_t(v)
	return C.FFIB_OK
}

//export ffib_fibonacci_iterative
func ffib_fibonacci_iterative(n C.int32_t, out *C.int64_t) C.int {
	v, err := benchlib.FibonacciIterative(int32(n))
	if err != nil {
		return statusOf(err)
	}
	*out = C.int64_t(v)
	return C.FFIB_OK
}

//export ffib_is_prime
func ffib_is_prime(n C.int64_t) C.int {
	if benchlib.IsPrime(int64(n)) {
		return 1
	}
	return 0
}

//export ffib_count_primes
func ffib_count_primes(start, end C.int32_t) C.int32_t {
	return C.int32_t(benchlib.CountPrimes(int32(start), int32(end)))
}

//export ffib_matrix_multiply
func ffib_matrix_multiply(a *C.double, alen C.size_t, b *C.double, blen C.size_t, c *C.double, clen C.size_t, n C.int64_t) C.int {
	err := benchlib.MatrixMultiply(goDoubles(a, alen), goDoubles(b, blen), goDoubles(c, clen), int(n))
	return statusOf(err)
}

//export ffib_compute_math_intensive
func ffib_compute_math_intensive(x C.double, iterations C.int32_t, out *C.double) C.int {
	v, err := benchlib.ComputeMathIntensive(float64(x), int32(iterations))
	if err != nil {
		return statusOf(err)
	}
	*out = C.double(v)
	return C.FFIB_OK
}

//export ffib_sum_array
func ffib_sum_array(arr *C.double, n C.size_t) C.double {
	return C.double(benchlib.SumArray(goDoubles(arr, n)))
}

//export ffib_scale_array
func ffib_scale_array(arr *C.double, n C.size_t, factor C.double) {
	benchlib.ScaleArray(goDoubles(arr, n), float64(factor))
}

//export ffib_copy_array
func ffib_copy_array(src *C.double, n C.size_t, dst *C.double, dn C.size_t) C.int {
	return statusOf(benchlib.CopyArray(goDoubles(src, n), goDoubles(dst, dn)))
}

//export ffib_dot_product
func ffib_dot_product(a *C.double, an C.size_t, b *C.double, bn C.size_t, out *C.double) C.int {
	v, err := benchlib.DotProduct(goDoubles(a, an), goDoubles(b, bn))
	if err != nil {
		return statusOf(err)
	}
	*out = C.double(v)
	return C.FFIB_OK
}

//export ffib_array_reverse
func ffib_array_reverse(arr *C.double, n C.size_t) {
	benchlib.ArrayReverse(goDoubles(arr, n))
}

//export ffib_sum_strided
func ffib_sum_strided(arr *C.double, n C.size_t, stride C.int64_t, out *C.double) C.int {
	v, err := benchlib.SumStrided(goDoubles(arr, n), int(stride))
	if err != nil {
		return statusOf(err)
	}
	*out = C.double(v)
	return C.FFIB_OK
}

//export ffib_string_length
func ffib_string_length(s *C.char, size C.size_t, out *C.int64_t) C.int {
	if s == nil {
		return C.FFIB_E_NIL_POINTER
	}
	n, err := benchlib.StringLength(goBytes(s, size))
	if err != nil {
		return statusOf(err)
	}
	*out = C.int64_t(n)
	return C.FFIB_OK
}

//export ffib_string_concat
func ffib_string_concat(s1 *C.char, n1 C.size_t, s2 *C.char, n2 C.size_t, out **C.char) C.int {
	cs, err := benchlib.StringConcat(goBytes(s1, n1), goBytes(s2, n2))
	if err != nil {
		return statusOf(err)
	}
	term := cs.Terminated()
	p := C.malloc(C.size_t(len(term)))
	if p == nil {
		_ = cs.Free()
		return C.FFIB_E_NO_MEMORY
	}
	C.memcpy(p, unsafe.Pointer(&term[0]), C.size_t(len(term)))
	if err := cs.Free(); err != nil {
		C.free(p)
		return statusOf(err)
	}
	*out = (*C.char)(p)
	return C.FFIB_OK
}

//export ffib_free_string
func ffib_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

//export ffib_process_datapoint
func ffib_process_datapoint(dp *C.ffib_datapoint, out *C.double) C.int {
	v, err := benchlib.ProcessDataPoint((*benchlib.DataPoint)(unsafe.Pointer(dp)))
	if err != nil {
		return statusOf(err)
	}
	*out = C.double(v)
	return C.FFIB_OK
}

//export ffib_sum_datapoints
func ffib_sum_datapoints(dps *C.ffib_datapoint, n C.size_t) C.double {
	points := unsafe.Slice((*benchlib.DataPoint)(unsafe.Pointer(dps)), int(n))
	return C.double(benchlib.SumDataPoints(points))
}

//export ffib_monte_carlo_pi
func ffib_monte_carlo_pi(iterations C.int64_t, out *C.double) C.int {
	v, err := benchlib.MonteCarloPi(int(iterations))
	if err != nil {
		return statusOf(err)
	}
	*out = C.double(v)
	return C.FFIB_OK
}

//export ffib_blur_array
func ffib_blur_array(in *C.double, inlen C.size_t, out *C.double, outlen C.size_t, width, height C.int64_t) C.int {
	return statusOf(benchlib.BlurArray(goDoubles(in, inlen), goDoubles(out, outlen), int(width), int(height)))
}

//export ffib_sort_array
func ffib_sort_array(arr *C.double, n C.size_t) {
	benchlib.SortArray(goDoubles(arr, n))
}

//export ffib_allocate_array
func ffib_allocate_array(size C.int64_t, out *C.uintptr_t) C.int {
	arr, err := benchlib.AllocateArray(int(size))
	if err != nil {
		return statusOf(err)
	}
	*out = C.uintptr_t(cobjects.put(arr))
	return C.FFIB_OK
}

//export ffib_sum_owned_array
func ffib_sum_owned_array(h C.uintptr_t, out *C.double) C.int {
	v, ok := cobjects.get(Handle(h))
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	arr, ok := v.(*benchlib.Array)
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	*out = C.double(benchlib.SumArray(arr.Data()))
	return C.FFIB_OK
}

//export ffib_free_array
func ffib_free_array(h C.uintptr_t) C.int {
	v, ok := cobjects.get(Handle(h))
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	arr, ok := v.(*benchlib.Array)
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	cobjects.del(Handle(h))
	return statusOf(arr.Free())
}

//export ffib_apply_operation
func ffib_apply_operation(initial C.double, iterations C.int32_t, out *C.double) C.int {
	v, err := benchlib.ApplyOperation(float64(initial), int32(iterations))
	if err != nil {
		return statusOf(err)
	}
	*out = C.double(v)
	return C.FFIB_OK
}

//export ffib_process_buffer
func ffib_process_buffer(buf *C.uint8_t, n C.size_t) {
	benchlib.ProcessBuffer(unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(n)))
}

//export ffib_checksum
func ffib_checksum(buf *C.uint8_t, n C.size_t) C.uint32_t {
	return C.uint32_t(benchlib.Checksum(unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(n))))
}

//export ffib_create_list
func ffib_create_list(size C.int64_t, out *C.uintptr_t) C.int {
	l, err := benchlib.CreateList(int(size))
	if err != nil {
		return statusOf(err)
	}
	*out = C.uintptr_t(cobjects.put(l))
	return C.FFIB_OK
}

//export ffib_sum_list
func ffib_sum_list(h C.uintptr_t, out *C.int64_t) C.int {
	v, ok := cobjects.get(Handle(h))
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	l, ok := v.(*benchlib.List)
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	sum, err := benchlib.SumList(l)
	if err != nil {
		return statusOf(err)
	}
	*out = C.int64_t(sum)
	return C.FFIB_OK
}

//export ffib_free_list
func ffib_free_list(h C.uintptr_t) C.int {
	v, ok := cobjects.get(Handle(h))
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	l, ok := v.(*benchlib.List)
	if !ok {
		return C.FFIB_E_BAD_HANDLE
	}
	cobjects.del(Handle(h))
	return statusOf(l.Free())
}

//export ffib_popcount
func ffib_popcount(n C.uint32_t) C.int32_t {
	return C.int32_t(benchlib.Popcount(uint32(n)))
}

//export ffib_bitwise_reduce
func ffib_bitwise_reduce(arr *C.uint32_t, n C.size_t) C.uint32_t {
	return C.uint32_t(benchlib.BitwiseReduce(unsafe.Slice((*uint32)(unsafe.Pointer(arr)), int(n))))
}

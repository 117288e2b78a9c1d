//go:build cgo && !windows

package bindings

/*
#include "ffib_types.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
)

// statusErrors maps FFIB_ status codes to errors. Index 0 is FFIB_OK.
var statusErrors = [...]error{
	C.FFIB_E_NEGATIVE_SIZE:   benchlib.ErrNegativeSize,
	C.FFIB_E_LENGTH_MISMATCH: benchlib.ErrLengthMismatch,
	C.FFIB_E_ALIASED:         benchlib.ErrAliased,
	C.FFIB_E_OUT_OF_DOMAIN:   benchlib.ErrOutOfDomain,
	C.FFIB_E_NIL_POINTER:     benchlib.ErrNilPointer,
	C.FFIB_E_RELEASED:        benchlib.ErrReleased,
	C.FFIB_E_UNTERMINATED:    benchlib.ErrUnterminated,
	C.FFIB_E_NAME_TOO_LONG:   benchlib.ErrNameTooLong,
	C.FFIB_E_INVALID_STRIDE:  benchlib.ErrInvalidStride,
	C.FFIB_E_BAD_HANDLE:      ErrBadHandle,
	C.FFIB_E_NO_MEMORY:       errNoMemory,
	C.FFIB_E_UNKNOWN:         errUnknownStatus,
}

var (
	errNoMemory      = errors.New("ffibench/internal/bindings: C allocation failed")
	errUnknownStatus = errors.New("ffibench/internal/bindings: unknown status")
)

// statusOf converts a library error to its FFIB_ status code.
func statusOf(err error) C.int {
	if err == nil {
		return C.FFIB_OK
	}
	for code, e := range statusErrors {
		if e != nil && errors.Is(err, e) {
			return C.int(code)
		}
	}
	return C.FFIB_E_UNKNOWN
}

// errorOf converts an FFIB_ status code back to the matching error.
func errorOf(rc C.int) error {
	if rc == C.FFIB_OK {
		return nil
	}
	if rc > 0 && int(rc) < len(statusErrors) && statusErrors[rc] != nil {
		return statusErrors[rc]
	}
	return fmt.Errorf("%w: %d", errUnknownStatus, int(rc))
}

// The helpers below pass Go slices to C without copying. The pointers are
// only valid for the duration of the call they are passed to.

func cDoubles(s []float64) (*C.double, C.size_t) {
	if len(s) == 0 {
		return nil, 0
	}
	return (*C.double)(unsafe.Pointer(&s[0])), C.size_t(len(s))
}

func cBytes(s []byte) (*C.uint8_t, C.size_t) {
	if len(s) == 0 {
		return nil, 0
	}
	return (*C.uint8_t)(unsafe.Pointer(&s[0])), C.size_t(len(s))
}

func cUint32s(s []uint32) (*C.uint32_t, C.size_t) {
	if len(s) == 0 {
		return nil, 0
	}
	return (*C.uint32_t)(unsafe.Pointer(&s[0])), C.size_t(len(s))
}

func cDataPoints(s []benchlib.DataPoint) (*C.ffib_datapoint, C.size_t) {
	if len(s) == 0 {
		return nil, 0
	}
	return (*C.ffib_datapoint)(unsafe.Pointer(&s[0])), C.size_t(len(s))
}

// cDataPointLayout reports the size and field offsets of ffib_datapoint as
// the C compiler lays it out.
func cDataPointLayout() (size, value, name uintptr) {
	var dp C.ffib_datapoint
	return unsafe.Sizeof(dp), unsafe.Offsetof(dp.value), unsafe.Offsetof(dp.name)
}

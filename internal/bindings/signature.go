package bindings

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
)

// Kind is the wire type of one argument or result of a dynamic symbol.
type Kind uint8

const (
	KindInt32 Kind = iota + 1
	KindInt64
	KindUint32
	KindInt
	KindFloat64
	KindBool
	// KindString is a host string passed as a fresh NUL-terminated buffer.
	KindString
	// KindBytes is a byte buffer shared with the callee.
	KindBytes
	// KindDoubles is a float64 array copied into a wire buffer.
	KindDoubles
	// KindDoublesInOut is copied in, and copied back after the call.
	KindDoublesInOut
	// KindDoublesOut is a zeroed wire buffer copied back after the call.
	KindDoublesOut
	KindUint32s
	// KindRecord is a Point marshalled into a *benchlib.DataPoint.
	KindRecord
	// KindRecords is a []Point marshalled into a []benchlib.DataPoint.
	KindRecords
	// KindPointer is an opaque object exchanged as a Handle.
	KindPointer
	// KindOwnedString is a *benchlib.CString result, copied and released.
	KindOwnedString
	// KindError is a trailing error result.
	KindError
)

var kindNames = map[Kind]string{
	KindInt32:        "int32",
	KindInt64:        "int64",
	KindUint32:       "uint32",
	KindInt:          "int",
	KindFloat64:      "float64",
	KindBool:         "bool",
	KindString:       "string",
	KindBytes:        "bytes",
	KindDoubles:      "doubles",
	KindDoublesInOut: "doubles_inout",
	KindDoublesOut:   "doubles_out",
	KindUint32s:      "uint32s",
	KindRecord:       "record",
	KindRecords:      "records",
	KindPointer:      "pointer",
	KindOwnedString:  "owned_string",
	KindError:        "error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var (
	errorType     = reflect.TypeFor[error]()
	cstringType   = reflect.TypeFor[*benchlib.CString]()
	recordType    = reflect.TypeFor[*benchlib.DataPoint]()
	recordsType   = reflect.TypeFor[[]benchlib.DataPoint]()
	byteSliceType = reflect.TypeFor[[]byte]()
	f64SliceType  = reflect.TypeFor[[]float64]()
	u32SliceType  = reflect.TypeFor[[]uint32]()
)

// wireType returns the Go type a kind occupies on the library side, or nil
// when any pointer type is acceptable.
func (k Kind) wireType() reflect.Type {
	switch k {
	case KindInt32:
		return reflect.TypeFor[int32]()
	case KindInt64:
		return reflect.TypeFor[int64]()
	case KindUint32:
		return reflect.TypeFor[uint32]()
	case KindInt:
		return reflect.TypeFor[int]()
	case KindFloat64:
		return reflect.TypeFor[float64]()
	case KindBool:
		return reflect.TypeFor[bool]()
	case KindString, KindBytes:
		return byteSliceType
	case KindDoubles, KindDoublesInOut, KindDoublesOut:
		return f64SliceType
	case KindUint32s:
		return u32SliceType
	case KindRecord:
		return recordType
	case KindRecords:
		return recordsType
	case KindOwnedString:
		return cstringType
	case KindError:
		return errorType
	}
	return nil
}

func (k Kind) matches(t reflect.Type) bool {
	if k == KindPointer {
		return t.Kind() == reflect.Pointer
	}
	wt := k.wireType()
	return wt != nil && wt == t
}

// Signature declares the argument and result kinds of a symbol.
type Signature struct {
	Args    []Kind
	Results []Kind
}

func (s Signature) String() string {
	args := make([]string, len(s.Args))
	for i, k := range s.Args {
		args[i] = k.String()
	}
	res := make([]string, len(s.Results))
	for i, k := range s.Results {
		res[i] = k.String()
	}
	return "(" + strings.Join(args, ", ") + ") (" + strings.Join(res, ", ") + ")"
}

// check verifies that fn has exactly the declared shape.
func (s Signature) check(fn reflect.Type) error {
	if fn.Kind() != reflect.Func || fn.IsVariadic() {
		return fmt.Errorf("%w: %s is not a plain function", ErrSignatureMismatch, fn)
	}
	if fn.NumIn() != len(s.Args) || fn.NumOut() != len(s.Results) {
		return fmt.Errorf("%w: %s declared as %s", ErrSignatureMismatch, fn, s)
	}
	for i, k := range s.Args {
		if k == KindError || k == KindOwnedString || !k.matches(fn.In(i)) {
			return fmt.Errorf("%w: argument %d of %s is not %s", ErrSignatureMismatch, i, fn, k)
		}
	}
	for i, k := range s.Results {
		if !k.isResult() || !k.matches(fn.Out(i)) {
			return fmt.Errorf("%w: result %d of %s is not %s", ErrSignatureMismatch, i, fn, k)
		}
		if k == KindError && i != len(s.Results)-1 {
			return fmt.Errorf("%w: error result of %s is not last", ErrSignatureMismatch, fn)
		}
	}
	return nil
}

func (k Kind) isResult() bool {
	switch k {
	case KindInt32, KindInt64, KindUint32, KindInt, KindFloat64, KindBool,
		KindPointer, KindOwnedString, KindError:
		return true
	}
	return false
}

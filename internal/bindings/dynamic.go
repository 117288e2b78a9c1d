package bindings

import (
	"fmt"
	"math"
	"reflect"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
)

// libraries holds the export tables of every library opened by the dynamic
// adapter, keyed by library handle.
var libraries = newRegistry()

// symbol is a library function bound to its declared signature.
type symbol struct {
	name string
	fn   reflect.Value
	in   []reflect.Type
	sig  Signature
}

// dynamic resolves every function by name when it is opened and marshals
// each call through the declared signature. Opaque pointers returned by the
// library stay in objects and cross the boundary as handles.
//
// A dynamic binding is not safe for concurrent use.
type dynamic struct {
	lib     Handle
	symbols map[string]*symbol
	objects *registry
	closed  bool
}

func openDynamic(exports map[string]any) (Binding, error) {
	lib := libraries.put(exports)
	d := &dynamic{
		lib:     lib,
		symbols: make(map[string]*symbol, len(declarations)),
		objects: newRegistry(),
	}
	for name, s := range declarations {
		sym, err := d.bind(name, s)
		if err != nil {
			libraries.del(lib)
			return nil, err
		}
		d.symbols[name] = sym
	}
	return d, nil
}

// lookup resolves name in the library export table.
func (d *dynamic) lookup(name string) (any, error) {
	v, ok := libraries.get(d.lib)
	if !ok {
		return nil, ErrBadHandle
	}
	exports, _ := v.(map[string]any)
	fn, ok := exports[name]
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return fn, nil
}

func (d *dynamic) bind(name string, s Signature) (*symbol, error) {
	fn, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(fn)
	if err := s.check(v.Type()); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	in := make([]reflect.Type, v.Type().NumIn())
	for i := range in {
		in[i] = v.Type().In(i)
	}
	return &symbol{name: name, fn: v, in: in, sig: s}, nil
}

func (d *dynamic) Name() string { return AdapterDynamic }

func (d *dynamic) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	libraries.del(d.lib)
	d.objects = newRegistry()
	return nil
}

// call marshals host into the symbol's argument kinds, invokes it and
// returns the non-error results in host form.
func (d *dynamic) call(name string, host ...any) ([]any, error) {
	if d.closed {
		return nil, ErrClosed
	}
	sym, ok := d.symbols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	if len(host) != len(sym.sig.Args) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgument, name, len(sym.sig.Args), len(host))
	}

	in := make([]reflect.Value, len(host))
	var writeBack []func()
	for i, k := range sym.sig.Args {
		v, post, err := d.marshal(k, sym.in[i], host[i])
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i, err)
		}
		in[i] = v
		if post != nil {
			writeBack = append(writeBack, post)
		}
	}

	out := sym.fn.Call(in)
	for _, f := range writeBack {
		f()
	}
	return d.unmarshal(sym, out)
}

func (d *dynamic) marshal(k Kind, t reflect.Type, host any) (reflect.Value, func(), error) {
	switch k {
	case KindInt32:
		n, err := hostInt(k, host, math.MinInt32, math.MaxInt32)
		return reflect.ValueOf(int32(n)), nil, err
	case KindInt64:
		n, err := hostInt(k, host, math.MinInt64, math.MaxInt64)
		return reflect.ValueOf(n), nil, err
	case KindInt:
		n, err := hostInt(k, host, math.MinInt, math.MaxInt)
		return reflect.ValueOf(int(n)), nil, err
	case KindUint32:
		switch v := host.(type) {
		case uint32:
			return reflect.ValueOf(v), nil, nil
		default:
			n, err := hostInt(k, host, 0, math.MaxUint32)
			return reflect.ValueOf(uint32(n)), nil, err
		}
	case KindFloat64:
		switch v := host.(type) {
		case float64:
			return reflect.ValueOf(v), nil, nil
		case float32:
			return reflect.ValueOf(float64(v)), nil, nil
		default:
			n, err := hostInt(k, host, math.MinInt64, math.MaxInt64)
			return reflect.ValueOf(float64(n)), nil, err
		}
	case KindBool:
		v, ok := host.(bool)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		return reflect.ValueOf(v), nil, nil
	case KindString:
		s, ok := host.(string)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		return reflect.ValueOf(terminated(s)), nil, nil
	case KindBytes:
		b, ok := host.([]byte)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		return reflect.ValueOf(b), nil, nil
	case KindDoubles, KindDoublesInOut, KindDoublesOut:
		src, ok := host.([]float64)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		wire := make([]float64, len(src))
		if k != KindDoublesOut {
			copy(wire, src)
		}
		var post func()
		if k != KindDoubles {
			post = func() { copy(src, wire) }
		}
		return reflect.ValueOf(wire), post, nil
	case KindUint32s:
		src, ok := host.([]uint32)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		return reflect.ValueOf(append([]uint32(nil), src...)), nil, nil
	case KindRecord:
		p, ok := host.(Point)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		dp, err := benchlib.NewDataPoint(p.ID, p.Value, p.Name)
		if err != nil {
			return reflect.Value{}, nil, err
		}
		return reflect.ValueOf(&dp), nil, nil
	case KindRecords:
		ps, ok := host.([]Point)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		dps, err := toDataPoints(ps)
		if err != nil {
			return reflect.Value{}, nil, err
		}
		return reflect.ValueOf(dps), nil, nil
	case KindPointer:
		h, ok := host.(Handle)
		if !ok {
			return reflect.Value{}, nil, hostTypeError(k, host)
		}
		obj, ok := d.objects.get(h)
		if !ok {
			return reflect.Value{}, nil, fmt.Errorf("%w: %d", ErrBadHandle, h)
		}
		v := reflect.ValueOf(obj)
		if !v.Type().AssignableTo(t) {
			return reflect.Value{}, nil, fmt.Errorf("%w: handle %d holds %s, want %s", ErrBadHandle, h, v.Type(), t)
		}
		return v, nil, nil
	}
	return reflect.Value{}, nil, fmt.Errorf("%w: kind %s cannot be an argument", ErrArgument, k)
}

func (d *dynamic) unmarshal(sym *symbol, out []reflect.Value) ([]any, error) {
	res := make([]any, 0, len(out))
	var err error
	for i, k := range sym.sig.Results {
		v := out[i]
		switch k {
		case KindError:
			if !v.IsNil() {
				err = v.Interface().(error)
			}
		case KindPointer:
			if v.IsNil() {
				res = append(res, Handle(0))
				continue
			}
			res = append(res, d.objects.put(v.Interface()))
		case KindOwnedString:
			cs, _ := v.Interface().(*benchlib.CString)
			if cs == nil {
				res = append(res, "")
				continue
			}
			s := cs.String()
			if ferr := cs.Free(); ferr != nil && err == nil {
				err = ferr
			}
			res = append(res, s)
		default:
			res = append(res, v.Interface())
		}
	}
	return res, err
}

// release calls a free function on h and forgets the handle.
func (d *dynamic) release(name string, h Handle) error {
	_, err := d.call(name, h)
	if d.objects != nil {
		d.objects.del(h)
	}
	return err
}

func hostInt(k Kind, host any, lo, hi int64) (int64, error) {
	var n int64
	switch v := host.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint32:
		n = int64(v)
	case uint8:
		n = int64(v)
	default:
		return 0, hostTypeError(k, host)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %d out of range", ErrArgument, n)
	}
	return n, nil
}

func hostTypeError(k Kind, host any) error {
	return fmt.Errorf("%w: cannot pass %T as %s", ErrArgument, host, k)
}

func first[T any](out []any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, fmt.Errorf("%w: no result", ErrSignatureMismatch)
	}
	v, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("%w: result is %T", ErrSignatureMismatch, out[0])
	}
	return v, nil
}

func (d *dynamic) Noop(x int32) (int32, error) {
	return first[int32](d.call("noop", x))
}

func (d *dynamic) AddNumbers(a, b int32) (int32, error) {
	return first[int32](d.call("add_numbers", a, b))
}

func (d *dynamic) CalculateSimple(a int32, b float64, c int32, dd float64) (float64, error) {
	return first[float64](d.call("calculate_simple", a, b, c, dd))
}

func (d *dynamic) FibonacciRecursive(n int32) (int64, error) {
	return first[int64](d.call("fibonacci_recursive", n))
}

func (d *dynamic) FibonacciIterative(n int32) (int64, error) {
	return first[int64](d.call("fibonacci_iterative", n))
}

func (d *dynamic) IsPrime(n int64) (bool, error) {
	return first[bool](d.call("is_prime", n))
}

func (d *dynamic) CountPrimes(start, end int32) (int32, error) {
	return first[int32](d.call("count_primes", start, end))
}

func (d *dynamic) MatrixMultiply(a, b []float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, benchlib.ErrNegativeSize
	}
	out := make([]float64, len(a))
	if _, err := d.call("matrix_multiply", a, b, out, n); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *dynamic) ComputeMathIntensive(x float64, iterations int32) (float64, error) {
	return first[float64](d.call("compute_math_intensive", x, iterations))
}

func (d *dynamic) SumArray(arr []float64) (float64, error) {
	return first[float64](d.call("sum_array", arr))
}

func (d *dynamic) ScaleArray(arr []float64, factor float64) error {
	_, err := d.call("scale_array", arr, factor)
	return err
}

func (d *dynamic) CopyArray(src []float64) ([]float64, error) {
	dst := make([]float64, len(src))
	if _, err := d.call("copy_array", src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (d *dynamic) DotProduct(a, b []float64) (float64, error) {
	return first[float64](d.call("dot_product", a, b))
}

func (d *dynamic) ArrayReverse(arr []float64) error {
	_, err := d.call("array_reverse", arr)
	return err
}

func (d *dynamic) SumStrided(arr []float64, stride int) (float64, error) {
	return first[float64](d.call("sum_strided", arr, stride))
}

func (d *dynamic) StringLength(s string) (int, error) {
	return first[int](d.call("string_length", s))
}

func (d *dynamic) StringConcat(s1, s2 string) (string, error) {
	return first[string](d.call("string_concat", s1, s2))
}

func (d *dynamic) ProcessDataPoint(p Point) (float64, error) {
	return first[float64](d.call("process_datapoint", p))
}

func (d *dynamic) SumDataPoints(points []Point) (float64, error) {
	return first[float64](d.call("sum_datapoints", points))
}

func (d *dynamic) MonteCarloPi(iterations int) (float64, error) {
	return first[float64](d.call("monte_carlo_pi", iterations))
}

func (d *dynamic) BlurArray(input []float64, width, height int) ([]float64, error) {
	out := make([]float64, len(input))
	if _, err := d.call("blur_array", input, out, width, height); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *dynamic) SortArray(arr []float64) error {
	_, err := d.call("sort_array", arr)
	return err
}

func (d *dynamic) AllocateAndSum(size int) (float64, error) {
	h, err := first[Handle](d.call("allocate_array", size))
	if err != nil {
		return 0, err
	}
	sum, err := first[float64](d.call("sum_owned_array", h))
	if ferr := d.release("free_array", h); err == nil {
		err = ferr
	}
	return sum, err
}

func (d *dynamic) ApplyOperation(initial float64, iterations int32) (float64, error) {
	return first[float64](d.call("apply_operation", initial, iterations))
}

func (d *dynamic) ProcessBuffer(buf []byte) error {
	_, err := d.call("process_buffer", buf)
	return err
}

func (d *dynamic) Checksum(buf []byte) (uint32, error) {
	return first[uint32](d.call("checksum", buf))
}

func (d *dynamic) ListOperations(size int) (int64, error) {
	h, err := first[Handle](d.call("create_list", size))
	if err != nil {
		return 0, err
	}
	sum, err := first[int64](d.call("sum_list", h))
	if ferr := d.release("free_list", h); err == nil {
		err = ferr
	}
	return sum, err
}

func (d *dynamic) Popcount(n uint32) (int32, error) {
	return first[int32](d.call("popcount", n))
}

func (d *dynamic) BitwiseReduce(arr []uint32) (uint32, error) {
	return first[uint32](d.call("bitwise_reduce", arr))
}

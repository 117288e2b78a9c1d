// Package ffibench is the public entry point to the benchmark library
// bindings. Open selects one of the adapters (direct calls, symbol lookup
// through a declared signature table, or the exported C ABI) and returns a
// Library whose Binding exposes every library operation.
//
//	lib, err := ffibench.Open(ffibench.Config{Adapter: ffibench.AdapterDynamic})
//	if err != nil {
//	    return err
//	}
//	defer lib.Close()
//
//	b, err := lib.Binding()
//	if err != nil {
//	    return err
//	}
//	sum, err := b.SumArray([]float64{1, 2, 3})
//
// The cgo adapter is only available when the module is built with cgo on a
// non-Windows target; elsewhere Open reports ErrNotBuilt.
package ffibench

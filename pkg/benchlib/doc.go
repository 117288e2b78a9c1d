// Package benchlib is the computation library shared by every binding
// adapter. It holds numerical, string, struct, pointer-graph and
// bit-manipulation routines that stress different marshalling paths.
//
// Every routine is synchronous, runs to completion on the caller's goroutine
// and keeps no state between calls, so interleaved calls from different
// adapters never observe each other. Out-of-domain inputs fail fast with one
// of the sentinel errors declared in errors.go.
//
// Three values own memory and carry a single release operation: *Array from
// AllocateArray, *CString from StringConcat and *List from CreateList. A
// released handle exposes no data and reports ErrReleased on further use.
package benchlib

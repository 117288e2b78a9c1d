// Package internalcheck holds static policy tests for the computation
// library.
//
// The tests load pkg/benchlib with golang.org/x/tools/go/packages and walk
// its syntax to keep the library reentrant: no package-level mutable state,
// no goroutines and no synchronisation or unsafe memory access.
//
// # Internal Use Only
//
// This package exists only for its tests and exports nothing.
package internalcheck

//go:build !cgo || windows

package bindings

// openCGO reports ErrNotBuilt: the C ABI adapter needs cgo on a non-Windows
// target.
func openCGO() (Binding, error) {
	return nil, ErrNotBuilt
}

package bindings

import "fmt"

// Adapters lists every adapter name in a stable order. Adapters that are not
// built into the binary are still listed; Open reports ErrNotBuilt for them.
func Adapters() []string {
	return []string{AdapterCompiled, AdapterDynamic, AdapterCGO}
}

// Open returns a fresh binding for cfg.Adapter. Every binding must be closed.
func Open(cfg Config) (Binding, error) {
	switch cfg.Adapter {
	case AdapterCompiled:
		return newCompiled(), nil
	case AdapterDynamic:
		return openDynamic(librarySymbols())
	case AdapterCGO:
		return openCGO()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapter, cfg.Adapter)
	}
}

package ffibench

import "github.com/hsiuhsiu/ffibench-go/internal/bindings"

// Config selects how the library is reached.
type Config struct {
	// Adapter is one of AdapterCompiled, AdapterDynamic or AdapterCGO. Empty
	// selects AdapterCompiled.
	Adapter string
}

func (c Config) toBindings() bindings.Config {
	if c.Adapter == "" {
		return bindings.Config{Adapter: AdapterCompiled}
	}
	return bindings.Config{Adapter: c.Adapter}
}

package ffibench

import "github.com/hsiuhsiu/ffibench-go/internal/bindings"

// Binding is the capability set every adapter implements.
type Binding = bindings.Binding

// Point is the host-side data record passed to ProcessDataPoint and
// SumDataPoints.
type Point = bindings.Point

// Adapter names accepted by Config.
const (
	AdapterCompiled = bindings.AdapterCompiled
	AdapterDynamic  = bindings.AdapterDynamic
	AdapterCGO      = bindings.AdapterCGO
)

// Adapters lists every adapter name, including ones not built into this
// binary.
func Adapters() []string {
	return bindings.Adapters()
}

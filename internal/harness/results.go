package harness

import (
	"github.com/hsiuhsiu/ffibench-go/internal/stats"
)

// Memory is the allocation profile of a single call, taken from
// runtime.MemStats deltas.
type Memory struct {
	Allocated uint64 `json:"allocated" toml:"allocated"`
	Mallocs   uint64 `json:"mallocs" toml:"mallocs"`
	HeapDelta int64  `json:"heap_delta" toml:"heap_delta"`
}

// Result holds one benchmark's measurements, keyed by adapter name.
type Result struct {
	Name     string                   `json:"name" toml:"name"`
	Category string                   `json:"category" toml:"category"`
	Params   map[string]any           `json:"params,omitempty" toml:"params,omitempty"`
	Stats    map[string]stats.Summary `json:"stats" toml:"stats"`
	Memory   map[string]Memory        `json:"memory,omitempty" toml:"memory,omitempty"`
	Failures map[string]int           `json:"failures,omitempty" toml:"failures,omitempty"`
	// Speedup is the second adapter's mean over the first's. Zero when either
	// side has no samples.
	Speedup float64 `json:"speedup,omitempty" toml:"speedup,omitempty"`
}

// HasSpeedup reports whether Speedup was computed.
func (r Result) HasSpeedup() bool { return r.Speedup > 0 }

// Metadata describes the run that produced a Results file.
type Metadata struct {
	Iterations int      `json:"iterations" toml:"iterations"`
	Warmup     int      `json:"warmup" toml:"warmup"`
	Adapters   []string `json:"adapters" toml:"adapters"`
	Memory     bool     `json:"memory" toml:"memory"`
	Seed       uint64   `json:"seed" toml:"seed"`
	GoVersion  string   `json:"go_version" toml:"go_version"`
	OS         string   `json:"os" toml:"os"`
	Arch       string   `json:"arch" toml:"arch"`
	CPUs       int      `json:"cpus" toml:"cpus"`
	Started    string   `json:"started" toml:"started"`
	Version    string   `json:"version,omitempty" toml:"version,omitempty"`
}

// Results is the document written by a benchmark run.
type Results struct {
	Metadata Metadata `json:"metadata" toml:"metadata"`
	Results  []Result `json:"results" toml:"results"`
}

// Baseline returns the first adapter name, or "" when none ran.
func (m Metadata) Baseline() string {
	if len(m.Adapters) == 0 {
		return ""
	}
	return m.Adapters[0]
}

// Candidate returns the second adapter name, or "" when only one ran.
func (m Metadata) Candidate() string {
	if len(m.Adapters) < 2 {
		return ""
	}
	return m.Adapters[1]
}

package ffibench

import (
	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/internal/conformance"
)

// Library is an opened adapter. It is not safe for concurrent use.
type Library struct {
	cfg     Config
	binding bindings.Binding
	closed  bool
}

// Open binds the library through the configured adapter.
func Open(cfg Config) (*Library, error) {
	b, err := bindings.Open(cfg.toBindings())
	if err != nil {
		return nil, RemapError(err)
	}
	return &Library{cfg: cfg, binding: b}, nil
}

// Config returns the configuration the library was opened with.
func (l *Library) Config() Config {
	if l == nil {
		return Config{}
	}
	return l.cfg
}

// Adapter returns the name of the adapter in use.
func (l *Library) Adapter() string {
	if l == nil || l.binding == nil {
		return ""
	}
	return l.binding.Name()
}

// Binding returns the operations of the opened library.
func (l *Library) Binding() (Binding, error) {
	if l == nil || l.closed {
		return nil, ErrLibraryClosed
	}
	return l.binding, nil
}

// Outcome is the result of one conformance check.
type Outcome = conformance.Outcome

// Verify runs the conformance suite through the library and returns the
// checks that failed.
func (l *Library) Verify() ([]Outcome, error) {
	b, err := l.Binding()
	if err != nil {
		return nil, err
	}
	return conformance.Failures(conformance.Run(b, conformance.Cases())), nil
}

// Close releases the adapter. The method returns ErrLibraryClosed when
// called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if l.closed {
		return ErrLibraryClosed
	}
	if err := l.binding.Close(); err != nil {
		return RemapError(err)
	}
	l.closed = true
	return nil
}

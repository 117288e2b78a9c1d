package ffibench

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
)

var (
	// ErrLibraryClosed is returned for any use of a Library after Close.
	ErrLibraryClosed = errors.New("ffibench: library closed")
	// ErrNotBuilt reports that the selected adapter is not compiled in.
	ErrNotBuilt = errors.New("ffibench: adapter not built")
	// ErrUnknownAdapter reports an adapter name Open does not know.
	ErrUnknownAdapter = errors.New("ffibench: unknown adapter")
	// ErrBindingFailed covers symbol lookup and signature checks failing
	// while the dynamic adapter binds the library.
	ErrBindingFailed = errors.New("ffibench: binding failed")
)

var remapped = []struct {
	from, to error
}{
	{bindings.ErrClosed, ErrLibraryClosed},
	{bindings.ErrNotBuilt, ErrNotBuilt},
	{bindings.ErrUnknownAdapter, ErrUnknownAdapter},
	{bindings.ErrSymbolNotFound, ErrBindingFailed},
	{bindings.ErrSignatureMismatch, ErrBindingFailed},
}

// RemapError converts bindings layer errors to the public sentinels. The
// original error stays in the chain; library errors such as
// benchlib.ErrNegativeSize pass through unchanged.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range remapped {
		if errors.Is(err, m.from) {
			if errors.Is(err, m.to) {
				return err
			}
			return fmt.Errorf("%w: %w", m.to, err)
		}
	}
	return err
}

package bindings

import (
	"reflect"
	"testing"

	"github.com/hsiuhsiu/ffibench-go/pkg/benchlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationsMatchExports(t *testing.T) {
	exports := librarySymbols()
	require.Len(t, declarations, len(exports))
	for name, s := range declarations {
		fn, ok := exports[name]
		require.True(t, ok, "missing export %s", name)
		require.NoError(t, s.check(reflect.TypeOf(fn)), name)
	}
}

func TestSignatureCheckRejects(t *testing.T) {
	tests := []struct {
		name string
		sig  Signature
		fn   any
	}{
		{"arity", sig(args(KindInt32, KindInt32), KindInt32), benchlib.Noop},
		{"arg kind", sig(args(KindInt64), KindInt32), benchlib.Noop},
		{"result kind", sig(args(KindInt32), KindFloat64), benchlib.Noop},
		{"missing error", sig(args(KindInt32), KindInt64), benchlib.FibonacciIterative},
		{"error first", sig(args(KindInt32), KindError, KindInt64), func(int32) (error, int64) { return nil, 0 }},
		{"error argument", sig(args(KindError)), func(error) {}},
		{"not a func", sig(nil), 42},
		{"variadic", sig(args(KindInt32)), func(...int32) {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sig.check(reflect.TypeOf(tt.fn))
			require.ErrorIs(t, err, ErrSignatureMismatch)
		})
	}
}

func TestPointerKindAcceptsAnyPointer(t *testing.T) {
	s := sig(args(KindPointer), KindError)
	require.NoError(t, s.check(reflect.TypeOf((*benchlib.List).Free)))
	require.NoError(t, s.check(reflect.TypeOf((*benchlib.Array).Free)))
	require.Error(t, s.check(reflect.TypeOf(func(int) error { return nil })))
}

func TestSignatureString(t *testing.T) {
	s := declarations["fibonacci_recursive"]
	assert.Equal(t, "(int32) (int64, error)", s.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

package benchlib

import "errors"

var (
	// ErrNegativeSize reports a negative size, count or iteration argument.
	ErrNegativeSize = errors.New("benchlib: negative size")

	// ErrLengthMismatch reports a buffer whose length disagrees with the
	// declared shape.
	ErrLengthMismatch = errors.New("benchlib: length mismatch")

	// ErrAliased reports an output buffer that shares storage with an input.
	ErrAliased = errors.New("benchlib: output aliases input")

	// ErrOutOfDomain reports a scalar argument outside the validated domain.
	ErrOutOfDomain = errors.New("benchlib: argument out of domain")

	// ErrNilPointer reports a missing required reference.
	ErrNilPointer = errors.New("benchlib: nil pointer")

	// ErrReleased reports use or release of a handle that was already released.
	ErrReleased = errors.New("benchlib: handle already released")

	// ErrUnterminated reports a text buffer without a NUL terminator.
	ErrUnterminated = errors.New("benchlib: string not NUL-terminated")

	// ErrNameTooLong reports a DataPoint name that does not fit its buffer.
	ErrNameTooLong = errors.New("benchlib: name too long")

	// ErrInvalidStride reports a stride smaller than one.
	ErrInvalidStride = errors.New("benchlib: stride must be at least 1")
)

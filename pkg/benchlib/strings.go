package benchlib

import "bytes"

// StringLength returns the number of bytes before the first NUL in s.
func StringLength(s []byte) (int, error) {
	n := bytes.IndexByte(s, 0)
	if n < 0 {
		return 0, ErrUnterminated
	}
	return n, nil
}

// CString is an owned, NUL-terminated byte string.
type CString struct {
	buf []byte
}

// StringConcat returns a newly allocated NUL-terminated string holding s1
// followed by s2. Both inputs are read up to their first NUL, or whole when
// they have none. The caller releases the result with Free.
func StringConcat(s1, s2 []byte) (*CString, error) {
	s1 = trimNUL(s1)
	s2 = trimNUL(s2)
	buf := make([]byte, len(s1)+len(s2)+1)
	n := copy(buf, s1)
	copy(buf[n:], s2)
	return &CString{buf: buf}, nil
}

func trimNUL(s []byte) []byte {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// Bytes returns the string contents without the terminator, or nil once
// released. The slice aliases the owned buffer.
func (s *CString) Bytes() []byte {
	if s == nil || s.buf == nil {
		return nil
	}
	return s.buf[:len(s.buf)-1]
}

// Terminated returns the contents including the trailing NUL.
func (s *CString) Terminated() []byte {
	if s == nil {
		return nil
	}
	return s.buf
}

// Len returns the string length without the terminator.
func (s *CString) Len() int {
	return len(s.Bytes())
}

func (s *CString) String() string {
	return string(s.Bytes())
}

// Free releases the buffer. A second call returns ErrReleased.
func (s *CString) Free() error {
	if s == nil {
		return ErrNilPointer
	}
	if s.buf == nil {
		return ErrReleased
	}
	s.buf = nil
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// ErrWriteLimit is returned by LimitedWriter once its budget is spent.
var ErrWriteLimit = errors.New("audiotest: write limit reached")

// SeekBuffer is an in-memory io.WriteSeeker. Writing past the end grows it.
type SeekBuffer struct {
	buf []byte
	pos int
}

func (s *SeekBuffer) Write(p []byte) (int, error) {
	if end := s.pos + len(p); end > len(s.buf) {
		s.buf = append(s.buf, make([]byte, end-len(s.buf))...)
	}
	n := copy(s.buf[s.pos:], p)
	s.pos += n
	return n, nil
}

func (s *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(s.pos) + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, fmt.Errorf("audiotest: invalid whence %d", whence)
	}

	if abs < 0 {
		return 0, fmt.Errorf("audiotest: negative position %d", abs)
	}

	s.pos = int(abs)
	return abs, nil
}

// Bytes returns the written contents.
func (s *SeekBuffer) Bytes() []byte { return s.buf }

// Len returns the size of the contents.
func (s *SeekBuffer) Len() int { return len(s.buf) }

// LimitedWriter fails every write once Limit bytes have been accepted.
type LimitedWriter struct {
	SeekBuffer
	Limit int
}

func (l *LimitedWriter) Write(p []byte) (int, error) {
	if l.Len()+len(p) > l.Limit {
		return 0, ErrWriteLimit
	}
	return l.SeekBuffer.Write(p)
}

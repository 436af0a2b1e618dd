package common

import (
	"github.com/cocosip/go-jpeg-fidelity/codec"
)

// FixedWriter writes into a caller-provided buffer without growing it.
type FixedWriter struct {
	buf []byte
	n   int
}

// NewFixedWriter returns a FixedWriter over buf.
func NewFixedWriter(buf []byte) *FixedWriter {
	return &FixedWriter{buf: buf}
}

// Write copies p into the buffer. If p does not fit, the part that fits is
// written and codec.ErrBufferTooSmall is returned.
func (w *FixedWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	if n < len(p) {
		return n, codec.ErrBufferTooSmall
	}
	return n, nil
}

// Len returns the number of bytes written so far.
func (w *FixedWriter) Len() int {
	return w.n
}

// Bytes returns the written part of the buffer.
func (w *FixedWriter) Bytes() []byte {
	return w.buf[:w.n]
}

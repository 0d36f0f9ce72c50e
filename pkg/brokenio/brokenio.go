// brokenio wraps readers and writers so they fail. It is for testing
// that errors from files and pipes are passed back up and not lost.
// Typical use: you have a reader from a file or a buffer. You write
// rdr = brokenio.NewReader(rdr, 100) and everything works as before
// until 100 bytes have gone through, then you get ErrBroken.
// A limit of zero fails on the first call. This is what one often
// sees with a pipe that went away.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is what every broken operation returns.
var ErrBroken = errors.New("brokenio: artificial failure")

// Reader passes reads through until it has given out limit bytes.
// If ZeroFile is set, the first read returns io.EOF instead, as from
// an empty file.
type Reader struct {
	rdr      io.Reader // Wrapped reader
	limit    int
	ZeroFile bool
	nCalled  int
	nByte    int
}

// NewReader returns a new Reader, a wrapper around the old one
func NewReader(r io.Reader, limit int) *Reader {
	return &Reader{rdr: r, limit: limit}
}

// Read gives at most what is left before the limit, then fails.
func (r *Reader) Read(p []byte) (n int, err error) {
	r.nCalled++
	if r.ZeroFile && r.nCalled == 1 {
		return 0, io.EOF
	}
	left := r.limit - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err = r.rdr.Read(p)
	r.nByte += n
	return n, err
}

// String says how much went through, for test messages.
func (r *Reader) String() string {
	return fmt.Sprintf("%d calls and %d bytes", r.nCalled, r.nByte)
}

// Writer accepts limit bytes, then every write fails. A write that
// crosses the limit is cut short, as a full disk would do.
type Writer struct {
	w     io.Writer
	limit int
	nByte int
}

// NewWriter wraps w. If w is nil, bytes are thrown away.
func NewWriter(w io.Writer, limit int) *Writer {
	if w == nil {
		w = io.Discard
	}
	return &Writer{w: w, limit: limit}
}

// Write writes what fits under the limit and fails if that was not
// everything.
func (w *Writer) Write(p []byte) (int, error) {
	left := w.limit - w.nByte
	if left >= len(p) {
		n, err := w.w.Write(p)
		w.nByte += n
		return n, err
	}
	if left < 0 {
		left = 0
	}
	n, err := w.w.Write(p[:left])
	w.nByte += n
	if err != nil {
		return n, err
	}
	return n, ErrBroken
}

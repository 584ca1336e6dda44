package core

// streaming.go provides io.Reader wrappers applied to input before tokenizing:
//
//   - BOMSkippingReader: Removes a leading UTF-8 BOM (0xEF 0xBB 0xBF)
//   - CountingReader: Tracks bytes consumed for progress logging
//
// Neither buffers more than a few bytes, so scans stay O(line length) in memory.

import (
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and drops the UTF-8 BOM if the
// stream starts with one. Without this a BOM would become part of the first
// header name and the column lookup would fail.
type BOMSkippingReader struct {
	reader  io.Reader
	checked bool
	head    [3]byte
	pending []byte // bytes read during the BOM check not yet returned
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{reader: r}
}

// Read implements io.Reader.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true

		n, err := io.ReadFull(r.reader, r.head[:])
		switch err {
		case nil, io.EOF, io.ErrUnexpectedEOF:
		default:
			return 0, err
		}
		if n == len(utf8BOM) && bytes.Equal(r.head[:], utf8BOM) {
			r.pending = nil
		} else {
			r.pending = r.head[:n]
		}
		if n < len(r.head) && len(r.pending) == 0 {
			return 0, io.EOF
		}
	}

	if len(r.pending) > 0 {
		n := copy(p, r.pending)
		r.pending = r.pending[n:]
		return n, nil
	}

	return r.reader.Read(p)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
	Total     int64 // If known (0 if unknown)
}

// NewCountingReader creates a counting reader with optional total size.
func NewCountingReader(r io.Reader, total int64) *CountingReader {
	return &CountingReader{
		reader: r,
		Total:  total,
	}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// Progress returns the read progress as a percentage (0-100).
// Returns 0 if total is unknown.
func (r *CountingReader) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	pct := int(r.BytesRead * 100 / r.Total)
	if pct > 100 {
		pct = 100
	}
	return pct
}

package core

// tokenizer.go splits a byte stream into rows of fields.
//
// The format is deliberately minimal: one record per line, fields separated
// by a single delimiter byte, no quoting and no escaping. A delimiter inside a
// field cannot be expressed.

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxLineLength is the longest line (in bytes, excluding the line
// terminator) the tokenizer accepts unless configured otherwise.
const DefaultMaxLineLength = 4096

// DefaultDelimiter separates fields within a line.
const DefaultDelimiter = ','

// Tokenizer reads delimited rows from a stream, one line at a time.
type Tokenizer struct {
	br        *bufio.Reader
	delim     byte
	maxLen    int
	buf       []byte // line buffer, reused across calls
	lineNo    int
	lastWidth int
	err       error
}

// NewTokenizer returns a Tokenizer reading from r. A zero delim selects
// DefaultDelimiter and a non-positive maxLen selects DefaultMaxLineLength.
func NewTokenizer(r io.Reader, delim byte, maxLen int) *Tokenizer {
	if r == nil {
		panic("core: tokenizer source cannot be nil")
	}
	if delim == 0 {
		delim = DefaultDelimiter
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	return &Tokenizer{
		br:        bufio.NewReader(r),
		delim:     delim,
		maxLen:    maxLen,
		buf:       make([]byte, 0, 512),
		lastWidth: 16,
	}
}

// Line returns the 1-based line number of the last row returned by ReadRow,
// or 0 before the first row.
func (t *Tokenizer) Line() int {
	return t.lineNo
}

// ReadRow returns the fields of the next line. It returns io.EOF, and no
// row, once the stream is exhausted; a stream of zero bytes yields io.EOF
// on the first call. The returned strings do not alias the internal buffer
// and stay valid after subsequent calls.
//
// Errors other than io.EOF are sticky: once ReadRow fails it keeps
// returning the same error.
func (t *Tokenizer) ReadRow() ([]string, error) {
	if t.err != nil {
		return nil, t.err
	}

	line, err := t.readLine()
	if err != nil {
		t.err = err
		return nil, err
	}
	t.lineNo++

	return t.split(line), nil
}

// readLine accumulates one line into t.buf and returns it without its
// terminator. Lines longer than maxLen are rejected as soon as the excess is
// seen, so memory stays bounded by the limit.
func (t *Tokenizer) readLine() ([]byte, error) {
	t.buf = t.buf[:0]

	for {
		chunk, err := t.br.ReadSlice('\n')
		t.buf = append(t.buf, chunk...)

		switch {
		case err == nil:
			// Line terminated by '\n'.
		case errors.Is(err, bufio.ErrBufferFull):
			// A trailing '\r' may still be half of a CRLF pair.
			if len(t.buf)-1 > t.maxLen {
				return nil, t.tooLong()
			}
			continue
		case err == io.EOF:
			if len(t.buf) == 0 {
				return nil, io.EOF
			}
		default:
			return nil, &RowError{Line: t.lineNo + 1, Err: fmt.Errorf("%w: %w", ErrRead, err)}
		}
		break
	}

	line := t.buf
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if len(line) > t.maxLen {
		return nil, t.tooLong()
	}
	return line, nil
}

func (t *Tokenizer) tooLong() error {
	return &RowError{
		Line: t.lineNo + 1,
		Err:  fmt.Errorf("%w (limit %d bytes)", ErrLineTooLong, t.maxLen),
	}
}

// split cuts line at every delimiter. Empty fields are preserved, so n
// delimiters always produce n+1 fields. All fields share a single string
// allocation that is independent of t.buf.
func (t *Tokenizer) split(line []byte) []string {
	s := string(line)
	fields := make([]string, 0, t.lastWidth)

	start := 0
	for {
		i := bytes.IndexByte(line[start:], t.delim)
		if i < 0 {
			fields = append(fields, s[start:])
			break
		}
		fields = append(fields, s[start:start+i])
		start += i + 1
	}

	t.lastWidth = len(fields)
	return fields
}

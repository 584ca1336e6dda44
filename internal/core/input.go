package core

// input.go opens a table file for scanning.
//
// Compressed inputs are decoded on the fly, selected by file extension:
//
//	.gz   gzip
//	.bz2  bzip2
//	.xz   xz
//	.zst  zstandard
//
// Anything else is read as plain text.

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/minfind/internal/logging"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies how an input file is encoded.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	case CompressionZstd:
		return "zstd"
	default:
		return "none"
	}
}

// DetectCompression infers the compression from the file extension.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".bz2":
		return CompressionBzip2
	case ".xz":
		return CompressionXZ
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Input is an opened table stream. Close releases the decoder and the file.
type Input struct {
	io.Reader
	Counter     *CountingReader // counts raw (possibly compressed) file bytes
	Compression Compression

	closers []func() error
}

// Close releases every resource held by the input, innermost first, and
// returns the first error encountered.
func (in *Input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	in.closers = nil
	return first
}

// OpenInput opens path, decodes it according to its extension and strips a
// leading BOM. Every failure wraps ErrStreamOpen; on failure nothing is left
// open.
func OpenInput(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamOpen, err)
	}

	var size int64
	if st, err := f.Stat(); err == nil {
		size = st.Size()
	}

	in := &Input{
		Counter:     NewCountingReader(f, size),
		Compression: DetectCompression(path),
		closers:     []func() error{f.Close},
	}

	decoded, closeFn, err := newDecoder(in.Counter, in.Compression)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrStreamOpen, in.Compression, err)
	}
	if closeFn != nil {
		in.closers = append(in.closers, closeFn)
	}

	in.Reader = NewBOMSkippingReader(decoded)
	return in, nil
}

// newDecoder wraps r with the decompressor for c. The returned close
// function is nil when the decoder holds no resources.
func newDecoder(r io.Reader, c Compression) (io.Reader, func() error, error) {
	switch c {
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz.Close, nil

	case CompressionBzip2:
		return bzip2.NewReader(r), nil, nil

	case CompressionXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return xr, nil, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, func() error { dec.Close(); return nil }, nil

	default:
		return r, nil, nil
	}
}

// ScanFile opens path and runs Scan over it. The file is closed on every
// exit path.
func ScanFile(ctx context.Context, path string, opts ScanOptions) (res *Result, err error) {
	log := logging.FromContext(ctx)

	in, err := OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrRead, path, cerr)
			res = nil
		}
	}()

	log.Debug("input opened",
		"path", path,
		"compression", in.Compression.String(),
		"bytes", in.Counter.Total,
	)

	res, err = Scan(ctx, in, opts)
	if err != nil {
		return nil, err
	}

	log.Debug("input consumed",
		"bytes_read", in.Counter.BytesRead,
		"progress_pct", in.Counter.Progress(),
	)
	return res, nil
}

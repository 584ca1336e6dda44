package core

// reduce.go implements the streaming minimum reduction.
//
// The header row is resolved to positions once. Every data row is then parsed
// by position and folded into a running minimum per value column. Comparison
// is strict, so among equal values the earliest row keeps the minimum.
//
// Any parse or lookup failure aborts the scan: a returned Result always
// reflects every row of the input.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/JonMunkholm/minfind/internal/logging"
)

// ContextCheckInterval is how often (in rows) to check for context cancellation.
// Zero or negative disables the check.
var ContextCheckInterval = 1000

// ScanOptions configures a scan.
type ScanOptions struct {
	ValueColumns  []string // Numeric columns to minimize, at least one
	IDColumn      string   // Integer column reported alongside each minimum
	Delimiter     byte     // Field separator, 0 for DefaultDelimiter
	MaxLineLength int      // Line limit in bytes, 0 for DefaultMaxLineLength
}

// Minimum is the smallest value seen in one column and the identifier from
// the same row.
type Minimum struct {
	Column string
	Value  float64
	ID     int64
	Line   int // Input line the minimum was found on
}

// Result holds one Minimum per requested value column, in request order.
type Result struct {
	Minima []Minimum
	Rows   int // Data rows scanned, header excluded
}

// Get returns the minimum recorded for column.
func (r *Result) Get(column string) (Minimum, bool) {
	for _, m := range r.Minima {
		if m.Column == column {
			return m, true
		}
	}
	return Minimum{}, false
}

// Reducer folds data rows into running minima. Create it with NewReducer
// from the header row.
type Reducer struct {
	idColumn string
	idPos    int
	valuePos []int
	width    int // fields a row needs to reach every resolved position

	minima []Minimum
	values []float64 // scratch, reused per row
	rows   int

	log *slog.Logger // optional; new minima are logged at debug level with the full row
}

// NewReducer resolves valueColumns and idColumn against header. It fails
// with a *MissingColumnError naming the first column that is absent.
func NewReducer(header []string, valueColumns []string, idColumn string) (*Reducer, error) {
	if len(valueColumns) == 0 {
		return nil, errors.New("no value columns requested")
	}

	idx := MakeHeaderIndex(header)
	positions, err := idx.Resolve(append(append([]string{}, valueColumns...), idColumn)...)
	if err != nil {
		return nil, err
	}

	r := &Reducer{
		idColumn: idColumn,
		idPos:    positions[len(positions)-1],
		valuePos: positions[:len(positions)-1],
		minima:   make([]Minimum, len(valueColumns)),
		values:   make([]float64, len(valueColumns)),
	}
	for i, col := range valueColumns {
		r.minima[i].Column = col
	}
	for _, p := range positions {
		if p+1 > r.width {
			r.width = p + 1
		}
	}
	return r, nil
}

// Add parses row and updates the minima. line is used for error reporting
// and recorded with any new minimum. On error the reducer state is left
// unchanged.
func (r *Reducer) Add(line int, row []string) error {
	if len(row) < r.width {
		return &RowError{
			Line: line,
			Err:  fmt.Errorf("%w: got %d, need %d", ErrShortRow, len(row), r.width),
		}
	}

	for i, pos := range r.valuePos {
		v, err := ParseValue(row[pos])
		if err != nil {
			return &RowError{Line: line, Column: r.minima[i].Column, Raw: row[pos], Err: err}
		}
		r.values[i] = v
	}

	id, err := ParseID(row[r.idPos])
	if err != nil {
		return &RowError{Line: line, Column: r.idColumn, Raw: row[r.idPos], Err: err}
	}

	first := r.rows == 0
	for i, v := range r.values {
		if first || v < r.minima[i].Value {
			r.minima[i].Value = v
			r.minima[i].ID = id
			r.minima[i].Line = line
			r.logMinimum(r.minima[i], row)
		}
	}
	r.rows++
	return nil
}

func (r *Reducer) logMinimum(m Minimum, row []string) {
	if r.log == nil || !r.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	r.log.Debug("new minimum",
		"column", m.Column,
		"value", m.Value,
		"id", m.ID,
		"line", m.Line,
		"row", row,
	)
}

// Rows returns the number of data rows added so far.
func (r *Reducer) Rows() int {
	return r.rows
}

// Result returns the final minima. It fails with ErrNoDataRows when no row
// was ever added, rather than reporting placeholder values.
func (r *Reducer) Result() (*Result, error) {
	if r.rows == 0 {
		return nil, ErrNoDataRows
	}
	minima := make([]Minimum, len(r.minima))
	copy(minima, r.minima)
	return &Result{Minima: minima, Rows: r.rows}, nil
}

// Scan reads src once, front to back, and returns the minimum of each
// configured value column. The first row is the header.
func Scan(ctx context.Context, src io.Reader, opts ScanOptions) (*Result, error) {
	log := logging.FromContext(ctx)

	tok := NewTokenizer(src, opts.Delimiter, opts.MaxLineLength)

	header, err := tok.ReadRow()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, err
	}

	red, err := NewReducer(header, opts.ValueColumns, opts.IDColumn)
	if err != nil {
		return nil, err
	}
	red.log = log
	log.Debug("header resolved",
		"columns", len(header),
		"value_columns", opts.ValueColumns,
		"id_column", opts.IDColumn,
	)

	for {
		row, err := tok.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// Check context periodically to allow cancellation
		if n := ContextCheckInterval; n > 0 && red.Rows()%n == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("scan cancelled at line %d: %w", tok.Line(), err)
			}
		}

		if err := red.Add(tok.Line(), row); err != nil {
			return nil, err
		}
	}

	res, err := red.Result()
	if err != nil {
		return nil, err
	}
	log.Debug("scan finished", "rows", res.Rows)
	return res, nil
}

// ScanMin is Scan for a single value column.
func ScanMin(ctx context.Context, src io.Reader, valueColumn, idColumn string) (Minimum, error) {
	res, err := Scan(ctx, src, ScanOptions{
		ValueColumns: []string{valueColumn},
		IDColumn:     idColumn,
	})
	if err != nil {
		return Minimum{}, err
	}
	return res.Minima[0], nil
}

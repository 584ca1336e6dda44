package core

// convert.go turns raw field text into numbers.
//
// Parsing is strict. Input is expected to be machine-generated, so nothing is
// trimmed or cleaned up: whitespace, currency symbols, thousands separators,
// hex literals, "inf" and "nan" are all rejected rather than guessed at.

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// numericRegex validates decimal and scientific notation before it reaches
// strconv, which on its own would also accept "Inf", "NaN", hex floats and
// underscores.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// integerRegex validates a signed base-10 integer.
var integerRegex = regexp.MustCompile(`^[+-]?\d+$`)

// ParseValue parses s as a float64. Values that overflow float64 are
// rejected along with anything that is not plain decimal or exponential
// notation. The returned error wraps ErrMalformedNumber.
func ParseValue(s string) (float64, error) {
	if !numericRegex.MatchString(s) {
		return 0, ErrMalformedNumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: out of range", ErrMalformedNumber)
		}
		return 0, ErrMalformedNumber
	}
	return f, nil
}

// ParseID parses s as a base-10 int64. The returned error wraps
// ErrMalformedInteger, including for values outside the int64 range.
func ParseID(s string) (int64, error) {
	if !integerRegex.MatchString(s) {
		return 0, ErrMalformedInteger
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: out of range", ErrMalformedInteger)
		}
		return 0, ErrMalformedInteger
	}
	return i, nil
}

// Package core finds column minima in delimited text tables.
//
// The package has no CLI or configuration dependencies; cmd/minfind is a
// thin wrapper around [ScanFile].
//
// # Pipeline
//
// A scan is a single sequential pass over one stream:
//
//  1. [OpenInput] opens the file, decompresses by extension and strips a BOM
//  2. [Tokenizer] splits each line on the delimiter into fields
//  3. The first row is turned into a [HeaderIndex] and the requested columns
//     are resolved to positions once
//  4. [Reducer] parses every following row by position and keeps a running
//     minimum per value column, together with the identifier on that row
//
// Ties keep the earliest row: a later row replaces a minimum only when its
// value is strictly smaller.
//
// # Input Format
//
// One record per line, fields separated by a single byte (',' by default),
// no quoting or escaping. Lines may end in LF or CRLF. Lines longer than
// [DefaultMaxLineLength] bytes are rejected unless the limit is raised.
//
// # Error Handling
//
// Every failure is fatal and aborts the scan; there is no skip-and-continue
// mode, so a returned [Result] always covers every row. Errors match one of
// the Err* sentinels with errors.Is. Row-level failures are reported as
// [*RowError] carrying the line number and column name. [MapError] turns any
// of them into a coded [UserMessage] for display.
package core

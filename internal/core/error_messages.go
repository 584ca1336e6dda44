package core

// error_messages.go maps scan errors to short user-facing messages with a
// code for reference.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Cannot open input: the file is missing, unreadable or has a
//	          corrupt compression header
//	FILE002 - Read error: the input failed while being read
//	FILE003 - Line too long: a line exceeds the configured maximum length
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Missing header: the input is empty
//	VAL002 - Invalid number: a value field is not a decimal number
//	VAL003 - Invalid integer: an identifier field is not an integer
//	VAL004 - Missing column: a required column is not in the header
//	VAL005 - Short row: a data row has fewer fields than required
//
// # Scan Errors (SCAN001-SCAN099)
//
//	SCAN001 - No data: the header is not followed by any rows
//	SCAN002 - Cancelled: the scan was interrupted
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: anything not listed above

import (
	"context"
	"errors"
	"fmt"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for reference
}

// errorKind pairs an error kind with its user message.
type errorKind struct {
	target error
	msg    UserMessage
}

// errorKinds is matched in order with errors.Is; the first match wins.
var errorKinds = []errorKind{
	{
		target: ErrStreamOpen,
		msg: UserMessage{
			Message: "Input file cannot be opened",
			Action:  "Check the path, permissions and compression format",
			Code:    "FILE001",
		},
	},
	{
		target: ErrRead,
		msg: UserMessage{
			Message: "Input file could not be read",
			Action:  "Check that the file is complete and not corrupted",
			Code:    "FILE002",
		},
	},
	{
		target: ErrLineTooLong,
		msg: UserMessage{
			Message: "A line exceeds the maximum length",
			Action:  "Raise MINFIND_MAX_LINE_LENGTH or check the file is line-delimited",
			Code:    "FILE003",
		},
	},
	{
		target: ErrMissingHeader,
		msg: UserMessage{
			Message: "Input has no header line",
			Action:  "Provide a CSV file whose first line names the columns",
			Code:    "VAL001",
		},
	},
	{
		target: ErrMalformedNumber,
		msg: UserMessage{
			Message: "Invalid number format detected",
			Action:  "Use plain decimal or exponential notation, e.g. 0.25 or 2.5e-1",
			Code:    "VAL002",
		},
	},
	{
		target: ErrMalformedInteger,
		msg: UserMessage{
			Message: "Invalid identifier detected",
			Action:  "Identifiers must be base-10 integers within 64-bit range",
			Code:    "VAL003",
		},
	},
	{
		target: ErrMissingColumn,
		msg: UserMessage{
			Message: "Required column is missing from CSV",
			Action:  "Check the header names; matching is case-sensitive",
			Code:    "VAL004",
		},
	},
	{
		target: ErrShortRow,
		msg: UserMessage{
			Message: "A row has fewer fields than the header requires",
			Action:  "Check for truncated lines",
			Code:    "VAL005",
		},
	},
	{
		target: ErrNoDataRows,
		msg: UserMessage{
			Message: "Input has a header but no data rows",
			Action:  "Provide at least one data row",
			Code:    "SCAN001",
		},
	},
	{
		target: context.Canceled,
		msg: UserMessage{
			Message: "Scan was cancelled",
			Action:  "Run the scan again",
			Code:    "SCAN002",
		},
	},
	{
		target: context.DeadlineExceeded,
		msg: UserMessage{
			Message: "Scan was cancelled",
			Action:  "Run the scan again",
			Code:    "SCAN002",
		},
	},
}

// defaultMessage is returned when no kind matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts an error to a user-friendly message. It returns the
// zero UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.msg
		}
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err is one of the known kinds rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

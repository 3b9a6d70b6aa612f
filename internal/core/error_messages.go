package core

// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support reference.
// A failed load prints one of these instead of a stack of wrapped errors.
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL002 - Invalid number: A numeric field could not be decoded
//	         Action: Check the decimal convention (SOLUTIONS_DECIMAL)
//	         Matches: ErrInvalidNumber
//
//	VAL004 - Missing field: A data row ends before a required field
//	         Action: Check the delimiter (SOLUTIONS_DELIMITER)
//	         Matches: ErrMissingField
//
// # Data Errors (DATA001-DATA099)
//
//	DATA001 - Empty dataset: No data row passed validation
//	          Action: Check the delimiter; a wrong one makes every row look blank
//	          Matches: ErrEmptyDataset
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File not found
//	          Matches: fs.ErrNotExist
//
//	FILE002 - Invalid delimited text: A quoted field is never closed
//	          Matches: ErrInvalidQuoting
//
//	FILE003 - Encoding error: The file contains bytes invalid in its encoding
//	          Matches: ErrEncoding
//
//	FILE006 - Permission denied
//	          Matches: fs.ErrPermission
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Re-run with LOG_LEVEL=debug and check the log
//
// Targets are matched with errors.Is in order; the first match wins.

import (
	"errors"
	"fmt"
	"io/fs"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern maps a sentinel error to its user message.
type errorPattern struct {
	target error
	msg    UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Validation Errors (VAL002, VAL004)
	// =========================================================================
	{
		target: ErrInvalidNumber,
		msg: UserMessage{
			Message: "A numeric field could not be decoded",
			Action:  "Check that the decimal convention matches the file",
			Code:    "VAL002",
		},
	},
	{
		target: ErrMissingField,
		msg: UserMessage{
			Message: "A data row is missing required fields",
			Action:  "Check that the delimiter matches the file",
			Code:    "VAL004",
		},
	},

	// =========================================================================
	// Data Errors (DATA001)
	// =========================================================================
	{
		target: ErrEmptyDataset,
		msg: UserMessage{
			Message: "The file contains no valid data rows",
			Action:  "Check the delimiter and that the solver wrote at least one iteration",
			Code:    "DATA001",
		},
	},

	// =========================================================================
	// File Errors (FILE001-FILE006)
	// =========================================================================
	{
		target: fs.ErrNotExist,
		msg: UserMessage{
			Message: "The solutions file does not exist",
			Action:  "Check the file path",
			Code:    "FILE001",
		},
	},
	{
		target: ErrInvalidQuoting,
		msg: UserMessage{
			Message: "The file is not valid delimited text",
			Action:  "Check the quote character and look for an unterminated quoted field",
			Code:    "FILE002",
		},
	},
	{
		target: ErrEncoding,
		msg: UserMessage{
			Message: "The file contains invalid characters",
			Action:  "Set the source encoding or save the file as UTF-8",
			Code:    "FILE003",
		},
	},
	{
		target: fs.ErrPermission,
		msg: UserMessage{
			Message: "The solutions file cannot be read",
			Action:  "Check the file permissions",
			Code:    "FILE006",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Re-run with LOG_LEVEL=debug and check the log",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, ep := range errorPatterns {
		if errors.Is(err, ep.target) {
			return ep.msg
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

// IsUserFacing reports whether err matches a known pattern rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

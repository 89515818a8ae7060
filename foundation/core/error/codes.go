// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the mBASIC front end so that
//              callers can classify failures without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: BASIC lexer/parser codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown        Code = "UNKNOWN"
	CodeInternal       Code = "INTERNAL"
	CodeNotFound       Code = "NOT_FOUND"
	CodeInvalidInput   Code = "INVALID_INPUT"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"
	CodeCanceled       Code = "CANCELED"

	// BASIC front end
	CodeBasicLex      Code = "BASIC_LEX"
	CodeBasicParse    Code = "BASIC_PARSE"
	CodeBasicDepth    Code = "BASIC_DEPTH"
	CodeBasicSemantic Code = "BASIC_SEMANTIC"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsSyntax reports whether the code describes a rejected source line
func (c Code) IsSyntax() bool {
	switch c {
	case CodeBasicLex, CodeBasicParse, CodeBasicDepth:
		return true
	default:
		return false
	}
}

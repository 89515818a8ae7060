// File: errors.go
// Title: Lexer and Parser Errors
// Description: Typed errors for lexical and syntactic failures. Both carry
//              the source line number and never a partially built node.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: ParseError with position information
// - 2026-10-19 v0.2.0: LexError, expected/found reporting, depth sentinel

package parser

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded is wrapped by a ParseError when IF or expression nesting
// goes beyond the configured limit
var ErrDepthExceeded = errors.New("nesting depth exceeded")

// LexError reports input the lexer could not tokenize
type LexError struct {
	LineNumber int // -1 when the line number itself could not be read
	Offset     int // byte offset of the failing scan position
	Message    string
}

func (le *LexError) Error() string {
	if le.LineNumber < 0 {
		return fmt.Sprintf("lex error at offset %d: %s", le.Offset, le.Message)
	}
	return fmt.Sprintf("lex error at line %d, offset %d: %s", le.LineNumber, le.Offset, le.Message)
}

// ParseError reports a grammar violation
type ParseError struct {
	LineNumber int
	Offset     int    // byte offset of the offending token
	Expected   string // what the grammar required, empty if not applicable
	Found      string // description of the offending token
	Message    string // free-form detail
	Err        error  // underlying cause, e.g. ErrDepthExceeded
}

func (pe *ParseError) Error() string {
	msg := pe.Message
	if pe.Expected != "" {
		msg = fmt.Sprintf("expected %s, found %s", pe.Expected, pe.Found)
		if pe.Message != "" {
			msg += ": " + pe.Message
		}
	}
	return fmt.Sprintf("parse error at line %d: %s", pe.LineNumber, msg)
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

func expectedError(line int, expected string, found Token) *ParseError {
	return &ParseError{
		LineNumber: line,
		Offset:     found.Offset,
		Expected:   expected,
		Found:      found.describe(),
	}
}

func depthError(line int, what string, limit int, at Token) *ParseError {
	return &ParseError{
		LineNumber: line,
		Offset:     at.Offset,
		Message:    fmt.Sprintf("%s nested deeper than %d levels", what, limit),
		Err:        ErrDepthExceeded,
	}
}

// File: token.go
// Title: BASIC Tokens and Token Streams
// Description: Defines the token kinds produced by the lexer and the
//              peekable single-cursor stream the parser consumes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial token definitions
// - 2026-10-19 v0.2.0: BASIC token kinds, idempotent EOF stream

package parser

import (
	"fmt"
	"strings"
)

// Kind represents the type of a lexical token
type Kind int

const (
	KindEOF Kind = iota
	KindLineNumber
	KindKeyword       // PRINT, LET, FOR, THEN, ...
	KindComment       // text following REM
	KindString        // "raw body"
	KindNumber        // 12, 1.5, .5
	KindVariable      // A, B2, N$
	KindFunction      // registered function name
	KindConstant      // PI
	KindOperator      // + - * / = <> < > <= >= ( ) [ ] ,
	KindLogicOperator // AND, OR
	KindLineModifier  // ;
)

// String returns a string representation of the token kind
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindLineNumber:
		return "LINE_NUMBER"
	case KindKeyword:
		return "KEYWORD"
	case KindComment:
		return "COMMENT"
	case KindString:
		return "STRING"
	case KindNumber:
		return "NUMBER"
	case KindVariable:
		return "VARIABLE"
	case KindFunction:
		return "FUNCTION"
	case KindConstant:
		return "CONSTANT"
	case KindOperator:
		return "OPERATOR"
	case KindLogicOperator:
		return "LOGIC_OPERATOR"
	case KindLineModifier:
		return "LINE_MODIFIER"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token. Tokens are immutable values.
type Token struct {
	Kind   Kind   // Token kind
	Value  string // Lexeme; upper case for names, raw body for strings
	Offset int    // Byte offset of the lexeme in the source line
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Kind == KindEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// Is reports whether the token has the given kind and, case-insensitively, value
func (t Token) Is(kind Kind, value string) bool {
	return t.Kind == kind && strings.EqualFold(t.Value, value)
}

// End returns the byte offset just past the lexeme. String values omit
// their quotes, which are counted back here.
func (t Token) End() int {
	if t.Kind == KindString {
		return t.Offset + len(t.Value) + 2
	}
	return t.Offset + len(t.Value)
}

// describe renders the token for "found ..." error messages
func (t Token) describe() string {
	switch t.Kind {
	case KindEOF:
		return "end of line"
	case KindString:
		return fmt.Sprintf("string %q", t.Value)
	default:
		return fmt.Sprintf("%s %q", strings.ToLower(strings.ReplaceAll(t.Kind.String(), "_", " ")), t.Value)
	}
}

// TokenStream is an ordered token sequence with a single read cursor.
// Reading past the end yields an EOF token every time.
type TokenStream struct {
	lineNumber int
	lineToken  Token
	tokens     []Token
	pos        int
	eof        Token
}

// NewTokenStream creates a stream over the statement tokens of one line.
// tokens must not contain the line number itself.
func NewTokenStream(lineNumber int, tokens []Token) *TokenStream {
	end := 0
	if n := len(tokens); n > 0 {
		end = tokens[n-1].End()
	}
	owned := make([]Token, len(tokens))
	copy(owned, tokens)

	return &TokenStream{
		lineNumber: lineNumber,
		lineToken:  Token{Kind: KindLineNumber, Value: fmt.Sprint(lineNumber)},
		tokens:     owned,
		eof:        Token{Kind: KindEOF, Offset: end},
	}
}

// LineNumber returns the number that began the source line
func (ts *TokenStream) LineNumber() int {
	return ts.lineNumber
}

// LineToken returns the line number token as it appeared in the source
func (ts *TokenStream) LineToken() Token {
	return ts.lineToken
}

// Peek returns the current token without consuming it
func (ts *TokenStream) Peek() Token {
	return ts.PeekAt(0)
}

// PeekAt returns the token n positions after the cursor
func (ts *TokenStream) PeekAt(n int) Token {
	i := ts.pos + n
	if n < 0 || i >= len(ts.tokens) {
		return ts.eof
	}
	return ts.tokens[i]
}

// Next consumes and returns the current token
func (ts *TokenStream) Next() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Pos returns the cursor position
func (ts *TokenStream) Pos() int {
	return ts.pos
}

// Reset moves the cursor back to the first statement token
func (ts *TokenStream) Reset() {
	ts.pos = 0
}

// Len returns the number of statement tokens, excluding the line number
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// AtEnd reports whether every token has been consumed
func (ts *TokenStream) AtEnd() bool {
	return ts.pos >= len(ts.tokens)
}

// Tokens returns a copy of the statement tokens
func (ts *TokenStream) Tokens() []Token {
	out := make([]Token, len(ts.tokens))
	copy(out, ts.tokens)
	return out
}

// All returns the line number token followed by the statement tokens
func (ts *TokenStream) All() []Token {
	out := make([]Token, 0, len(ts.tokens)+1)
	out = append(out, ts.lineToken)
	return append(out, ts.tokens...)
}

// slice returns the tokens in [from, to) without copying
func (ts *TokenStream) slice(from, to int) []Token {
	return ts.tokens[from:to]
}

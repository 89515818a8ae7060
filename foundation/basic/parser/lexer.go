// File: lexer.go
// Title: BASIC Lexical Analyzer (Tokenizer)
// Description: Converts one source line into a token stream. Pattern
//              classes are tried in a fixed priority order at every scan
//              position because several classes are prefixes of others.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.2.0: Ordered matcher table for line-numbered BASIC

package parser

import (
	"sort"
	"strconv"
	"strings"

	mdwstringx "github.com/msto63/mbasic/foundation/utils/stringx"
)

// FunctionLookup is the read-only view of the function name registry the
// lexer consults to tell function names from variables
type FunctionLookup interface {
	HasFunction(name string) bool
}

var keywords = sortedByLength([]string{
	"PRINT", "LET", "REM", "PAUSE", "INPUT", "FOR", "TO", "STEP",
	"NEXT", "GOTO", "END", "IF", "THEN", "ELSE",
})

var logicOperators = []string{"AND", "OR"}

var constants = map[string]struct{}{"PI": {}}

var twoCharOperators = []string{"<>", ">=", "<="}

const oneCharOperators = "<>=+-*/()[],"

const lineModifier = ";"

// Keywords returns the statement and clause keywords, longest first
func Keywords() []string {
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

// IsConstant reports whether name is a named constant
func IsConstant(name string) bool {
	_, ok := constants[strings.ToUpper(name)]
	return ok
}

// IsReserved reports whether name is a keyword, logic operator or constant
func IsReserved(name string) bool {
	upper := strings.ToUpper(name)
	for _, w := range keywords {
		if w == upper {
			return true
		}
	}
	for _, w := range logicOperators {
		if w == upper {
			return true
		}
	}
	return IsConstant(upper)
}

// IsShadowed reports whether a keyword or logic operator is a prefix of
// name. The lexer matches those first, so a shadowed function name can
// never be recognised. The shadowing word is returned.
func IsShadowed(name string) (string, bool) {
	upper := strings.ToUpper(name)
	for _, words := range [][]string{keywords, logicOperators} {
		for _, w := range words {
			if strings.HasPrefix(upper, w) {
				return w, true
			}
		}
	}
	return "", false
}

func sortedByLength(words []string) []string {
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return words
}

// matchFunc tries to match one token at pos. It returns the token value and
// the end offset of the consumed input.
type matchFunc func(l *Lexer, src string, pos int) (value string, end int, ok bool)

type matcher struct {
	kind  Kind
	match matchFunc
}

// matchers in priority order. The line number is matched separately since
// it is only valid at the very start of a line.
var matchers = []matcher{
	{KindKeyword, (*Lexer).matchKeyword},
	{KindString, (*Lexer).matchString},
	{KindLogicOperator, (*Lexer).matchLogicOperator},
	{KindFunction, (*Lexer).matchFunction},
	{KindConstant, (*Lexer).matchConstant},
	{KindVariable, (*Lexer).matchVariable},
	{KindNumber, (*Lexer).matchNumber},
	{KindOperator, (*Lexer).matchOperator},
	{KindLineModifier, (*Lexer).matchLineModifier},
}

// Lexer tokenizes BASIC source lines. A Lexer holds no per-line state and
// may be shared by goroutines.
type Lexer struct {
	functions     FunctionLookup
	maxLineLength int
}

// NewLexer creates a lexer that recognises the function names known to
// functions. A nil lookup recognises no functions.
func NewLexer(functions FunctionLookup) *Lexer {
	return &Lexer{functions: functions}
}

// WithMaxLineLength returns a copy rejecting lines longer than n bytes.
// Zero disables the limit.
func (l *Lexer) WithMaxLineLength(n int) *Lexer {
	clone := *l
	clone.maxLineLength = n
	return &clone
}

// TokenizeLine tokenizes line with a throwaway lexer
func TokenizeLine(line string, functions FunctionLookup) (*TokenStream, error) {
	return NewLexer(functions).Tokenize(line)
}

// Tokenize converts one source line into a token stream. The line either
// tokenizes completely or fails with a *LexError.
func (l *Lexer) Tokenize(line string) (*TokenStream, error) {
	line = strings.TrimRight(line, "\r\n")

	pos := skipSpace(line, 0)
	end := pos
	for end < len(line) && isDigit(line[end]) {
		end++
	}
	if end == pos {
		return nil, &LexError{LineNumber: -1, Offset: pos, Message: "line must begin with a line number"}
	}

	lineNumber, err := strconv.Atoi(line[pos:end])
	if err != nil {
		return nil, &LexError{LineNumber: -1, Offset: pos, Message: "line number out of range: " + line[pos:end]}
	}

	if l.maxLineLength > 0 && len(line) > l.maxLineLength {
		return nil, &LexError{
			LineNumber: lineNumber,
			Offset:     l.maxLineLength,
			Message:    "line exceeds maximum length of " + strconv.Itoa(l.maxLineLength) + " bytes",
		}
	}

	ts := &TokenStream{
		lineNumber: lineNumber,
		lineToken:  Token{Kind: KindLineNumber, Value: line[pos:end], Offset: pos},
		eof:        Token{Kind: KindEOF, Offset: len(line)},
	}

	pos = end
	for {
		pos = skipSpace(line, pos)
		if pos >= len(line) {
			break
		}

		tok, next, ok := l.scan(line, pos)
		if !ok && line[pos] == '"' {
			return nil, &LexError{LineNumber: lineNumber, Offset: pos, Message: "unterminated string"}
		}
		if !ok {
			return nil, &LexError{
				LineNumber: lineNumber,
				Offset:     pos,
				Message:    "unrecognised input " + strconv.Quote(mdwstringx.Truncate(line[pos:], 16, "...")),
			}
		}
		ts.tokens = append(ts.tokens, tok)
		pos = next

		// REM swallows the rest of the line
		if tok.Kind == KindKeyword && tok.Value == "REM" {
			start := skipSpace(line, pos)
			ts.tokens = append(ts.tokens, Token{Kind: KindComment, Value: line[start:], Offset: start})
			break
		}
	}

	return ts, nil
}

// scan runs the matchers in priority order at pos
func (l *Lexer) scan(src string, pos int) (Token, int, bool) {
	for _, m := range matchers {
		value, end, ok := m.match(l, src, pos)
		if ok && end > pos {
			return Token{Kind: m.kind, Value: value, Offset: pos}, end, true
		}
	}
	return Token{}, pos, false
}

func (l *Lexer) matchKeyword(src string, pos int) (string, int, bool) {
	return matchWordPrefix(keywords, src, pos)
}

func (l *Lexer) matchLogicOperator(src string, pos int) (string, int, bool) {
	return matchWordPrefix(logicOperators, src, pos)
}

func (l *Lexer) matchString(src string, pos int) (string, int, bool) {
	if src[pos] != '"' {
		return "", pos, false
	}
	for i := pos + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++ // the escaped byte never closes the string
		case '"':
			return src[pos+1 : i], i + 1, true
		}
	}
	return "", pos, false
}

func (l *Lexer) matchFunction(src string, pos int) (string, int, bool) {
	if l.functions == nil {
		return "", pos, false
	}
	word, end := identifier(src, pos)
	if word == "" || !l.functions.HasFunction(word) {
		return "", pos, false
	}
	return word, end, true
}

func (l *Lexer) matchConstant(src string, pos int) (string, int, bool) {
	word, end := identifier(src, pos)
	if word == "" || !IsConstant(word) {
		return "", pos, false
	}
	return word, end, true
}

func (l *Lexer) matchVariable(src string, pos int) (string, int, bool) {
	if !isLetter(src[pos]) {
		return "", pos, false
	}
	end := pos + 1
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	if end < len(src) && src[end] == '$' {
		end++
	}
	return strings.ToUpper(src[pos:end]), end, true
}

func (l *Lexer) matchNumber(src string, pos int) (string, int, bool) {
	end := pos
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	intDigits := end - pos

	if end < len(src) && src[end] == '.' {
		frac := end + 1
		for frac < len(src) && isDigit(src[frac]) {
			frac++
		}
		if intDigits > 0 || frac > end+1 {
			end = frac
		}
	}

	if end == pos {
		return "", pos, false
	}
	return src[pos:end], end, true
}

func (l *Lexer) matchOperator(src string, pos int) (string, int, bool) {
	for _, op := range twoCharOperators {
		if strings.HasPrefix(src[pos:], op) {
			return op, pos + len(op), true
		}
	}
	if strings.IndexByte(oneCharOperators, src[pos]) >= 0 {
		return src[pos : pos+1], pos + 1, true
	}
	return "", pos, false
}

func (l *Lexer) matchLineModifier(src string, pos int) (string, int, bool) {
	if strings.HasPrefix(src[pos:], lineModifier) {
		return lineModifier, pos + len(lineModifier), true
	}
	return "", pos, false
}

// matchWordPrefix matches the first of words (longest first) that src
// starts with at pos, ignoring case
func matchWordPrefix(words []string, src string, pos int) (string, int, bool) {
	for _, w := range words {
		end := pos + len(w)
		if end <= len(src) && strings.EqualFold(src[pos:end], w) {
			return w, end, true
		}
	}
	return "", pos, false
}

// identifier returns the upper-cased maximal word letter (letter|digit)* [$]
func identifier(src string, pos int) (string, int) {
	if !isLetter(src[pos]) {
		return "", pos
	}
	end := pos + 1
	for end < len(src) && (isLetter(src[end]) || isDigit(src[end])) {
		end++
	}
	if end < len(src) && src[end] == '$' {
		end++
	}
	return strings.ToUpper(src[pos:end]), end
}

func skipSpace(src string, pos int) int {
	for pos < len(src) && (src[pos] == ' ' || src[pos] == '\t') {
		pos++
	}
	return pos
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }


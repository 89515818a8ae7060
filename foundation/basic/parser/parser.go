// File: parser.go
// Title: BASIC Recursive Descent Statement Parser
// Description: Parses one tokenized source line into exactly one statement
//              node. Expression operands are isolated by a bracket-aware
//              boundary scan and handed to the expression translator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-19 v0.2.0: Keyword-dispatched BASIC statement productions

package parser

import (
	"fmt"
	"strings"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
)

// Default limits
const (
	DefaultMaxStatementDepth = 16
	DefaultMaxLineLength     = 4096
)

// Parser implements recursive descent parsing for BASIC statements. A Parser
// keeps no per-line state and may be shared by goroutines.
type Parser struct {
	lexer   *Lexer
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger             *mdwlog.Logger
	MaxStatementDepth  int            // IF nesting limit
	MaxExpressionDepth int            // expression nesting limit
	MaxLineLength      int            // bytes per source line
	Functions          FunctionLookup // function name registry, may be nil
}

// New creates a new BASIC parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxStatementDepth < 0 || opts.MaxExpressionDepth < 0 || opts.MaxLineLength < 0 {
		return nil, fmt.Errorf("parser limits must not be negative: statement=%d expression=%d line=%d",
			opts.MaxStatementDepth, opts.MaxExpressionDepth, opts.MaxLineLength)
	}

	// Set defaults
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxStatementDepth == 0 {
		opts.MaxStatementDepth = DefaultMaxStatementDepth
	}
	if opts.MaxExpressionDepth == 0 {
		opts.MaxExpressionDepth = DefaultMaxExpressionDepth
	}
	if opts.MaxLineLength == 0 {
		opts.MaxLineLength = DefaultMaxLineLength
	}

	return &Parser{
		lexer:   NewLexer(opts.Functions).WithMaxLineLength(opts.MaxLineLength),
		logger:  opts.Logger.WithField("component", "basic-parser"),
		options: opts,
	}, nil
}

// Lexer returns the lexer the parser tokenizes with
func (p *Parser) Lexer() *Lexer {
	return p.lexer
}

// Options returns the effective options after defaults were applied
func (p *Parser) Options() Options {
	return p.options
}

// Parse tokenizes and parses one source line
func (p *Parser) Parse(line string) (mdwast.Statement, error) {
	ts, err := p.lexer.Tokenize(line)
	if err != nil {
		p.logger.Warn("BASIC line rejected by lexer", mdwlog.Fields{
			"input": line,
			"error": err.Error(),
		})
		return nil, err
	}
	return p.ParseStatement(ts)
}

// ParseStatement parses one statement from ts, starting at its cursor.
// All tokens must be consumed.
func (p *Parser) ParseStatement(ts *TokenStream) (mdwast.Statement, error) {
	st := &state{ts: ts, line: ts.LineNumber(), opts: &p.options}

	stmt, err := st.statement(0)
	if err == nil && !ts.AtEnd() {
		err = expectedError(st.line, "end of line", ts.Peek())
	}
	if err != nil {
		p.logger.Warn("BASIC statement parsing failed", mdwlog.Fields{
			"line":  ts.LineNumber(),
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("BASIC statement parsed", mdwlog.Fields{
		"line":    stmt.LineNumber(),
		"keyword": stmt.Kind().String(),
	})
	return stmt, nil
}

// state is the per-call parsing context
type state struct {
	ts   *TokenStream
	line int
	opts *Options
}

// statement parses one statement; ifDepth counts the enclosing IFs
func (st *state) statement(ifDepth int) (mdwast.Statement, error) {
	tok := st.ts.Next()
	if tok.Kind != KindKeyword {
		return nil, expectedError(st.line, "statement keyword", tok)
	}

	switch strings.ToUpper(tok.Value) {
	case "PRINT":
		return st.print()
	case "LET":
		return st.let()
	case "REM":
		return st.rem()
	case "PAUSE":
		expr, err := st.expression("expression after PAUSE")
		if err != nil {
			return nil, err
		}
		return &mdwast.PauseStmt{Line: st.line, Duration: expr}, nil
	case "INPUT":
		return st.input()
	case "FOR":
		return st.forStmt()
	case "NEXT":
		v, err := st.variable()
		if err != nil {
			return nil, err
		}
		return &mdwast.NextStmt{Line: st.line, Var: v}, nil
	case "GOTO":
		expr, err := st.expression("line number expression after GOTO")
		if err != nil {
			return nil, err
		}
		return &mdwast.GotoStmt{Line: st.line, Target: expr}, nil
	case "END":
		return &mdwast.EndStmt{Line: st.line}, nil
	case "IF":
		return st.ifStmt(ifDepth+1, tok)
	default:
		return nil, &ParseError{
			LineNumber: st.line,
			Offset:     tok.Offset,
			Expected:   "statement keyword",
			Found:      tok.describe(),
			Message:    tok.Value + " cannot start a statement",
		}
	}
}

func (st *state) print() (mdwast.Statement, error) {
	expr, err := st.expression("expression after PRINT")
	if err != nil {
		return nil, err
	}
	stmt := &mdwast.PrintStmt{Line: st.line, Expr: expr}
	if st.ts.Peek().Kind == KindLineModifier {
		stmt.Modifier = st.ts.Next().Value
	}
	return stmt, nil
}

func (st *state) let() (mdwast.Statement, error) {
	v, err := st.variable()
	if err != nil {
		return nil, err
	}
	if err := st.expectOperator("="); err != nil {
		return nil, err
	}
	value, err := st.expression("expression after =")
	if err != nil {
		return nil, err
	}
	return &mdwast.LetStmt{Line: st.line, Var: v, Value: value}, nil
}

func (st *state) rem() (mdwast.Statement, error) {
	tok := st.ts.Peek()
	switch tok.Kind {
	case KindComment:
		st.ts.Next()
		return &mdwast.RemStmt{Line: st.line, Text: tok.Value}, nil
	case KindEOF:
		return &mdwast.RemStmt{Line: st.line}, nil
	default:
		return nil, expectedError(st.line, "comment text", tok)
	}
}

func (st *state) input() (mdwast.Statement, error) {
	prompt, err := st.expression("prompt expression after INPUT")
	if err != nil {
		return nil, err
	}
	if tok := st.ts.Peek(); tok.Kind != KindLineModifier {
		return nil, expectedError(st.line, `";" after INPUT prompt`, tok)
	}
	st.ts.Next()

	v, err := st.variable()
	if err != nil {
		return nil, err
	}
	return &mdwast.InputStmt{Line: st.line, Prompt: prompt, Var: v}, nil
}

func (st *state) forStmt() (mdwast.Statement, error) {
	v, err := st.variable()
	if err != nil {
		return nil, err
	}
	if err := st.expectOperator("="); err != nil {
		return nil, err
	}
	from, err := st.expression("start expression after =")
	if err != nil {
		return nil, err
	}
	if err := st.expectKeyword("TO"); err != nil {
		return nil, err
	}
	to, err := st.expression("end expression after TO")
	if err != nil {
		return nil, err
	}

	stmt := &mdwast.ForStmt{Line: st.line, Var: v, From: from, To: to}
	if st.ts.Peek().Is(KindKeyword, "STEP") {
		st.ts.Next()
		if stmt.Step, err = st.expression("step expression after STEP"); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (st *state) ifStmt(depth int, at Token) (mdwast.Statement, error) {
	if depth > st.opts.MaxStatementDepth {
		return nil, depthError(st.line, "IF statements", st.opts.MaxStatementDepth, at)
	}

	cond, err := st.expression("condition after IF")
	if err != nil {
		return nil, err
	}
	if err := st.expectKeyword("THEN"); err != nil {
		return nil, err
	}

	then, err := st.statement(depth)
	if err != nil {
		return nil, err
	}
	stmt := &mdwast.IfStmt{Line: st.line, Cond: cond, Then: then}

	if st.ts.Peek().Is(KindKeyword, "ELSE") {
		st.ts.Next()
		if stmt.Else, err = st.statement(depth); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// variable parses NAME or NAME[expr]
func (st *state) variable() (*mdwast.Variable, error) {
	tok := st.ts.Next()
	if tok.Kind != KindVariable {
		return nil, expectedError(st.line, "variable", tok)
	}
	v := &mdwast.Variable{Line: st.line, Name: strings.ToUpper(tok.Value)}

	if !st.ts.Peek().Is(KindOperator, "[") {
		return v, nil
	}
	st.ts.Next()

	sub, err := st.expression("subscript expression")
	if err != nil {
		return nil, err
	}
	if tok := st.ts.Peek(); !tok.Is(KindOperator, "]") {
		return nil, &ParseError{
			LineNumber: st.line,
			Offset:     tok.Offset,
			Expected:   `"]"`,
			Found:      tok.describe(),
			Message:    "unterminated subscript of " + v.Name,
		}
	}
	st.ts.Next()
	v.Subscript = sub
	return v, nil
}

// expression isolates the longest run of expression tokens and translates it.
// A closer met at bracket depth zero belongs to the caller and stays unread.
func (st *state) expression(what string) (mdwast.Expr, error) {
	start := st.ts.Pos()
	depth := 0

scan:
	for {
		tok := st.ts.Peek()
		if !isExpressionKind(tok.Kind) {
			break
		}
		if tok.Kind == KindOperator {
			switch tok.Value {
			case "(", "[":
				depth++
			case ")", "]":
				if depth == 0 {
					break scan
				}
				depth--
			}
		}
		st.ts.Next()
	}

	if st.ts.Pos() == start {
		return nil, expectedError(st.line, what, st.ts.Peek())
	}
	return TranslateExpression(st.ts.slice(start, st.ts.Pos()), st.line, st.opts.MaxExpressionDepth)
}

func (st *state) expectOperator(value string) error {
	tok := st.ts.Peek()
	if !tok.Is(KindOperator, value) {
		return expectedError(st.line, `"`+value+`"`, tok)
	}
	st.ts.Next()
	return nil
}

func (st *state) expectKeyword(keyword string) error {
	tok := st.ts.Peek()
	if !tok.Is(KindKeyword, keyword) {
		return expectedError(st.line, keyword, tok)
	}
	st.ts.Next()
	return nil
}

// isExpressionKind reports whether tokens of kind may appear in an expression
func isExpressionKind(kind Kind) bool {
	switch kind {
	case KindString, KindNumber, KindVariable, KindFunction,
		KindConstant, KindOperator, KindLogicOperator:
		return true
	default:
		return false
	}
}

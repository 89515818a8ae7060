// File: expression.go
// Title: BASIC Expression Translator
// Description: Translates an isolated token slice into an expression tree
//              using precedence climbing. Works on the slice only and never
//              touches the statement parser's cursor.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Filter expression parsing
// - 2026-10-19 v0.2.0: Standalone translator with depth limit

package parser

import (
	"strings"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
)

// DefaultMaxExpressionDepth bounds grouping, call, subscript and unary nesting
const DefaultMaxExpressionDepth = 64

var comparisonOperators = []string{"=", "<>", "<", ">", "<=", ">="}

// TranslateExpression builds an expression tree from tokens. Precedence from
// loosest to tightest is OR, AND, comparison, + -, * /, unary - +. Binary
// operators associate to the left. maxDepth <= 0 selects the default limit.
func TranslateExpression(tokens []Token, lineNumber int, maxDepth int) (mdwast.Expr, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxExpressionDepth
	}

	t := &translator{tokens: tokens, line: lineNumber, maxDepth: maxDepth}
	if len(tokens) == 0 {
		return nil, expectedError(lineNumber, "expression", t.peek())
	}

	expr, err := t.or()
	if err != nil {
		return nil, err
	}

	if t.pos < len(t.tokens) {
		tok := t.peek()
		if tok.Is(KindOperator, ")") || tok.Is(KindOperator, "]") {
			return nil, &ParseError{
				LineNumber: lineNumber,
				Offset:     tok.Offset,
				Message:    "unmatched " + tok.Value,
			}
		}
		return nil, expectedError(lineNumber, "operator or end of expression", tok)
	}
	return expr, nil
}

type translator struct {
	tokens   []Token
	pos      int
	line     int
	depth    int
	maxDepth int
}

func (t *translator) peek() Token {
	if t.pos < len(t.tokens) {
		return t.tokens[t.pos]
	}
	end := 0
	if n := len(t.tokens); n > 0 {
		end = t.tokens[n-1].End()
	}
	return Token{Kind: KindEOF, Offset: end}
}

func (t *translator) next() Token {
	tok := t.peek()
	if t.pos < len(t.tokens) {
		t.pos++
	}
	return tok
}

// enter increases nesting depth; the caller must defer leave
func (t *translator) enter(at Token) error {
	t.depth++
	if t.depth > t.maxDepth {
		return depthError(t.line, "expression", t.maxDepth, at)
	}
	return nil
}

func (t *translator) leave() {
	t.depth--
}

func (t *translator) expect(value string) error {
	tok := t.peek()
	if !tok.Is(KindOperator, value) {
		return expectedError(t.line, `"`+value+`"`, tok)
	}
	t.next()
	return nil
}

// matchOperator consumes the current token if it is one of ops of kind
func (t *translator) matchOperator(kind Kind, ops ...string) (string, bool) {
	tok := t.peek()
	if tok.Kind != kind {
		return "", false
	}
	for _, op := range ops {
		if tok.Is(kind, op) {
			t.next()
			return op, true
		}
	}
	return "", false
}

type level func() (mdwast.Expr, error)

// binary parses a left-associative chain of operand (op operand)*
func (t *translator) binary(operand level, kind Kind, ops ...string) (mdwast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := t.matchOperator(kind, ops...)
		if !ok {
			return left, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &mdwast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (t *translator) or() (mdwast.Expr, error) {
	return t.binary(t.and, KindLogicOperator, "OR")
}

func (t *translator) and() (mdwast.Expr, error) {
	return t.binary(t.comparison, KindLogicOperator, "AND")
}

func (t *translator) comparison() (mdwast.Expr, error) {
	return t.binary(t.additive, KindOperator, comparisonOperators...)
}

func (t *translator) additive() (mdwast.Expr, error) {
	return t.binary(t.multiplicative, KindOperator, "+", "-")
}

func (t *translator) multiplicative() (mdwast.Expr, error) {
	return t.binary(t.unary, KindOperator, "*", "/")
}

func (t *translator) unary() (mdwast.Expr, error) {
	at := t.peek()
	op, ok := t.matchOperator(KindOperator, "-", "+")
	if !ok {
		return t.primary()
	}

	if err := t.enter(at); err != nil {
		return nil, err
	}
	defer t.leave()

	operand, err := t.unary()
	if err != nil {
		return nil, err
	}
	return &mdwast.UnaryExpr{Op: op, Operand: operand}, nil
}

func (t *translator) primary() (mdwast.Expr, error) {
	tok := t.next()

	switch tok.Kind {
	case KindNumber:
		n, err := mdwast.NewNumber(tok.Value)
		if err != nil {
			return nil, &ParseError{LineNumber: t.line, Offset: tok.Offset, Message: "invalid number " + tok.Value, Err: err}
		}
		return n, nil

	case KindString:
		return &mdwast.StringLit{Value: tok.Value}, nil

	case KindConstant:
		return &mdwast.ConstantRef{Name: strings.ToUpper(tok.Value)}, nil

	case KindVariable:
		return t.variable(tok)

	case KindFunction:
		return t.call(tok)

	case KindOperator:
		if tok.Value == "(" {
			return t.group(tok)
		}
	}

	return nil, expectedError(t.line, "operand", tok)
}

func (t *translator) variable(name Token) (mdwast.Expr, error) {
	v := &mdwast.Variable{Line: t.line, Name: strings.ToUpper(name.Value)}
	open := t.peek()
	if !open.Is(KindOperator, "[") {
		return v, nil
	}
	t.next()

	if err := t.enter(open); err != nil {
		return nil, err
	}
	defer t.leave()

	sub, err := t.or()
	if err != nil {
		return nil, err
	}
	if err := t.expect("]"); err != nil {
		return nil, err
	}
	v.Subscript = sub
	return v, nil
}

func (t *translator) call(name Token) (mdwast.Expr, error) {
	open := t.peek()
	if err := t.expect("("); err != nil {
		return nil, err
	}

	if err := t.enter(open); err != nil {
		return nil, err
	}
	defer t.leave()

	call := &mdwast.FunctionCall{Name: strings.ToUpper(name.Value), Args: []mdwast.Expr{}}
	if _, ok := t.matchOperator(KindOperator, ")"); ok {
		return call, nil
	}

	for {
		arg, err := t.or()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		if _, ok := t.matchOperator(KindOperator, ","); ok {
			continue
		}
		if err := t.expect(")"); err != nil {
			return nil, err
		}
		return call, nil
	}
}

func (t *translator) group(open Token) (mdwast.Expr, error) {
	if err := t.enter(open); err != nil {
		return nil, err
	}
	defer t.leave()

	inner, err := t.or()
	if err != nil {
		return nil, err
	}
	if err := t.expect(")"); err != nil {
		return nil, err
	}
	return inner, nil
}

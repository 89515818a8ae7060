// File: expression_test.go
// Title: Expression Translator Unit Tests
// Description: Precedence, associativity, calls, subscripts, malformed
//              input and depth limits of the expression translator.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial translator tests

package parser

import (
	"errors"
	"strings"
	"testing"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
)

// exprTokens lexes src as the operand of a PRINT statement
func exprTokens(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := TokenizeLine("10 PRINT "+src, testFunctions)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	return ts.Tokens()[1:]
}

func TestTranslateExpression(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A + B * C", "(A + (B * C))"},
		{"A - B - C", "((A - B) - C)"},
		{"A / B * C", "((A / B) * C)"},
		{"(A + B) * C", "((A + B) * C)"},
		{"-A * B", "((-A) * B)"},
		{"- -A", "(-(-A))"},
		{"A * -B", "(A * (-B))"},
		{"+A", "(+A)"},
		{"A = 1 OR B = 2 AND C = 3", "((A = 1) OR ((B = 2) AND (C = 3)))"},
		{"A OR B OR C", "((A OR B) OR C)"},
		{"A <> B + 1", "(A <> (B + 1))"},
		{"A < B = C", "((A < B) = C)"},
		{"F(B[1], C)", "F(B[1], C)"},
		{"RND()", "RND()"},
		{`LEFT$(A$, 2)`, "LEFT$(A$, 2)"},
		{"C[I + 1]", "C[(I + 1)]"},
		{"PI * 2", "(PI * 2)"},
		{`"a" + "b"`, `("a" + "b")`},
		{"((A))", "A"},
		{"SIN(X) + 1", "(SIN(X) + 1)"},
		{"INT(SIN(X) * 10) / 2", "(INT((SIN(X) * 10)) / 2)"},
		{"F((A[(I)] + 1), C[F(2, 3)])", "F((A[I] + 1), C[F(2, 3)])"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := TranslateExpression(exprTokens(t, tt.input), 10, 0)
			if err != nil {
				t.Fatalf("TranslateExpression(%q) error = %v", tt.input, err)
			}
			if got := expr.String(); got != tt.want {
				t.Errorf("TranslateExpression(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranslateExpression_CallVersusSubscript(t *testing.T) {
	expr, err := TranslateExpression(exprTokens(t, "F(B[1], C)"), 10, 0)
	if err != nil {
		t.Fatalf("TranslateExpression() error = %v", err)
	}

	call, ok := expr.(*mdwast.FunctionCall)
	if !ok || call.Name != "F" || len(call.Args) != 2 {
		t.Fatalf("expr = %#v, want call to F with two arguments", expr)
	}
	first, ok := call.Args[0].(*mdwast.Variable)
	if !ok || first.Name != "B" || first.Subscript == nil {
		t.Errorf("first argument = %#v, want subscripted B", call.Args[0])
	}
	second, ok := call.Args[1].(*mdwast.Variable)
	if !ok || second.Name != "C" || second.Subscript != nil {
		t.Errorf("second argument = %#v, want scalar C", call.Args[1])
	}
	if first.Line != 10 {
		t.Errorf("variable line = %d, want 10", first.Line)
	}
}

func TestTranslateExpression_NumberValue(t *testing.T) {
	expr, err := TranslateExpression(exprTokens(t, ".5"), 10, 0)
	if err != nil {
		t.Fatalf("TranslateExpression() error = %v", err)
	}
	if n, ok := expr.(*mdwast.NumberLit); !ok || n.Value != 0.5 || n.Text != ".5" {
		t.Errorf("expr = %#v, want NumberLit .5", expr)
	}
}

func TestTranslateExpression_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantMsg string
	}{
		{"A +", "expected operand, found end of line"},
		{"(A + B", `expected ")"`},
		{"A + B)", "unmatched )"},
		{"A]", "unmatched ]"},
		{"A B", "expected operator or end of expression"},
		{"F(", "expected operand"},
		{"F(A,)", "expected operand"},
		{"F(A", `expected ")"`},
		{"C[1", `expected "]"`},
		{"SIN X", `expected "("`},
		{"* A", "expected operand"},
		{"()", "expected operand"},
		{"A AND", "expected operand"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := TranslateExpression(exprTokens(t, tt.input), 10, 0)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("TranslateExpression(%q) error = %v, want *ParseError", tt.input, err)
			}
			if parseErr.LineNumber != 10 {
				t.Errorf("LineNumber = %d, want 10", parseErr.LineNumber)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestTranslateExpression_EndOffsetAfterString(t *testing.T) {
	src := `F("ab"`
	_, err := TranslateExpression(exprTokens(t, src), 10, 0)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("TranslateExpression(%q) error = %v, want *ParseError", src, err)
	}
	if want := len("10 PRINT " + src); parseErr.Offset != want {
		t.Errorf("Offset = %d, want %d", parseErr.Offset, want)
	}
}

func TestTranslateExpression_Empty(t *testing.T) {
	_, err := TranslateExpression(nil, 30, 0)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Expected != "expression" {
		t.Fatalf("TranslateExpression(nil) error = %v, want expected expression", err)
	}
}

func TestTranslateExpression_DepthLimit(t *testing.T) {
	nested := strings.Repeat("(", 6) + "1" + strings.Repeat(")", 6)
	tokens := exprTokens(t, nested)

	if _, err := TranslateExpression(tokens, 10, 6); err != nil {
		t.Errorf("depth 6 with limit 6 error = %v", err)
	}

	_, err := TranslateExpression(tokens, 10, 5)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("depth 6 with limit 5 error = %v, want ErrDepthExceeded", err)
	}

	unary := exprTokens(t, strings.Repeat("-", 4)+"A")
	if _, err := TranslateExpression(unary, 10, 3); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("four unary minus with limit 3 error = %v, want ErrDepthExceeded", err)
	}
}

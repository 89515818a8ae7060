// File: parser_test.go
// Title: BASIC Parser Unit Tests
// Description: Tests every statement production, expression boundary
//              detection, IF recursion, error reporting and concurrency.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive parser test suite
// - 2026-10-19 v0.2.0: BASIC statement productions

package parser

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
)

func newTestParser(t *testing.T, opts Options) *Parser {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewDiscard()
	}
	if opts.Functions == nil {
		opts.Functions = testFunctions
	}
	p, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestParser_Parse(t *testing.T) {
	p := newTestParser(t, Options{})

	tests := []struct {
		name  string
		input string
		want  string
		check func(t *testing.T, stmt mdwast.Statement)
	}{
		{
			name:  "Print",
			input: `10 PRINT "HELLO"`,
			want:  `10 PRINT "HELLO"`,
		},
		{
			name:  "Print with modifier",
			input: `10 PRINT A$;`,
			want:  `10 PRINT A$;`,
			check: func(t *testing.T, stmt mdwast.Statement) {
				if stmt.(*mdwast.PrintStmt).Modifier != ";" {
					t.Errorf("Modifier = %q, want %q", stmt.(*mdwast.PrintStmt).Modifier, ";")
				}
			},
		},
		{
			name:  "Let",
			input: "20 let a = a + 1",
			want:  "20 LET A = (A + 1)",
		},
		{
			name:  "Let with subscript target",
			input: "20 LET C[I+1] = 5",
			want:  "20 LET C[(I + 1)] = 5",
		},
		{
			name:  "Let with call subscript target",
			input: "20 LET C[F(1)] = 2",
			want:  "20 LET C[F(1)] = 2",
		},
		{
			name:  "Bracket depth inside call",
			input: "20 LET A = F(B[1], C)",
			want:  "20 LET A = F(B[1], C)",
			check: func(t *testing.T, stmt mdwast.Statement) {
				call, ok := stmt.(*mdwast.LetStmt).Value.(*mdwast.FunctionCall)
				if !ok || len(call.Args) != 2 {
					t.Fatalf("Value = %v, want call with two arguments", stmt.(*mdwast.LetStmt).Value)
				}
				if v, ok := call.Args[1].(*mdwast.Variable); !ok || v.Name != "C" {
					t.Errorf("second argument = %v, want C", call.Args[1])
				}
			},
		},
		{
			name:  "Balanced parens and brackets",
			input: "20 LET X = F((A[(I)] + 1), C[F(2, 3)])",
			want:  "20 LET X = F((A[I] + 1), C[F(2, 3)])",
		},
		{
			name:  "Rem",
			input: "30 REM this is a comment",
			want:  "30 REM this is a comment",
			check: func(t *testing.T, stmt mdwast.Statement) {
				if got := stmt.(*mdwast.RemStmt).Text; got != "this is a comment" {
					t.Errorf("Text = %q, want %q", got, "this is a comment")
				}
			},
		},
		{
			name:  "Rem with keywords",
			input: `30 REM IF A THEN GOTO 10 "x`,
			want:  `30 REM IF A THEN GOTO 10 "x`,
		},
		{
			name:  "Empty rem",
			input: "30 REM",
			want:  "30 REM",
		},
		{
			name:  "Pause",
			input: "40 PAUSE 100 * 2",
			want:  "40 PAUSE (100 * 2)",
		},
		{
			name:  "Input",
			input: `50 INPUT "NAME"; N$`,
			want:  `50 INPUT "NAME"; N$`,
		},
		{
			name:  "For without step",
			input: "60 FOR I = 1 TO 10",
			want:  "60 FOR I = 1 TO 10",
			check: func(t *testing.T, stmt mdwast.Statement) {
				if stmt.(*mdwast.ForStmt).Step != nil {
					t.Error("Step should be absent")
				}
			},
		},
		{
			name:  "For with step",
			input: "60 FOR I = 1 TO 10 STEP 2",
			want:  "60 FOR I = 1 TO 10 STEP 2",
			check: func(t *testing.T, stmt mdwast.Statement) {
				if stmt.(*mdwast.ForStmt).Step == nil {
					t.Error("Step should be present")
				}
			},
		},
		{
			name:  "For with negative step",
			input: "60 FOR I = N TO -N STEP -1",
			want:  "60 FOR I = N TO (-N) STEP (-1)",
		},
		{
			name:  "Next",
			input: "70 NEXT I",
			want:  "70 NEXT I",
		},
		{
			name:  "Goto",
			input: "80 GOTO 10 + A",
			want:  "80 GOTO (10 + A)",
		},
		{
			name:  "End",
			input: "90 END",
			want:  "90 END",
		},
		{
			name:  "If then else",
			input: `100 IF A>5 THEN GOTO 100 ELSE PRINT "no"`,
			want:  `100 IF (A > 5) THEN GOTO 100 ELSE PRINT "no"`,
			check: func(t *testing.T, stmt mdwast.Statement) {
				ifStmt := stmt.(*mdwast.IfStmt)
				if _, ok := ifStmt.Then.(*mdwast.GotoStmt); !ok {
					t.Errorf("Then = %T, want *ast.GotoStmt", ifStmt.Then)
				}
				if _, ok := ifStmt.Else.(*mdwast.PrintStmt); !ok {
					t.Errorf("Else = %T, want *ast.PrintStmt", ifStmt.Else)
				}
				if ifStmt.Then.LineNumber() != 100 || ifStmt.Else.LineNumber() != 100 {
					t.Error("branches must carry the line number of the IF")
				}
			},
		},
		{
			name:  "If without else",
			input: "100 IF A>5 THEN GOTO 100",
			want:  "100 IF (A > 5) THEN GOTO 100",
			check: func(t *testing.T, stmt mdwast.Statement) {
				if stmt.(*mdwast.IfStmt).Else != nil {
					t.Error("Else should be absent")
				}
			},
		},
		{
			name:  "Lower-case else",
			input: `100 if a>5 then goto 100 else print "no"`,
			want:  `100 IF (A > 5) THEN GOTO 100 ELSE PRINT "no"`,
		},
		{
			name:  "Dangling else binds to the inner if",
			input: "110 IF A THEN IF B THEN PRINT 1 ELSE PRINT 2",
			want:  "110 IF A THEN IF B THEN PRINT 1 ELSE PRINT 2",
			check: func(t *testing.T, stmt mdwast.Statement) {
				outer := stmt.(*mdwast.IfStmt)
				if outer.Else != nil {
					t.Error("outer Else should be absent")
				}
				if outer.Then.(*mdwast.IfStmt).Else == nil {
					t.Error("inner Else should be present")
				}
			},
		},
		{
			name:  "If with logic condition and let branch",
			input: `120 IF A = 1 AND B$ <> "x" OR C THEN LET D = 0`,
			want:  `120 IF (((A = 1) AND (B$ <> "x")) OR C) THEN LET D = 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := stmt.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
			if tt.check != nil {
				tt.check(t, stmt)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	p := newTestParser(t, Options{})

	tests := []struct {
		name     string
		input    string
		expected string
		wantMsg  string
	}{
		{"Empty let expression", "10 LET A = ", "expression after =", "found end of line"},
		{"Let without equals", "10 LET A 5", `"="`, `found number "5"`},
		{"Let without variable", "10 LET = 5", "variable", "operator"},
		{"Empty print", "10 PRINT", "expression after PRINT", "end of line"},
		{"Empty goto", "10 GOTO", "line number expression after GOTO", ""},
		{"Missing keyword", "10 A = 5", "statement keyword", "variable"},
		{"Clause keyword first", "10 THEN PRINT 1", "statement keyword", "cannot start a statement"},
		{"Line number only", "10", "statement keyword", "end of line"},
		{"Input without modifier", `10 INPUT "X" A`, "", "expected operator or end of expression"},
		{"Input missing variable", `10 INPUT "X";`, "variable", ""},
		{"For without TO", "10 FOR I = 1 STEP 2", "TO", "keyword"},
		{"For with empty step", "10 FOR I = 1 TO 3 STEP", "step expression after STEP", ""},
		{"Next without variable", "10 NEXT", "variable", ""},
		{"If without then", "10 IF A PRINT 1", "THEN", ""},
		{"If with empty condition", "10 IF THEN END", "condition after IF", ""},
		{"If with empty else", "10 IF A THEN END ELSE", "statement keyword", ""},
		{"Unterminated subscript", "10 LET C[1 = 5", `"]"`, "unterminated subscript"},
		{"Trailing tokens", "10 END 5", "end of line", ""},
		{"Unmatched closer", "10 PRINT A)", "end of line", ""},
		{"Trailing operator", "10 PRINT A +", "", "expected operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := p.Parse(tt.input)
			if stmt != nil {
				t.Errorf("Parse(%q) returned node %v alongside error", tt.input, stmt)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.input, err)
			}
			if parseErr.LineNumber != 10 {
				t.Errorf("LineNumber = %d, want 10", parseErr.LineNumber)
			}
			if tt.expected != "" && parseErr.Expected != tt.expected {
				t.Errorf("Expected = %q, want %q", parseErr.Expected, tt.expected)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParser_LexErrorsPassThrough(t *testing.T) {
	p := newTestParser(t, Options{})

	_, err := p.Parse(`PRINT "no line number"`)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Parse() error = %v, want *LexError", err)
	}
}

func TestParser_StatementDepthLimit(t *testing.T) {
	p := newTestParser(t, Options{MaxStatementDepth: 2})

	if _, err := p.Parse("10 IF A THEN IF B THEN END"); err != nil {
		t.Errorf("two nested IFs error = %v", err)
	}

	_, err := p.Parse("10 IF A THEN IF B THEN IF C THEN END")
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("three nested IFs error = %v, want ErrDepthExceeded", err)
	}

	// ELSE branches count towards the same limit
	_, err = p.Parse("10 IF A THEN END ELSE IF B THEN END ELSE IF C THEN END")
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("nested ELSE IFs error = %v, want ErrDepthExceeded", err)
	}
}

func TestParser_DefaultStatementDepth(t *testing.T) {
	p := newTestParser(t, Options{})

	line := "10 " + strings.Repeat("IF A THEN ", DefaultMaxStatementDepth) + "END"
	if _, err := p.Parse(line); err != nil {
		t.Errorf("%d nested IFs error = %v", DefaultMaxStatementDepth, err)
	}

	line = "10 " + strings.Repeat("IF A THEN ", DefaultMaxStatementDepth+1) + "END"
	if _, err := p.Parse(line); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("%d nested IFs error = %v, want ErrDepthExceeded", DefaultMaxStatementDepth+1, err)
	}
}

func TestParser_ExpressionDepthLimit(t *testing.T) {
	p := newTestParser(t, Options{MaxExpressionDepth: 3})

	if _, err := p.Parse("10 PRINT (((1)))"); err != nil {
		t.Errorf("depth 3 error = %v", err)
	}
	if _, err := p.Parse("10 PRINT ((((1))))"); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("depth 4 error = %v, want ErrDepthExceeded", err)
	}
}

func TestParser_ParseStatementFromStream(t *testing.T) {
	p := newTestParser(t, Options{})

	ts := NewTokenStream(20, []Token{
		{Kind: KindKeyword, Value: "if"},
		{Kind: KindVariable, Value: "a"},
		{Kind: KindKeyword, Value: "then"},
		{Kind: KindKeyword, Value: "end"},
		{Kind: KindKeyword, Value: "else"},
		{Kind: KindKeyword, Value: "rem"},
	})

	stmt, err := p.ParseStatement(ts)
	if err != nil {
		t.Fatalf("ParseStatement() error = %v", err)
	}
	if got, want := stmt.String(), "20 IF A THEN END ELSE REM"; got != want {
		t.Errorf("ParseStatement() = %q, want %q", got, want)
	}
}

func TestParser_Deterministic(t *testing.T) {
	p := newTestParser(t, Options{})
	line := `10 IF SIN(X[2]) >= PI / 2 THEN PRINT LEFT$(A$, 3); ELSE GOTO 200`

	first, err := p.Parse(line)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := p.Parse(line)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse() is not deterministic:\n%v\n%v", first, second)
	}
}

func TestParser_Concurrent(t *testing.T) {
	p := newTestParser(t, Options{})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			line := fmt.Sprintf("%d LET A[%d] = F(B[%d], C) + %d", n, n, n, n)
			stmt, err := p.Parse(line)
			if err != nil {
				errs <- err
				return
			}
			if stmt.LineNumber() != n {
				errs <- fmt.Errorf("line %d parsed as %d", n, stmt.LineNumber())
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestNew_RejectsNegativeLimits(t *testing.T) {
	if _, err := New(Options{MaxStatementDepth: -1}); err == nil {
		t.Error("New() with negative depth error = nil, want error")
	}

	p, err := New(Options{Logger: mdwlog.NewDiscard()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	opts := p.Options()
	if opts.MaxStatementDepth != DefaultMaxStatementDepth ||
		opts.MaxExpressionDepth != DefaultMaxExpressionDepth ||
		opts.MaxLineLength != DefaultMaxLineLength {
		t.Errorf("Options() = %+v, want defaults", opts)
	}
}

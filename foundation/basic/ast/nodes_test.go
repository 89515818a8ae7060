// File: nodes_test.go
// Title: BASIC AST Unit Tests
// Description: Tests for canonical rendering, visitors and traversal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor tests
// - 2026-10-19 v0.2.0: BASIC statement and expression nodes

package ast

import (
	"reflect"
	"testing"
)

func num(text string) *NumberLit {
	n, err := NewNumber(text)
	if err != nil {
		panic(err)
	}
	return n
}

func variable(name string) *Variable {
	return &Variable{Line: 10, Name: name}
}

func createIfStatement() *IfStmt {
	return &IfStmt{
		Line: 10,
		Cond: &BinaryExpr{Op: ">", Left: variable("A"), Right: num("5")},
		Then: &GotoStmt{Line: 10, Target: num("100")},
		Else: &PrintStmt{Line: 10, Expr: &StringLit{Value: "no"}},
	}
}

func TestStatementString(t *testing.T) {
	tests := []struct {
		name string
		stmt Statement
		want string
	}{
		{
			name: "print with modifier",
			stmt: &PrintStmt{Line: 10, Expr: &StringLit{Value: "HI"}, Modifier: ";"},
			want: `10 PRINT "HI";`,
		},
		{
			name: "let with subscript",
			stmt: &LetStmt{Line: 20, Var: &Variable{Line: 20, Name: "C", Subscript: num("1")},
				Value: &BinaryExpr{Op: "+", Left: variable("A"),
					Right: &BinaryExpr{Op: "*", Left: variable("B"), Right: variable("C")}}},
			want: "20 LET C[1] = (A + (B * C))",
		},
		{
			name: "empty rem",
			stmt: &RemStmt{Line: 30},
			want: "30 REM",
		},
		{
			name: "rem text",
			stmt: &RemStmt{Line: 30, Text: "this is a comment"},
			want: "30 REM this is a comment",
		},
		{
			name: "input",
			stmt: &InputStmt{Line: 40, Prompt: &StringLit{Value: "NAME"}, Var: variable("N$")},
			want: `40 INPUT "NAME"; N$`,
		},
		{
			name: "for without step",
			stmt: &ForStmt{Line: 50, Var: variable("I"), From: num("1"), To: num("10")},
			want: "50 FOR I = 1 TO 10",
		},
		{
			name: "for with step",
			stmt: &ForStmt{Line: 50, Var: variable("I"), From: num("1"), To: num("10"),
				Step: &UnaryExpr{Op: "-", Operand: num("2")}},
			want: "50 FOR I = 1 TO 10 STEP (-2)",
		},
		{
			name: "if else",
			stmt: createIfStatement(),
			want: `10 IF (A > 5) THEN GOTO 100 ELSE PRINT "no"`,
		},
		{
			name: "pause call",
			stmt: &PauseStmt{Line: 60, Duration: &FunctionCall{Name: "INT",
				Args: []Expr{&ConstantRef{Name: "PI"}}}},
			want: "60 PAUSE INT(PI)",
		},
		{
			name: "end",
			stmt: &EndStmt{Line: 70},
			want: "70 END",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatementKindString(t *testing.T) {
	want := []string{"PRINT", "LET", "REM", "PAUSE", "INPUT", "FOR", "NEXT", "GOTO", "END", "IF"}
	for i, kind := range StatementKinds() {
		if kind.String() != want[i] {
			t.Errorf("StatementKind(%d).String() = %q, want %q", i, kind.String(), want[i])
		}
	}
	if got := StatementKind(99).String(); got != "UNKNOWN" {
		t.Errorf("StatementKind(99).String() = %q, want UNKNOWN", got)
	}
}

type kindCounter struct {
	BaseVisitor
	ifs, gotos int
}

func (k *kindCounter) VisitIf(s *IfStmt) interface{} {
	k.ifs++
	s.Then.Accept(k)
	if s.Else != nil {
		s.Else.Accept(k)
	}
	return nil
}

func (k *kindCounter) VisitGoto(*GotoStmt) interface{} {
	k.gotos++
	return nil
}

func TestBaseVisitorEmbedding(t *testing.T) {
	stmt := &IfStmt{Line: 10, Cond: variable("A"), Then: createIfStatement()}

	counter := &kindCounter{}
	stmt.Accept(counter)

	if counter.ifs != 2 || counter.gotos != 1 {
		t.Errorf("counter = %+v, want 2 IFs and 1 GOTO", *counter)
	}
}

func TestIfDepth(t *testing.T) {
	inner := createIfStatement()
	outer := &IfStmt{Line: 10, Cond: variable("B"), Then: &EndStmt{Line: 10}, Else: inner}
	if got := inner.Depth(); got != 1 {
		t.Errorf("inner.Depth() = %d, want 1", got)
	}
	if got := outer.Depth(); got != 2 {
		t.Errorf("outer.Depth() = %d, want 2", got)
	}
}

func TestCollectVariables(t *testing.T) {
	stmt := &LetStmt{
		Line: 10,
		Var:  &Variable{Line: 10, Name: "A", Subscript: variable("I")},
		Value: &FunctionCall{Name: "F", Args: []Expr{
			variable("B"),
			&Variable{Line: 10, Name: "C", Subscript: num("1")},
			variable("B"),
		}},
	}

	got := CollectVariables(stmt)
	want := []string{"A", "B", "C", "I"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectVariables() = %v, want %v", got, want)
	}
}

func TestCollectFunctionCalls(t *testing.T) {
	inner := &FunctionCall{Name: "SIN", Args: []Expr{variable("X")}}
	outer := &FunctionCall{Name: "ABS", Args: []Expr{inner}}
	stmt := &PrintStmt{Line: 10, Expr: outer}

	calls := CollectFunctionCalls(stmt)
	if len(calls) != 2 || calls[0] != outer || calls[1] != inner {
		t.Errorf("CollectFunctionCalls() = %v, want [ABS SIN]", calls)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	var labels []string
	Walk(createIfStatement(), func(n Node) bool {
		labels = append(labels, n.String())
		_, isBinary := n.(*BinaryExpr)
		return !isBinary
	})

	// The condition's operands are skipped
	want := []string{
		`10 IF (A > 5) THEN GOTO 100 ELSE PRINT "no"`,
		"(A > 5)",
		"10 GOTO 100",
		"100",
		`10 PRINT "no"`,
		`"no"`,
	}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("Walk() visited %q, want %q", labels, want)
	}
}

func TestChildrenOmitsAbsentParts(t *testing.T) {
	stmt := &ForStmt{Line: 10, Var: variable("I"), From: num("1"), To: num("3")}
	if got := len(Children(stmt)); got != 3 {
		t.Errorf("len(Children(FOR without STEP)) = %d, want 3", got)
	}
	if got := Children(&EndStmt{Line: 1}); len(got) != 0 {
		t.Errorf("Children(END) = %v, want none", got)
	}
}

func TestVariableIsString(t *testing.T) {
	if !variable("A$").IsString() {
		t.Error("A$ should be a string variable")
	}
	if variable("A1").IsString() {
		t.Error("A1 should not be a string variable")
	}
}

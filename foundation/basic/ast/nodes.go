// File: nodes.go
// Title: BASIC Statement Node Definitions
// Description: Defines the statement variants produced by the BASIC parser.
//              Every variant carries the source line number and renders a
//              canonical source form through String().
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-19 v0.2.0: Statement variants for line-numbered BASIC

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical source form of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}
}

// StatementKind identifies a statement variant
type StatementKind int

const (
	StmtPrint StatementKind = iota
	StmtLet
	StmtRem
	StmtPause
	StmtInput
	StmtFor
	StmtNext
	StmtGoto
	StmtEnd
	StmtIf
)

// String returns the keyword of the statement kind
func (k StatementKind) String() string {
	switch k {
	case StmtPrint:
		return "PRINT"
	case StmtLet:
		return "LET"
	case StmtRem:
		return "REM"
	case StmtPause:
		return "PAUSE"
	case StmtInput:
		return "INPUT"
	case StmtFor:
		return "FOR"
	case StmtNext:
		return "NEXT"
	case StmtGoto:
		return "GOTO"
	case StmtEnd:
		return "END"
	case StmtIf:
		return "IF"
	default:
		return "UNKNOWN"
	}
}

// StatementKinds lists every statement kind in declaration order
func StatementKinds() []StatementKind {
	return []StatementKind{
		StmtPrint, StmtLet, StmtRem, StmtPause, StmtInput,
		StmtFor, StmtNext, StmtGoto, StmtEnd, StmtIf,
	}
}

// Statement is one parsed source line. The set of implementations is closed.
type Statement interface {
	Node

	// LineNumber returns the number of the source line the statement came from
	LineNumber() int

	// Kind returns the statement variant
	Kind() StatementKind

	// source renders the statement without its line number
	source() string
}

// PrintStmt represents PRINT expr [;]
type PrintStmt struct {
	Line     int
	Expr     Expr
	Modifier string // ";" when the line ends with a modifier, otherwise empty
}

// LetStmt represents LET var = expr
type LetStmt struct {
	Line  int
	Var   *Variable
	Value Expr
}

// RemStmt represents REM text
type RemStmt struct {
	Line int
	Text string
}

// PauseStmt represents PAUSE expr
type PauseStmt struct {
	Line     int
	Duration Expr
}

// InputStmt represents INPUT prompt ; var
type InputStmt struct {
	Line   int
	Prompt Expr
	Var    *Variable
}

// ForStmt represents FOR var = from TO to [STEP step]
type ForStmt struct {
	Line int
	Var  *Variable
	From Expr
	To   Expr
	Step Expr // nil when no STEP clause was given
}

// NextStmt represents NEXT var
type NextStmt struct {
	Line int
	Var  *Variable
}

// GotoStmt represents GOTO expr
type GotoStmt struct {
	Line   int
	Target Expr
}

// EndStmt represents END
type EndStmt struct {
	Line int
}

// IfStmt represents IF cond THEN stmt [ELSE stmt]
type IfStmt struct {
	Line int
	Cond Expr
	Then Statement
	Else Statement // nil when no ELSE branch was given
}

func statementString(s Statement) string {
	return fmt.Sprintf("%d %s", s.LineNumber(), s.source())
}

// PrintStmt

func (s *PrintStmt) LineNumber() int                    { return s.Line }
func (s *PrintStmt) Kind() StatementKind                { return StmtPrint }
func (s *PrintStmt) String() string                     { return statementString(s) }
func (s *PrintStmt) Accept(visitor Visitor) interface{} { return visitor.VisitPrint(s) }
func (s *PrintStmt) source() string {
	return "PRINT " + s.Expr.String() + s.Modifier
}

// LetStmt

func (s *LetStmt) LineNumber() int                    { return s.Line }
func (s *LetStmt) Kind() StatementKind                { return StmtLet }
func (s *LetStmt) String() string                     { return statementString(s) }
func (s *LetStmt) Accept(visitor Visitor) interface{} { return visitor.VisitLet(s) }
func (s *LetStmt) source() string {
	return fmt.Sprintf("LET %s = %s", s.Var, s.Value)
}

// RemStmt

func (s *RemStmt) LineNumber() int                    { return s.Line }
func (s *RemStmt) Kind() StatementKind                { return StmtRem }
func (s *RemStmt) String() string                     { return statementString(s) }
func (s *RemStmt) Accept(visitor Visitor) interface{} { return visitor.VisitRem(s) }
func (s *RemStmt) source() string {
	if s.Text == "" {
		return "REM"
	}
	return "REM " + s.Text
}

// PauseStmt

func (s *PauseStmt) LineNumber() int                    { return s.Line }
func (s *PauseStmt) Kind() StatementKind                { return StmtPause }
func (s *PauseStmt) String() string                     { return statementString(s) }
func (s *PauseStmt) Accept(visitor Visitor) interface{} { return visitor.VisitPause(s) }
func (s *PauseStmt) source() string {
	return "PAUSE " + s.Duration.String()
}

// InputStmt

func (s *InputStmt) LineNumber() int                    { return s.Line }
func (s *InputStmt) Kind() StatementKind                { return StmtInput }
func (s *InputStmt) String() string                     { return statementString(s) }
func (s *InputStmt) Accept(visitor Visitor) interface{} { return visitor.VisitInput(s) }
func (s *InputStmt) source() string {
	return fmt.Sprintf("INPUT %s; %s", s.Prompt, s.Var)
}

// ForStmt

func (s *ForStmt) LineNumber() int                    { return s.Line }
func (s *ForStmt) Kind() StatementKind                { return StmtFor }
func (s *ForStmt) String() string                     { return statementString(s) }
func (s *ForStmt) Accept(visitor Visitor) interface{} { return visitor.VisitFor(s) }
func (s *ForStmt) source() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FOR %s = %s TO %s", s.Var, s.From, s.To)
	if s.Step != nil {
		fmt.Fprintf(&sb, " STEP %s", s.Step)
	}
	return sb.String()
}

// NextStmt

func (s *NextStmt) LineNumber() int                    { return s.Line }
func (s *NextStmt) Kind() StatementKind                { return StmtNext }
func (s *NextStmt) String() string                     { return statementString(s) }
func (s *NextStmt) Accept(visitor Visitor) interface{} { return visitor.VisitNext(s) }
func (s *NextStmt) source() string {
	return "NEXT " + s.Var.String()
}

// GotoStmt

func (s *GotoStmt) LineNumber() int                    { return s.Line }
func (s *GotoStmt) Kind() StatementKind                { return StmtGoto }
func (s *GotoStmt) String() string                     { return statementString(s) }
func (s *GotoStmt) Accept(visitor Visitor) interface{} { return visitor.VisitGoto(s) }
func (s *GotoStmt) source() string {
	return "GOTO " + s.Target.String()
}

// EndStmt

func (s *EndStmt) LineNumber() int                    { return s.Line }
func (s *EndStmt) Kind() StatementKind                { return StmtEnd }
func (s *EndStmt) String() string                     { return statementString(s) }
func (s *EndStmt) Accept(visitor Visitor) interface{} { return visitor.VisitEnd(s) }
func (s *EndStmt) source() string                     { return "END" }

// IfStmt

func (s *IfStmt) LineNumber() int                    { return s.Line }
func (s *IfStmt) Kind() StatementKind                { return StmtIf }
func (s *IfStmt) String() string                     { return statementString(s) }
func (s *IfStmt) Accept(visitor Visitor) interface{} { return visitor.VisitIf(s) }
func (s *IfStmt) source() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "IF %s THEN %s", s.Cond, s.Then.source())
	if s.Else != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(s.Else.source())
	}
	return sb.String()
}

// Depth returns the IF nesting depth of the statement, 1 for a plain IF
func (s *IfStmt) Depth() int {
	depth := 0
	for _, branch := range []Statement{s.Then, s.Else} {
		if nested, ok := branch.(*IfStmt); ok {
			if d := nested.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth + 1
}

// File: expr.go
// Title: BASIC Expression Node Definitions
// Description: Expression tree nodes built by the expression translator.
//              String() renders a fully parenthesised canonical form so the
//              tree shape is visible in text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial expression nodes
// - 2026-10-19 v0.2.0: BASIC literals, variables with subscripts, calls

package ast

import (
	"strconv"
	"strings"
)

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// NumberLit is a numeric literal; Text keeps the lexeme as written
type NumberLit struct {
	Text  string
	Value float64
}

// StringLit is a quoted string; Value is the raw body between the quotes
type StringLit struct {
	Value string
}

// ConstantRef is a reference to a named constant such as PI
type ConstantRef struct {
	Name string
}

// Variable is a variable reference with an optional array subscript
type Variable struct {
	Line      int
	Name      string
	Subscript Expr // nil for scalar access
}

// FunctionCall is NAME(args...)
type FunctionCall struct {
	Name string
	Args []Expr
}

// UnaryExpr is a prefix operator applied to one operand
type UnaryExpr struct {
	Op      string
	Operand Expr
}

// BinaryExpr is a left-associative infix operation
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

// NewNumber builds a NumberLit from its lexeme
func NewNumber(text string) (*NumberLit, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	return &NumberLit{Text: text, Value: value}, nil
}

func (n *NumberLit) String() string                     { return n.Text }
func (n *NumberLit) Accept(visitor Visitor) interface{} { return visitor.VisitNumber(n) }
func (n *NumberLit) exprNode()                          {}

func (s *StringLit) String() string                     { return `"` + s.Value + `"` }
func (s *StringLit) Accept(visitor Visitor) interface{} { return visitor.VisitString(s) }
func (s *StringLit) exprNode()                          {}

func (c *ConstantRef) String() string                     { return c.Name }
func (c *ConstantRef) Accept(visitor Visitor) interface{} { return visitor.VisitConstant(c) }
func (c *ConstantRef) exprNode()                          {}

func (v *Variable) String() string {
	if v.Subscript == nil {
		return v.Name
	}
	return v.Name + "[" + v.Subscript.String() + "]"
}
func (v *Variable) Accept(visitor Visitor) interface{} { return visitor.VisitVariable(v) }
func (v *Variable) exprNode()                          {}

// IsString reports whether the variable holds a string value
func (v *Variable) IsString() bool {
	return strings.HasSuffix(v.Name, "$")
}

func (f *FunctionCall) String() string {
	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		args[i] = arg.String()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}
func (f *FunctionCall) Accept(visitor Visitor) interface{} { return visitor.VisitFunctionCall(f) }
func (f *FunctionCall) exprNode()                          {}

func (u *UnaryExpr) String() string                     { return "(" + u.Op + u.Operand.String() + ")" }
func (u *UnaryExpr) Accept(visitor Visitor) interface{} { return visitor.VisitUnary(u) }
func (u *UnaryExpr) exprNode()                          {}

func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}
func (b *BinaryExpr) Accept(visitor Visitor) interface{} { return visitor.VisitBinary(b) }
func (b *BinaryExpr) exprNode()                          {}

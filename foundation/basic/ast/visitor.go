// File: visitor.go
// Title: BASIC AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for statement and expression
//              nodes plus generic traversal helpers built on it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-19 v0.2.0: One method per BASIC node, Walk and collectors

package ast

import "sort"

// Visitor interface for traversing AST nodes using the visitor pattern.
// Adding a node type adds a method here, so every visitor must handle it.
type Visitor interface {
	// Visit statement nodes
	VisitPrint(stmt *PrintStmt) interface{}
	VisitLet(stmt *LetStmt) interface{}
	VisitRem(stmt *RemStmt) interface{}
	VisitPause(stmt *PauseStmt) interface{}
	VisitInput(stmt *InputStmt) interface{}
	VisitFor(stmt *ForStmt) interface{}
	VisitNext(stmt *NextStmt) interface{}
	VisitGoto(stmt *GotoStmt) interface{}
	VisitEnd(stmt *EndStmt) interface{}
	VisitIf(stmt *IfStmt) interface{}

	// Visit expression nodes
	VisitNumber(expr *NumberLit) interface{}
	VisitString(expr *StringLit) interface{}
	VisitConstant(expr *ConstantRef) interface{}
	VisitVariable(expr *Variable) interface{}
	VisitFunctionCall(expr *FunctionCall) interface{}
	VisitUnary(expr *UnaryExpr) interface{}
	VisitBinary(expr *BinaryExpr) interface{}
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitPrint(*PrintStmt) interface{}            { return nil }
func (BaseVisitor) VisitLet(*LetStmt) interface{}                { return nil }
func (BaseVisitor) VisitRem(*RemStmt) interface{}                { return nil }
func (BaseVisitor) VisitPause(*PauseStmt) interface{}            { return nil }
func (BaseVisitor) VisitInput(*InputStmt) interface{}            { return nil }
func (BaseVisitor) VisitFor(*ForStmt) interface{}                { return nil }
func (BaseVisitor) VisitNext(*NextStmt) interface{}              { return nil }
func (BaseVisitor) VisitGoto(*GotoStmt) interface{}              { return nil }
func (BaseVisitor) VisitEnd(*EndStmt) interface{}                { return nil }
func (BaseVisitor) VisitIf(*IfStmt) interface{}                  { return nil }
func (BaseVisitor) VisitNumber(*NumberLit) interface{}           { return nil }
func (BaseVisitor) VisitString(*StringLit) interface{}           { return nil }
func (BaseVisitor) VisitConstant(*ConstantRef) interface{}       { return nil }
func (BaseVisitor) VisitVariable(*Variable) interface{}          { return nil }
func (BaseVisitor) VisitFunctionCall(*FunctionCall) interface{}  { return nil }
func (BaseVisitor) VisitUnary(*UnaryExpr) interface{}            { return nil }
func (BaseVisitor) VisitBinary(*BinaryExpr) interface{}          { return nil }

// childVisitor returns the direct children of a node
type childVisitor struct{}

func (childVisitor) VisitPrint(s *PrintStmt) interface{} { return nodes(s.Expr) }
func (childVisitor) VisitLet(s *LetStmt) interface{}     { return nodes(s.Var, s.Value) }
func (childVisitor) VisitRem(*RemStmt) interface{}       { return []Node(nil) }
func (childVisitor) VisitPause(s *PauseStmt) interface{} { return nodes(s.Duration) }
func (childVisitor) VisitInput(s *InputStmt) interface{} { return nodes(s.Prompt, s.Var) }
func (childVisitor) VisitFor(s *ForStmt) interface{} {
	return nodes(s.Var, s.From, s.To, s.Step)
}
func (childVisitor) VisitNext(s *NextStmt) interface{}  { return nodes(s.Var) }
func (childVisitor) VisitGoto(s *GotoStmt) interface{}  { return nodes(s.Target) }
func (childVisitor) VisitEnd(*EndStmt) interface{}      { return []Node(nil) }
func (childVisitor) VisitIf(s *IfStmt) interface{}      { return nodes(s.Cond, s.Then, s.Else) }
func (childVisitor) VisitNumber(*NumberLit) interface{} { return []Node(nil) }
func (childVisitor) VisitString(*StringLit) interface{} { return []Node(nil) }
func (childVisitor) VisitConstant(*ConstantRef) interface{} {
	return []Node(nil)
}
func (childVisitor) VisitVariable(v *Variable) interface{} { return nodes(v.Subscript) }
func (childVisitor) VisitFunctionCall(f *FunctionCall) interface{} {
	out := make([]Node, 0, len(f.Args))
	for _, arg := range f.Args {
		out = append(out, arg)
	}
	return out
}
func (childVisitor) VisitUnary(u *UnaryExpr) interface{}  { return nodes(u.Operand) }
func (childVisitor) VisitBinary(b *BinaryExpr) interface{} { return nodes(b.Left, b.Right) }

// nodes drops absent children
func nodes(in ...Node) []Node {
	out := make([]Node, 0, len(in))
	for _, n := range in {
		if !isNil(n) {
			out = append(out, n)
		}
	}
	return out
}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Variable:
		return v == nil
	}
	return false
}

// Children returns the direct child nodes of node in source order
func Children(node Node) []Node {
	if isNil(node) {
		return nil
	}
	children, _ := node.Accept(childVisitor{}).([]Node)
	return children
}

// Walk traverses node depth-first in source order. fn is called for every
// node; returning false skips that node's children.
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// CollectVariables returns the sorted, de-duplicated names of all variables
// referenced by node
func CollectVariables(node Node) []string {
	seen := make(map[string]struct{})
	Walk(node, func(n Node) bool {
		if v, ok := n.(*Variable); ok {
			seen[v.Name] = struct{}{}
		}
		return true
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollectFunctionCalls returns every function call below node in source order
func CollectFunctionCalls(node Node) []*FunctionCall {
	var calls []*FunctionCall
	Walk(node, func(n Node) bool {
		if call, ok := n.(*FunctionCall); ok {
			calls = append(calls, call)
		}
		return true
	})
	return calls
}

// File: dump.go
// Title: AST Dump Helpers
// Description: Describes nodes as labelled trees for indented text output
//              and as plain maps for structured serialisation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial tree and map dumpers

package ast

import "strconv"

// TreeLine is one row of an indented node tree
type TreeLine struct {
	Depth  int    // nesting level, 0 for the root
	Role   string // relation to the parent ("then", "step", "arg", ...), empty for the root
	Label  string // node type, e.g. "FOR" or "Binary"
	Detail string // node payload, e.g. "line 10" or "+"
}

type child struct {
	role string
	node Node
}

type description struct {
	label    string
	detail   string
	children []child
}

// describeVisitor reports the label, payload and named children of a node
type describeVisitor struct{}

func lineDetail(line int) string { return "line " + strconv.Itoa(line) }

func (describeVisitor) VisitPrint(s *PrintStmt) interface{} {
	d := description{label: "PRINT", detail: lineDetail(s.Line), children: []child{{"expr", s.Expr}}}
	if s.Modifier != "" {
		d.detail += " modifier " + s.Modifier
	}
	return d
}

func (describeVisitor) VisitLet(s *LetStmt) interface{} {
	return description{label: "LET", detail: lineDetail(s.Line),
		children: []child{{"var", s.Var}, {"value", s.Value}}}
}

func (describeVisitor) VisitRem(s *RemStmt) interface{} {
	return description{label: "REM", detail: lineDetail(s.Line) + " " + strconv.Quote(s.Text)}
}

func (describeVisitor) VisitPause(s *PauseStmt) interface{} {
	return description{label: "PAUSE", detail: lineDetail(s.Line), children: []child{{"duration", s.Duration}}}
}

func (describeVisitor) VisitInput(s *InputStmt) interface{} {
	return description{label: "INPUT", detail: lineDetail(s.Line),
		children: []child{{"prompt", s.Prompt}, {"var", s.Var}}}
}

func (describeVisitor) VisitFor(s *ForStmt) interface{} {
	d := description{label: "FOR", detail: lineDetail(s.Line),
		children: []child{{"var", s.Var}, {"from", s.From}, {"to", s.To}}}
	if s.Step != nil {
		d.children = append(d.children, child{"step", s.Step})
	}
	return d
}

func (describeVisitor) VisitNext(s *NextStmt) interface{} {
	return description{label: "NEXT", detail: lineDetail(s.Line), children: []child{{"var", s.Var}}}
}

func (describeVisitor) VisitGoto(s *GotoStmt) interface{} {
	return description{label: "GOTO", detail: lineDetail(s.Line), children: []child{{"target", s.Target}}}
}

func (describeVisitor) VisitEnd(s *EndStmt) interface{} {
	return description{label: "END", detail: lineDetail(s.Line)}
}

func (describeVisitor) VisitIf(s *IfStmt) interface{} {
	d := description{label: "IF", detail: lineDetail(s.Line),
		children: []child{{"cond", s.Cond}, {"then", s.Then}}}
	if s.Else != nil {
		d.children = append(d.children, child{"else", s.Else})
	}
	return d
}

func (describeVisitor) VisitNumber(e *NumberLit) interface{} {
	return description{label: "Number", detail: e.Text}
}

func (describeVisitor) VisitString(e *StringLit) interface{} {
	return description{label: "String", detail: e.String()}
}

func (describeVisitor) VisitConstant(e *ConstantRef) interface{} {
	return description{label: "Constant", detail: e.Name}
}

func (describeVisitor) VisitVariable(e *Variable) interface{} {
	d := description{label: "Variable", detail: e.Name}
	if e.Subscript != nil {
		d.children = []child{{"subscript", e.Subscript}}
	}
	return d
}

func (describeVisitor) VisitFunctionCall(e *FunctionCall) interface{} {
	d := description{label: "Call", detail: e.Name}
	for _, arg := range e.Args {
		d.children = append(d.children, child{"arg", arg})
	}
	return d
}

func (describeVisitor) VisitUnary(e *UnaryExpr) interface{} {
	return description{label: "Unary", detail: e.Op, children: []child{{"operand", e.Operand}}}
}

func (describeVisitor) VisitBinary(e *BinaryExpr) interface{} {
	return description{label: "Binary", detail: e.Op,
		children: []child{{"left", e.Left}, {"right", e.Right}}}
}

func describe(node Node) description {
	d, _ := node.Accept(describeVisitor{}).(description)
	return d
}

// Tree flattens node into depth-annotated rows, parents before children
func Tree(node Node) []TreeLine {
	var lines []TreeLine
	var visit func(n Node, role string, depth int)
	visit = func(n Node, role string, depth int) {
		d := describe(n)
		lines = append(lines, TreeLine{Depth: depth, Role: role, Label: d.label, Detail: d.detail})
		for _, c := range d.children {
			visit(c.node, c.role, depth+1)
		}
	}
	if !isNil(node) {
		visit(node, "", 0)
	}
	return lines
}

// ToMap converts node into nested maps and slices suitable for YAML or JSON.
// Function arguments are collected under "args".
func ToMap(node Node) map[string]interface{} {
	if isNil(node) {
		return nil
	}

	d := describe(node)
	m := map[string]interface{}{"node": d.label}
	switch n := node.(type) {
	case Statement:
		m["line"] = n.LineNumber()
		if rem, ok := n.(*RemStmt); ok {
			m["text"] = rem.Text
		}
		if p, ok := n.(*PrintStmt); ok && p.Modifier != "" {
			m["modifier"] = p.Modifier
		}
	default:
		m["value"] = d.detail
	}

	var args []interface{}
	for _, c := range d.children {
		if c.role == "arg" {
			args = append(args, ToMap(c.node))
			continue
		}
		m[c.role] = ToMap(c.node)
	}
	if _, ok := node.(*FunctionCall); ok {
		if args == nil {
			args = []interface{}{}
		}
		m["args"] = args
	}
	return m
}

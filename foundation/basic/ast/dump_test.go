// File: dump_test.go
// Title: AST Dump Tests
// Description: Tests for the tree and map dumpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial tests

package ast

import (
	"reflect"
	"testing"
)

func TestTree(t *testing.T) {
	lines := Tree(createIfStatement())

	want := []TreeLine{
		{Depth: 0, Role: "", Label: "IF", Detail: "line 10"},
		{Depth: 1, Role: "cond", Label: "Binary", Detail: ">"},
		{Depth: 2, Role: "left", Label: "Variable", Detail: "A"},
		{Depth: 2, Role: "right", Label: "Number", Detail: "5"},
		{Depth: 1, Role: "then", Label: "GOTO", Detail: "line 10"},
		{Depth: 2, Role: "target", Label: "Number", Detail: "100"},
		{Depth: 1, Role: "else", Label: "PRINT", Detail: "line 10"},
		{Depth: 2, Role: "expr", Label: "String", Detail: `"no"`},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Tree() =\n%+v\nwant\n%+v", lines, want)
	}
}

func TestTreeNil(t *testing.T) {
	if got := Tree(nil); got != nil {
		t.Errorf("Tree(nil) = %v, want nil", got)
	}
}

func TestToMap(t *testing.T) {
	stmt := &PrintStmt{
		Line:     10,
		Modifier: ";",
		Expr:     &FunctionCall{Name: "RND", Args: nil},
	}

	got := ToMap(stmt)
	want := map[string]interface{}{
		"node":     "PRINT",
		"line":     10,
		"modifier": ";",
		"expr": map[string]interface{}{
			"node":  "Call",
			"value": "RND",
			"args":  []interface{}{},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %#v, want %#v", got, want)
	}
}

func TestToMapRem(t *testing.T) {
	got := ToMap(&RemStmt{Line: 5, Text: "hello"})
	want := map[string]interface{}{"node": "REM", "line": 5, "text": "hello"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %#v, want %#v", got, want)
	}
}

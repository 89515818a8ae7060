// File: doc.go
// Title: BASIC Abstract Syntax Tree Package Documentation
// Description: Defines the statement and expression nodes produced by the
//              BASIC parser together with visitor and traversal helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-19 v0.2.0: Line-numbered BASIC statements

/*
Package ast defines the Abstract Syntax Tree for line-numbered BASIC.

Each parsed source line becomes exactly one Statement. The statement set is
closed: PRINT, LET, REM, PAUSE, INPUT, FOR, NEXT, GOTO, END and IF. IF is the
only recursive variant; its THEN and ELSE branches are statements themselves.

Expressions form a tree of NumberLit, StringLit, ConstantRef, Variable,
FunctionCall, UnaryExpr and BinaryExpr nodes. String() on any node renders a
canonical, fully parenthesised form:

	10 IF ((A > 5) AND (B$ = "Y")) THEN GOTO 100 ELSE PRINT "no"

Consumers switch over the statement variants by implementing Visitor, which
has one method per node type. Walk, Children, CollectVariables, Tree and
ToMap cover the common read-only traversals.
*/
package ast

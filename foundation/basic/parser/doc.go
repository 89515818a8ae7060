// File: doc.go
// Title: BASIC Parser Package Documentation
// Description: Lexical analysis and recursive descent parsing for
//              line-numbered BASIC source lines.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-19 v0.2.0: BASIC lexer, statement parser and expression translator

/*
Package parser turns one line of BASIC source into one statement node.

Processing is strictly one-way:

	source line → Lexer → TokenStream → Parser → ast.Statement
	                                       └→ TranslateExpression → ast.Expr

The Lexer requires a leading line number and then tries the token classes
in a fixed order at each position: keyword, string, logic operator, function
name, constant, variable, number, operator, line modifier. Names are
normalised to upper case, so "10 print x" and "10 PRINT X" lex identically.
REM takes the rest of the line as a single comment token.

The Parser dispatches on the leading keyword (PRINT, LET, REM, PAUSE, INPUT,
FOR, NEXT, GOTO, END, IF). Operands are isolated by scanning expression
tokens while tracking bracket depth; a ")" or "]" met at depth zero belongs
to the enclosing subscript and ends the operand.

Failures are *LexError or *ParseError values carrying the line number. No
partially built node is ever returned. IF nesting and expression nesting are
both bounded; exceeding a bound yields a *ParseError wrapping
ErrDepthExceeded.

Lexer and Parser values hold no per-line state and can be shared between
goroutines.
*/
package parser

// File: doc.go
// Title: BASIC Front End Package Documentation
// Description: Engine facade over lexer, parser, function registry and
//              program store.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine documentation
// - 2026-10-19 v0.2.0: BASIC front end

/*
Package basic is the entry point of the mBASIC front end.

An Engine owns a function registry and a parser configured from Options.
It turns source lines into statement nodes and whole programs into an
ordered line store:

	engine, err := basic.New(basic.Options{Logger: logger})
	if err != nil {
		return err
	}

	stmt, err := engine.ParseLine(`10 IF A > 5 THEN PRINT "big" ELSE GOTO 100`)
	if err != nil {
		// mdwerror.HasCode(err, mdwerror.CodeBasicParse) etc.
		return err
	}

	prog, report, err := engine.Load(ctx, file)

# Errors

Lexer and parser failures are returned as *mdwerror.Error values with the
codes BASIC_LEX, BASIC_PARSE or BASIC_DEPTH. The typed *parser.LexError and
*parser.ParseError remain reachable through errors.As. When a line starts
with an unknown word the error carries a "hint" detail naming the closest
statement keyword.

# Loading

Load reads one statement per line, skips blank lines and keeps going after
a bad line. Every call gets a session UUID that is attached to its log
entries and errors. A later line with the same number replaces the earlier
one, as when typing a program in.

# Checks

Check and CheckProgram report problems the grammar cannot see: function
calls with the wrong number of arguments and GOTO targets that do not exist.
*/
package basic

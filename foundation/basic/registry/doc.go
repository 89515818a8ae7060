// File: doc.go
// Title: BASIC Function Registry Package Documentation
// Description: Function name registry consulted by the lexer and the
//              semantic checker.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry implementation
// - 2026-10-19 v0.2.0: BASIC functions

/*
Package registry keeps the set of callable BASIC functions.

The lexer only asks whether a word names a function (HasFunction), which
decides between a FUNCTION and a VARIABLE token. Arity is used later by the
engine to report calls with the wrong number of arguments.

	reg, _ := registry.New(registry.Options{})
	reg.Register(registry.FunctionDefinition{Name: "fnA", MinArgs: 1, MaxArgs: 1})
	reg.HasFunction("FNA") // true
*/
package registry

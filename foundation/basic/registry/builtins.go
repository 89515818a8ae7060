// File: builtins.go
// Title: Builtin BASIC Functions
// Description: Names and arity of the functions every registry starts with.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial builtin set

package registry

// Builtins returns the default function set
func Builtins() []FunctionDefinition {
	return []FunctionDefinition{
		{Name: "ABS", MinArgs: 1, MaxArgs: 1, Description: "absolute value"},
		{Name: "ASC", MinArgs: 1, MaxArgs: 1, Description: "character code of the first character"},
		{Name: "ATN", MinArgs: 1, MaxArgs: 1, Description: "arc tangent in radians"},
		{Name: "CHR$", MinArgs: 1, MaxArgs: 1, Description: "character for a character code"},
		{Name: "COS", MinArgs: 1, MaxArgs: 1, Description: "cosine of radians"},
		{Name: "EXP", MinArgs: 1, MaxArgs: 1, Description: "e raised to a power"},
		{Name: "INT", MinArgs: 1, MaxArgs: 1, Description: "largest integer not greater than the value"},
		{Name: "LEFT$", MinArgs: 2, MaxArgs: 2, Description: "leftmost characters of a string"},
		{Name: "LEN", MinArgs: 1, MaxArgs: 1, Description: "length of a string"},
		{Name: "LOG", MinArgs: 1, MaxArgs: 1, Description: "natural logarithm"},
		{Name: "MID$", MinArgs: 2, MaxArgs: 3, Description: "substring from a position"},
		{Name: "RIGHT$", MinArgs: 2, MaxArgs: 2, Description: "rightmost characters of a string"},
		{Name: "RND", MinArgs: 0, MaxArgs: 1, Description: "random number between 0 and 1"},
		{Name: "SGN", MinArgs: 1, MaxArgs: 1, Description: "sign of a number"},
		{Name: "SIN", MinArgs: 1, MaxArgs: 1, Description: "sine of radians"},
		{Name: "SQR", MinArgs: 1, MaxArgs: 1, Description: "square root"},
		{Name: "STR$", MinArgs: 1, MaxArgs: 1, Description: "number formatted as a string"},
		{Name: "TAN", MinArgs: 1, MaxArgs: 1, Description: "tangent of radians"},
		{Name: "VAL", MinArgs: 1, MaxArgs: 1, Description: "numeric value of a string"},
	}
}

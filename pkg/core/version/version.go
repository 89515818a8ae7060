// ============================================================================
// mBASIC - BASIC Front End
// ============================================================================
//
// Package:     version
// Description: Central version management for the front end components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all mBASIC components
const (
	// Release version of the command line tool
	Platform = "0.2.0"

	// Component versions
	Lexer    = "0.2.0"
	Parser   = "0.2.0"
	Registry = "0.1.0"
	Program  = "0.1.0"
	REPL     = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/mbasic/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "registry":
		return Registry
	case "program":
		return Program
	case "repl":
		return REPL
	default:
		return Platform
	}
}

// Components lists the names accepted by ComponentVersion
func Components() []string {
	return []string{"lexer", "parser", "registry", "program", "repl"}
}

// String returns the full version line
func String() string {
	return fmt.Sprintf("mbasic %s (commit %s, built %s)", Platform, Commit, BuildDate)
}

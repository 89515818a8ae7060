// Package log provides structured logging for the mBASIC front end.
//
// Package: log
// Title: mBASIC Structured Logging
// Description: A small structured logger with levels, persistent context
//              fields, request correlation and JSON or text output. The lexer,
//              parser, registry and engine all log through it so a failed
//              program load can be traced line by line.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Reduced to synchronous JSON/text output
//
// Usage:
//   logger := log.New().WithField("component", "basic-parser")
//   logger.Debug("statement parsed", log.Fields{"line": 10, "keyword": "PRINT"})
package log

// File: doc.go
// Title: Package Documentation for stringx
// Description: Small Unicode-safe string helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial package documentation
// - 2026-10-19 v0.2.0: Trimmed to the helpers used by mBASIC

// Package stringx provides Unicode-aware helpers for blank checks,
// truncation and padding. All functions count runes, not bytes.
//
//	stringx.Truncate("GOTO 1000", 7, "...") // "GOTO..."
//	stringx.PadLeft("10", 5, ' ')          // "   10"
package stringx

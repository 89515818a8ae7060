// Package error provides the coded error type shared by the mBASIC front end.
//
// Package: error
// Title: mBASIC Error Handling
// Description: Structured errors with a code, a severity, free-form details and
//              request correlation. Lexer and parser failures are wrapped into
//              these errors at the engine boundary so callers can branch on the
//              code while the typed cause stays reachable through errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: BASIC syntax codes, dropped stack capture and localisation
//
// Usage:
//   import mdwerror "github.com/msto63/mbasic/foundation/core/error"
//
//   err := mdwerror.Wrap(lexErr, "line 10 rejected").
//     WithCode(mdwerror.CodeBasicLex).
//     WithDetail("line", 10)
//
//   if mdwerror.HasCode(err, mdwerror.CodeBasicLex) {
//     // skip the line
//   }
package error

// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to decide how loudly an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Mapping for BASIC codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a rejected input the caller can skip (a bad source line)
	SeverityLow Severity = iota

	// SeverityMedium affects a whole operation but the process continues
	SeverityMedium

	// SeverityHigh means the component could not be set up
	SeverityHigh

	// SeverityCritical means the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeBasicLex, CodeBasicParse, CodeBasicDepth, CodeBasicSemantic,
		CodeInvalidInput, CodeNotFound, CodeDuplicateEntry:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

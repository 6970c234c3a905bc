package types

import (
	"fmt"
	"strings"
)

// Severity is the reporting level of a violation.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity parses a severity string (case-insensitive).
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return "", fmt.Errorf("invalid severity %q: expected warning or error", s)
	}
}

// IsSerious reports whether the severity fails a lint run.
func (s Severity) IsSerious() bool {
	return s == SeverityError
}

// String implements Stringer.
func (s Severity) String() string {
	return string(s)
}

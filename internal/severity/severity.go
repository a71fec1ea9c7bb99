// Package severity provides severity level constants and utilities
// for warnings reported by the merger and codec packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a reported condition.
type Severity int

const (
	// SeverityError indicates a condition that makes the input unusable.
	SeverityError Severity = iota

	// SeverityWarning indicates a recoverable condition the caller should
	// review, such as a positional-alignment fallback.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates a condition that was recovered from with
	// data loss, such as collapsing a multi-statistic input to one plane.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

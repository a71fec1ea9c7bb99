package merger

import (
	"fmt"
	"strings"

	"github.com/erraggy/tabletools/internal/severity"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnPositionalFallback indicates labels were absent on one side and the
	// merge fell back to positional (index-order) alignment.
	WarnPositionalFallback WarningCategory = "positional_fallback"
	// WarnPlaneCollapsed indicates a 3-axis input was collapsed to its first
	// plane, discarding the remaining statistics.
	WarnPlaneCollapsed WarningCategory = "plane_collapsed"
	// WarnUnnamedTable indicates columns needed disambiguation but their
	// table has no assigned identity to build the prefix from.
	WarnUnnamedTable WarningCategory = "unnamed_table"
)

// MergeWarning is a structured record of a recoverable condition encountered
// during a merge. Warnings never fail the merge; they are collected on the
// MergeResult and logged through the package logger.
type MergeWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Message is a human-readable description.
	Message string
	// Table is the identity of the input that triggered the warning, if any.
	Table string
	// Severity indicates warning severity (default: SeverityWarning).
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the formatted warning message.
func (w *MergeWarning) String() string {
	return w.Message
}

// NewPositionalFallbackWarning creates a warning for label-free alignment.
// Axis names the label kind that was absent: "row" or "column".
func NewPositionalFallbackWarning(axis string, leftRows, rightRows int) *MergeWarning {
	return &MergeWarning{
		Category: WarnPositionalFallback,
		Message: fmt.Sprintf("no %s labels to match on; tables merged in index order (%d and %d entries, shorter side padded)",
			axis, leftRows, rightRows),
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"axis":        axis,
			"left_rows":   leftRows,
			"right_rows":  rightRows,
			"target_rows": max(leftRows, rightRows),
		},
	}
}

// NewPlaneCollapsedWarning creates a warning for a 3-axis input reduced to
// its first plane. Stats lists the statistic names along the dropped axis
// when the input carried them.
func NewPlaneCollapsedWarning(tableName string, dropped int, stats []string) *MergeWarning {
	msg := fmt.Sprintf("input holds %d statistics; only the first was kept", dropped+1)
	if len(stats) > 0 {
		msg = fmt.Sprintf("input holds statistics %s; only %q was kept",
			strings.Join(quoteAll(stats), ", "), stats[0])
	}
	if tableName != "" {
		msg = fmt.Sprintf("table %q: %s", tableName, msg)
	}
	return &MergeWarning{
		Category: WarnPlaneCollapsed,
		Message:  msg,
		Table:    tableName,
		Severity: severity.SeverityCritical,
		Context: map[string]any{
			"dropped":    dropped,
			"statistics": stats,
		},
	}
}

// NewUnnamedTableWarning creates a warning for a disambiguation that could
// not prefix a table's columns because the table has no assigned identity.
func NewUnnamedTableWarning(side string, labels []string) *MergeWarning {
	return &MergeWarning{
		Category: WarnUnnamedTable,
		Message: fmt.Sprintf("%s table has colliding column labels %s but no assigned name; assign one so its columns can be disambiguated",
			side, strings.Join(quoteAll(labels), ", ")),
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"side":   side,
			"labels": labels,
		},
	}
}

// quoteAll wraps each label in double quotes for message text.
func quoteAll(labels []string) []string {
	out := make([]string, len(labels))
	for i, s := range labels {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

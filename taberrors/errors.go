package taberrors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrTooManyDimensions indicates an input array exceeded 3 axes.
	ErrTooManyDimensions = errors.New("too many dimensions")

	// ErrNoOverlap indicates a matching-only merge found no common labels.
	ErrNoOverlap = errors.New("no overlapping labels")

	// ErrMissingLabel indicates one or more row labels are unset.
	ErrMissingLabel = errors.New("missing label")

	// ErrDuplicateLabel indicates one or more row labels repeat.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrParse indicates a failure reading a table document.
	ErrParse = errors.New("parse error")
)

// TooManyDimensionsError reports an input with more than 3 axes.
// Inputs of up to 3 axes are collapsed to their first 2-D plane; anything
// beyond that cannot be merged.
type TooManyDimensionsError struct {
	// Table is the identity of the offending input, if assigned
	Table string
	// Axes is the number of axes the input carries
	Axes int
}

// Error returns a human-readable error message.
func (e *TooManyDimensionsError) Error() string {
	msg := fmt.Sprintf("input has %d axes; at most 3 are supported", e.Axes)
	if e.Table != "" {
		msg = fmt.Sprintf("table %q: %s", e.Table, msg)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *TooManyDimensionsError) Is(target error) bool {
	return target == ErrTooManyDimensions
}

// NoOverlapError reports a matching-only merge whose two label sets are
// disjoint. Suggested names the merge direction the caller likely intended.
type NoOverlapError struct {
	// Direction is the requested merge direction
	Direction string
	// Suggested is the alternate direction that may have been intended
	Suggested string
}

// Error returns a human-readable error message.
func (e *NoOverlapError) Error() string {
	msg := "no labels in common between the tables being merged"
	if e.Direction != "" {
		msg = fmt.Sprintf("%s %s", e.Direction, msg)
	}
	if e.Suggested != "" {
		msg += fmt.Sprintf("; did you intend direction %q?", e.Suggested)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NoOverlapError) Is(target error) bool {
	return target == ErrNoOverlap
}

// MissingLabelError reports rows whose labels are unset. Positions are
// 1-based row positions within the offending table.
type MissingLabelError struct {
	// Table is the identity of the offending table, if assigned
	Table string
	// Side identifies which merge operand is affected: "left" or "right"
	Side string
	// Positions lists the 1-based positions of the unlabeled rows
	Positions []int
}

// Error returns a human-readable error message.
func (e *MissingLabelError) Error() string {
	msg := fmt.Sprintf("missing row labels at positions %s", joinInts(e.Positions))
	return fmt.Sprintf("%s: %s", tableRef(e.Side, e.Table), msg)
}

// Is reports whether target matches this error type.
func (e *MissingLabelError) Is(target error) bool {
	return target == ErrMissingLabel
}

// DuplicatedLabel records one repeated label together with every 1-based
// position it occupies.
type DuplicatedLabel struct {
	Label     string
	Positions []int
}

// DuplicateLabelError reports row labels that repeat within one table.
// Labels must be unique before a merge can align on them.
type DuplicateLabelError struct {
	// Table is the identity of the offending table, if assigned
	Table string
	// Side identifies which merge operand is affected: "left" or "right"
	Side string
	// Duplicates lists each repeated label with all of its positions
	Duplicates []DuplicatedLabel
}

// Error returns a human-readable error message.
func (e *DuplicateLabelError) Error() string {
	parts := make([]string, len(e.Duplicates))
	for i, d := range e.Duplicates {
		parts[i] = fmt.Sprintf("%q at positions %s", d.Label, joinInts(d.Positions))
	}
	return fmt.Sprintf("%s: duplicated row labels: %s", tableRef(e.Side, e.Table), strings.Join(parts, "; "))
}

// Is reports whether target matches this error type.
func (e *DuplicateLabelError) Is(target error) bool {
	return target == ErrDuplicateLabel
}

// ConfigError represents invalid configuration or input options.
type ConfigError struct {
	// Message describes the configuration problem
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	return "configuration error: " + e.Message
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ParseError represents a failure to read a table document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// tableRef formats a side/identity pair for error messages.
func tableRef(side, name string) string {
	switch {
	case side != "" && name != "":
		return fmt.Sprintf("%s table %q", side, name)
	case side != "":
		return side + " table"
	case name != "":
		return fmt.Sprintf("table %q", name)
	default:
		return "table"
	}
}

// joinInts renders 1-based positions as a comma-separated list.
func joinInts(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}

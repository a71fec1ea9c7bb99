// Package taberrors provides structured error types for tabletools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - TooManyDimensionsError: an input array has more than 3 axes
//   - NoOverlapError: a matching-only merge found no common labels
//   - MissingLabelError: one or more row labels are unset
//   - DuplicateLabelError: one or more row labels repeat
//   - ConfigError: invalid configuration or input options
//   - ParseError: failures reading a table document (codec package)
//
// # Usage with errors.As
//
//	result, err := merger.MergeTwo(left, right, merger.SideBySide, merger.MatchingOnly, nil)
//	if err != nil {
//	    var dupErr *taberrors.DuplicateLabelError
//	    if errors.As(err, &dupErr) {
//	        for _, d := range dupErr.Duplicates {
//	            // d.Label occupies positions d.Positions
//	        }
//	    }
//	}
package taberrors

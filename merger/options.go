package merger

import (
	"fmt"

	"github.com/erraggy/tabletools/taberrors"
	"github.com/erraggy/tabletools/table"
)

// Option is a function that configures a merge operation.
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation.
type mergeConfig struct {
	inputs      []table.Input
	direction   *Direction
	nonMatching *NonMatchingPolicy
	disambig    []string
}

// WithInputs adds inputs to the merge, in order.
func WithInputs(inputs ...table.Input) Option {
	return func(cfg *mergeConfig) error {
		for i, in := range inputs {
			if in == nil {
				return fmt.Errorf("input %d is nil", i)
			}
		}
		cfg.inputs = append(cfg.inputs, inputs...)
		return nil
	}
}

// WithDirection sets the merge direction. The default is SideBySide.
func WithDirection(direction Direction) Option {
	return func(cfg *mergeConfig) error {
		if !IsValidDirection(string(direction)) {
			return fmt.Errorf("invalid direction %q (valid: %v)", direction, ValidDirections())
		}
		cfg.direction = &direction
		return nil
	}
}

// WithNonMatching sets the non-matching policy. The default is KeepAll.
// The directional policies KeepAllFromFirst and KeepAllFromSecond require
// exactly two inputs.
func WithNonMatching(policy NonMatchingPolicy) Option {
	return func(cfg *mergeConfig) error {
		if !IsValidPolicy(string(policy)) {
			return fmt.Errorf("invalid non-matching policy %q (valid: %v)", policy, ValidPolicies())
		}
		cfg.nonMatching = &policy
		return nil
	}
}

// WithDisambiguationLabels marks column labels that must be disambiguated
// even when they do not collide between the two inputs being merged.
// Requires exactly two inputs; a multi-input merge computes its own set.
func WithDisambiguationLabels(labels ...string) Option {
	return func(cfg *mergeConfig) error {
		cfg.disambig = append(cfg.disambig, labels...)
		return nil
	}
}

// MergeWithOptions merges inputs using functional options, combining input
// selection and configuration in a single call.
//
// Example:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithInputs(sales, costs),
//	    merger.WithDirection(merger.SideBySide),
//	    merger.WithNonMatching(merger.MatchingOnly),
//	)
func MergeWithOptions(opts ...Option) (*MergeResult, error) {
	cfg := &mergeConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("merger: invalid options: %w", err)
		}
	}

	direction := SideBySide
	if cfg.direction != nil {
		direction = *cfg.direction
	}
	nonMatching := KeepAll
	if cfg.nonMatching != nil {
		nonMatching = *cfg.nonMatching
	}

	if len(cfg.inputs) == 2 {
		return MergeTwo(cfg.inputs[0], cfg.inputs[1], direction, nonMatching, cfg.disambig)
	}
	if len(cfg.disambig) > 0 {
		return nil, &taberrors.ConfigError{Message: "disambiguation labels require exactly two inputs"}
	}
	return MergeAll(cfg.inputs, direction, nonMatching)
}

// Package stringutil provides label helpers shared by the merger package.
package stringutil

import "strings"

// TrimLabel removes leading and trailing whitespace from a label. Labels are
// matched by their trimmed value.
func TrimLabel(s string) string {
	return strings.TrimSpace(s)
}

// TrimAll returns a copy of labels with every entry trimmed. A nil input
// stays nil so unlabeled axes survive shaping.
func TrimAll(labels []string) []string {
	if labels == nil {
		return nil
	}
	out := make([]string, len(labels))
	for i, s := range labels {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// Positions returns the 1-based positions of target within labels.
func Positions(labels []string, target string) []int {
	var out []int
	for i, s := range labels {
		if s == target {
			out = append(out, i+1)
		}
	}
	return out
}

// Duplicates returns, in first-occurrence order, every label that appears
// more than once.
func Duplicates(labels []string) []string {
	counts := make(map[string]int, len(labels))
	for _, s := range labels {
		counts[s]++
	}
	var out []string
	seen := make(map[string]bool, len(labels))
	for _, s := range labels {
		if counts[s] > 1 && !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}

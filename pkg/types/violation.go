package types

import "sort"

// Violation is a single style infraction reported by a rule. Violations
// are value objects: rules construct them and nothing mutates them
// afterwards.
type Violation struct {
	RuleID   string   `json:"rule_id"`
	RuleName string   `json:"rule_name"`
	Severity Severity `json:"severity"`
	Location Location `json:"location"`
	Reason   string   `json:"reason"`
}

// SortViolations orders violations by file, then byte offset, then rule
// ID, giving every reporter the same deterministic ordering.
func SortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Location.File != b.Location.File {
			return a.Location.File < b.Location.File
		}
		if a.Location.Offset != b.Location.Offset {
			return a.Location.Offset < b.Location.Offset
		}
		return a.RuleID < b.RuleID
	})
}

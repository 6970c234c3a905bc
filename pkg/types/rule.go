package types

import "fmt"

// RuleKind classifies what a rule polices.
type RuleKind string

const (
	KindStyle   RuleKind = "style"
	KindLint    RuleKind = "lint"
	KindMetrics RuleKind = "metrics"
)

// RuleDescription is the static identity of a rule: stable ID, display
// name, prose description, and a curated example corpus. Descriptions
// are package-level constants built once at startup and never mutated;
// the examples double as regression fixtures for the rule's own tests.
type RuleDescription struct {
	ID                    string   // e.g., "closure_parameter_position"
	Name                  string   // human-readable name
	Description           string   // one-sentence explanation
	Kind                  RuleKind // classification
	NonTriggeringExamples []string // source snippets the rule must accept
	TriggeringExamples    []string // source snippets the rule must flag
}

// ConsoleDescription formats the identity line shown by rule listings.
func (d RuleDescription) ConsoleDescription() string {
	return fmt.Sprintf("%s (%s): %s", d.ID, d.Name, d.Description)
}

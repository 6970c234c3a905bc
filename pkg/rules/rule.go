// Package rules holds the lint rules and the registry the engine builds
// its rule set from. A rule inspects one parsed file at a time and
// reports violations; it never performs I/O and never mutates the file
// view, so the engine is free to run rules across files in parallel.
package rules

import (
	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// Rule checks one file for violations of a single style rule.
type Rule interface {
	// Description returns the rule's static identity record.
	Description() types.RuleDescription

	// Check reports every violation of this rule in the file, in
	// ascending byte-offset order.
	Check(file *syntax.File) []types.Violation
}

// ConfigurableRule is a Rule that accepts options from the
// configuration file. ApplyConfiguration validates the full payload
// before committing any of it: on error the rule keeps its previous
// settings.
type ConfigurableRule interface {
	Rule
	ApplyConfiguration(config any) error
}

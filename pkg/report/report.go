// Package report formats lint violations for output. Every reporter
// receives violations already sorted by (file, offset) and writes one
// complete document, so reporters are interchangeable behind a name.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// Reporter renders a violation list.
type Reporter interface {
	// Name is the identifier used in configuration and on the CLI.
	Name() string

	// Report writes the formatted violations to w.
	Report(w io.Writer, violations []types.Violation) error
}

// reporters maps reporter names to constructors. SARIF output needs
// the rule descriptions and tool version, so reporters are built per
// run rather than shared.
var reporters = map[string]func(Options) Reporter{
	"xcode": func(Options) Reporter { return &XcodeReporter{} },
	"json":  func(Options) Reporter { return &JSONReporter{} },
	"emoji": func(Options) Reporter { return &EmojiReporter{} },
	"sarif": func(o Options) Reporter { return &SARIFReporter{options: o} },
}

// Options carry the run metadata some reporters embed in their output.
type Options struct {
	// Rules are the descriptions of every active rule.
	Rules []types.RuleDescription

	// Version is the tool version.
	Version string
}

// New returns the reporter with the given name.
func New(name string, options Options) (Reporter, error) {
	factory, ok := reporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown reporter %q (available: %v)", name, Names())
	}
	return factory(options), nil
}

// Names returns the available reporter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(reporters))
	for name := range reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

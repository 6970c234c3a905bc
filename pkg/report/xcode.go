package report

import (
	"fmt"
	"io"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// XcodeReporter writes the default one-line-per-violation format Xcode
// parses into build warnings and errors:
//
//	path:line:column: severity: Name Violation: reason (rule_id)
type XcodeReporter struct{}

// Name implements Reporter.
func (r *XcodeReporter) Name() string { return "xcode" }

// Report implements Reporter.
func (r *XcodeReporter) Report(w io.Writer, violations []types.Violation) error {
	for _, v := range violations {
		_, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s Violation: %s (%s)\n",
			v.Location.File, v.Location.Line, v.Location.Column,
			v.Severity, v.RuleName, v.Reason, v.RuleID)
		if err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"encoding/json"
	"io"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// JSONReporter writes the violation list as a JSON array.
type JSONReporter struct{}

// Name implements Reporter.
func (r *JSONReporter) Name() string { return "json" }

// Report implements Reporter. An empty run emits [] rather than null
// so consumers always get an array.
func (r *JSONReporter) Report(w io.Writer, violations []types.Violation) error {
	if violations == nil {
		violations = []types.Violation{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(violations)
}

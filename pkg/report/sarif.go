package report

import (
	"io"

	"github.com/alexdonduk/SwiftLint/pkg/sarif"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// SARIFReporter writes a SARIF 2.1.0 document carrying both the active
// rule set and the violations.
type SARIFReporter struct {
	options Options
}

// Name implements Reporter.
func (r *SARIFReporter) Name() string { return "sarif" }

// Report implements Reporter.
func (r *SARIFReporter) Report(w io.Writer, violations []types.Violation) error {
	doc := sarif.NewReport(r.options.Version)
	for _, desc := range r.options.Rules {
		doc.AddRule(desc)
	}
	for _, v := range violations {
		doc.AddResult(v)
	}

	data, err := doc.ToJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

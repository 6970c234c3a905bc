package report

import (
	"fmt"
	"io"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// EmojiReporter groups violations by file with a marker per severity,
// for human eyes rather than tool consumption.
type EmojiReporter struct{}

// Name implements Reporter.
func (r *EmojiReporter) Name() string { return "emoji" }

// Report implements Reporter. Violations arrive sorted by file, so
// grouping is a matter of printing a header whenever the file changes.
func (r *EmojiReporter) Report(w io.Writer, violations []types.Violation) error {
	currentFile := ""
	for _, v := range violations {
		if v.Location.File != currentFile {
			currentFile = v.Location.File
			if _, err := fmt.Fprintf(w, "%s\n", currentFile); err != nil {
				return err
			}
		}

		marker := "⚠️"
		if v.Severity.IsSerious() {
			marker = "🛑"
		}
		if _, err := fmt.Fprintf(w, "%s Line %d: %s\n", marker, v.Location.Line, v.Reason); err != nil {
			return err
		}
	}
	return nil
}

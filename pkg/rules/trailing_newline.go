package rules

import (
	"bytes"

	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

var trailingNewlineDescription = types.RuleDescription{
	ID:          "trailing_newline",
	Name:        "Trailing Newline",
	Description: "Files should have a single trailing newline.",
	Kind:        types.KindStyle,
	NonTriggeringExamples: []string{
		"let a = 0\n",
	},
	TriggeringExamples: []string{
		"let a = 0",
		"let a = 0\n\n",
	},
}

// TrailingNewlineRule requires files to end with exactly one newline.
// Empty files are left alone.
type TrailingNewlineRule struct{}

// NewTrailingNewlineRule returns the rule. It takes no configuration.
func NewTrailingNewlineRule() *TrailingNewlineRule {
	return &TrailingNewlineRule{}
}

// Description implements Rule.
func (r *TrailingNewlineRule) Description() types.RuleDescription {
	return trailingNewlineDescription
}

// Check implements Rule.
func (r *TrailingNewlineRule) Check(file *syntax.File) []types.Violation {
	content := file.Content
	if len(content) == 0 {
		return nil
	}
	if bytes.HasSuffix(content, []byte("\n")) && !bytes.HasSuffix(content, []byte("\n\n")) {
		return nil
	}

	offset := len(content)
	line, column := file.Index.PositionOf(offset)
	return []types.Violation{{
		RuleID:   trailingNewlineDescription.ID,
		RuleName: trailingNewlineDescription.Name,
		Severity: types.SeverityWarning,
		Location: types.Location{
			File:   file.Path,
			Offset: offset,
			Line:   line,
			Column: column,
		},
		Reason: "Files should have a single trailing newline",
	}}
}

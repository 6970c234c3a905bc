package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

var lineLengthDescription = types.RuleDescription{
	ID:          "line_length",
	Name:        "Line Length",
	Description: "Lines should not span too many characters.",
	Kind:        types.KindMetrics,
	NonTriggeringExamples: []string{
		strings.Repeat("/", 120) + "\n",
		"let short = 1\n",
	},
	TriggeringExamples: []string{
		strings.Repeat("/", 121) + "\n",
		strings.Repeat("/", 201) + "\n",
	},
}

// LineLengthRule flags lines longer than the configured thresholds.
// Lengths are measured in characters, not bytes, so multi-byte source
// is not penalized. Crossing the error threshold upgrades the
// violation's severity.
type LineLengthRule struct {
	warning int
	error   int
}

// NewLineLengthRule returns the rule with its default thresholds of
// 120 (warning) and 200 (error) characters.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{warning: 120, error: 200}
}

// Description implements Rule.
func (r *LineLengthRule) Description() types.RuleDescription {
	return lineLengthDescription
}

// ApplyConfiguration accepts either a bare integer, which sets the
// warning threshold, or a mapping with integer "warning" and "error"
// keys.
func (r *LineLengthRule) ApplyConfiguration(config any) error {
	const ruleID = "line_length"

	switch value := config.(type) {
	case int:
		if value <= 0 {
			return unknownConfiguration(ruleID, "threshold must be positive, got %d", value)
		}
		r.warning = value
		return nil
	case map[string]any:
		if len(value) == 0 {
			return unknownConfiguration(ruleID, "mapping is empty")
		}
		warning, errorThreshold := r.warning, r.error
		for key, raw := range value {
			threshold, ok := raw.(int)
			if !ok {
				return unknownConfiguration(ruleID, "key %q expects an integer, got %T", key, raw)
			}
			if threshold <= 0 {
				return unknownConfiguration(ruleID, "key %q must be positive, got %d", key, threshold)
			}
			switch key {
			case "warning":
				warning = threshold
			case "error":
				errorThreshold = threshold
			default:
				return unknownConfiguration(ruleID, "unsupported key %q", key)
			}
		}
		r.warning, r.error = warning, errorThreshold
		return nil
	default:
		return unknownConfiguration(ruleID, "expected an integer or mapping, got %T", config)
	}
}

// Check implements Rule.
func (r *LineLengthRule) Check(file *syntax.File) []types.Violation {
	var violations []types.Violation
	for line := 1; line <= file.Index.NumLines(); line++ {
		start, end := file.Index.LineRange(line)
		length := utf8.RuneCount(file.Content[start:end])
		if length <= r.warning {
			continue
		}

		severity := types.SeverityWarning
		limit := r.warning
		if length > r.error {
			severity = types.SeverityError
			limit = r.error
		}

		violations = append(violations, types.Violation{
			RuleID:   lineLengthDescription.ID,
			RuleName: lineLengthDescription.Name,
			Severity: severity,
			Location: types.Location{
				File:   file.Path,
				Offset: start,
				Line:   line,
				Column: 1,
			},
			Reason: fmt.Sprintf("Line should be %d characters or less: currently %d characters", limit, length),
		})
	}
	return violations
}

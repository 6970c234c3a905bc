package rules

import (
	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

var trailingWhitespaceDescription = types.RuleDescription{
	ID:          "trailing_whitespace",
	Name:        "Trailing Whitespace",
	Description: "Lines should not have trailing whitespace.",
	Kind:        types.KindStyle,
	NonTriggeringExamples: []string{
		"let name: String\n",
		"// a comment\n",
		"\n",
	},
	TriggeringExamples: []string{
		"let name: String \n",
		"let name: String\t\n",
		"// a comment  \n",
	},
}

// TrailingWhitespaceRule flags lines ending in spaces or tabs.
type TrailingWhitespaceRule struct {
	ignoresEmptyLines bool
	severity          types.Severity
}

// NewTrailingWhitespaceRule returns the rule with its defaults: empty
// lines are checked too, warning severity.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		ignoresEmptyLines: false,
		severity:          types.SeverityWarning,
	}
}

// Description implements Rule.
func (r *TrailingWhitespaceRule) Description() types.RuleDescription {
	return trailingWhitespaceDescription
}

// ApplyConfiguration accepts a mapping with the keys
// ignores_empty_lines (bool) and severity (string).
func (r *TrailingWhitespaceRule) ApplyConfiguration(config any) error {
	const ruleID = "trailing_whitespace"

	options, ok := config.(map[string]any)
	if !ok {
		return unknownConfiguration(ruleID, "expected a mapping, got %T", config)
	}
	if len(options) == 0 {
		return unknownConfiguration(ruleID, "mapping is empty")
	}

	ignoresEmptyLines := r.ignoresEmptyLines
	severity := r.severity

	for key, value := range options {
		switch key {
		case "ignores_empty_lines":
			b, ok := value.(bool)
			if !ok {
				return unknownConfiguration(ruleID, "key %q expects a bool, got %T", key, value)
			}
			ignoresEmptyLines = b
		case "severity":
			s, ok := value.(string)
			if !ok {
				return unknownConfiguration(ruleID, "key %q expects a string, got %T", key, value)
			}
			parsed, err := types.ParseSeverity(s)
			if err != nil {
				return unknownConfiguration(ruleID, "%v", err)
			}
			severity = parsed
		default:
			return unknownConfiguration(ruleID, "unsupported key %q", key)
		}
	}

	r.ignoresEmptyLines = ignoresEmptyLines
	r.severity = severity
	return nil
}

// Check implements Rule.
func (r *TrailingWhitespaceRule) Check(file *syntax.File) []types.Violation {
	var violations []types.Violation
	for line := 1; line <= file.Index.NumLines(); line++ {
		start, end := file.Index.LineRange(line)
		trimmed := end
		for trimmed > start {
			b := file.Content[trimmed-1]
			if b != ' ' && b != '\t' {
				break
			}
			trimmed--
		}
		if trimmed == end {
			continue
		}
		if r.ignoresEmptyLines && trimmed == start {
			continue
		}

		lineNum, column := file.Index.PositionOf(trimmed)
		violations = append(violations, types.Violation{
			RuleID:   trailingWhitespaceDescription.ID,
			RuleName: trailingWhitespaceDescription.Name,
			Severity: r.severity,
			Location: types.Location{
				File:   file.Path,
				Offset: trimmed,
				Line:   lineNum,
				Column: column,
			},
			Reason: "Lines should not have trailing whitespace",
		})
	}
	return violations
}

package rules

import (
	"regexp"

	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// closureParameterTerminator ends a closure's parameter list.
const closureParameterTerminator = "in"

// terminatorScan matches a parameter list terminator either followed by
// a blank line or bare. The blank-line alternative comes first so the
// scan prefers the longer match: occurrences it matches are satisfied
// and only bare matches are reported.
var terminatorScan = regexp.MustCompile(`\bin\b\n\n|\bin\b`)

var closureParameterPositionDescription = types.RuleDescription{
	ID:          "closure_parameter_position",
	Name:        "Closure Parameter Position",
	Description: "Closure parameters should be on the same line as opening brace.",
	Kind:        types.KindStyle,
	NonTriggeringExamples: []string{
		"[1, 2].map { $0 + 1 }\n",
		"[1, 2].map({ $0 + 1 })\n",
		"[1, 2].map { number in\n    number + 1\n}\n",
		"[1, 2].map { (number: Int) -> Int in\n    number + 1\n}\n",
		"[1, 2].map { [weak self] number in\n    number + 1\n}\n",
		"let numbers = [1, 2].map { number in\n    number + 1\n}\n",
		"let isEmpty = [1, 2].isEmpty\n",
	},
	TriggeringExamples: []string{
		"[1, 2].map {\n    number in\n    number + 1\n}\n",
		"[1, 2].map {\n    (number: Int) -> Int in\n    number + 1\n}\n",
		"[1, 2].map {\n    [weak self] number in\n    number + 1\n}\n",
		"[1, 2].map { [weak self]\n    number in\n    number + 1\n}\n",
		"[1, 2].reduce(0) {\n    sum, number in\n    sum + number\n}\n",
	},
}

// ClosureParameterPositionRule flags closure parameter lists declared on
// the wrong line relative to the closure's opening brace, and can
// additionally require an empty line between the parameter list
// terminator and the closure body.
type ClosureParameterPositionRule struct {
	parametersOnNewLine bool
	emptyLineToBody     bool
	severity            types.Severity
}

// NewClosureParameterPositionRule returns the rule with its defaults:
// parameters belong on the brace's line, no empty-line requirement,
// warning severity.
func NewClosureParameterPositionRule() *ClosureParameterPositionRule {
	return &ClosureParameterPositionRule{
		parametersOnNewLine: false,
		emptyLineToBody:     false,
		severity:            types.SeverityWarning,
	}
}

// Description implements Rule.
func (r *ClosureParameterPositionRule) Description() types.RuleDescription {
	return closureParameterPositionDescription
}

// ApplyConfiguration accepts exactly the keys parameters_on_new_line
// (bool), empty_line_to_body (bool) and severity (string). Any other
// key, a mistyped value, or a payload that is not a non-empty mapping
// fails with ErrUnknownConfiguration and leaves the rule unchanged.
func (r *ClosureParameterPositionRule) ApplyConfiguration(config any) error {
	const ruleID = "closure_parameter_position"

	options, ok := config.(map[string]any)
	if !ok {
		return unknownConfiguration(ruleID, "expected a mapping, got %T", config)
	}
	if len(options) == 0 {
		return unknownConfiguration(ruleID, "mapping is empty")
	}

	parametersOnNewLine := r.parametersOnNewLine
	emptyLineToBody := r.emptyLineToBody
	severity := r.severity

	for key, value := range options {
		switch key {
		case "parameters_on_new_line":
			b, ok := value.(bool)
			if !ok {
				return unknownConfiguration(ruleID, "key %q expects a bool, got %T", key, value)
			}
			parametersOnNewLine = b
		case "empty_line_to_body":
			b, ok := value.(bool)
			if !ok {
				return unknownConfiguration(ruleID, "key %q expects a bool, got %T", key, value)
			}
			emptyLineToBody = b
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

	r.parametersOnNewLine = parametersOnNewLine
	r.emptyLineToBody = emptyLineToBody
	r.severity = severity
	return nil
}

// Check implements Rule. When the empty-line requirement is on, the
// whole-file terminator scan runs first; any violation it finds is
// reported exclusively and the per-call pass is skipped for this file.
func (r *ClosureParameterPositionRule) Check(file *syntax.File) []types.Violation {
	if r.emptyLineToBody {
		if violations := r.checkEmptyLineToBody(file); len(violations) > 0 {
			return violations
		}
	}

	var violations []types.Violation
	for _, call := range file.Calls {
		violations = append(violations, r.checkCall(file, call)...)
	}
	return violations
}

// checkCall walks one call's parameter list. The search window for the
// opening brace floats between the end of the callee name and the
// current parameter; it resets to the callee start when a nested
// closure's parameter arrives out of textual order.
func (r *ClosureParameterPositionRule) checkCall(file *syntax.File, call syntax.CallExpression) []types.Violation {
	if call.BodyLength == 0 || len(call.Parameters) == 0 {
		return nil
	}

	var violations []types.Violation
	rangeStart := call.NameOffset + call.NameLength

	for _, param := range call.Parameters {
		if param.Offset < rangeStart {
			rangeStart = call.NameOffset
		}
		rangeLength := param.Offset - rangeStart
		if rangeLength < 0 {
			continue
		}

		brace := lastOpeningBrace(file.Content, rangeStart, rangeLength)
		if brace < 0 {
			continue
		}

		braceLine := file.Index.LineOf(brace)
		paramLine, paramColumn := file.Index.PositionOf(param.Offset)

		if (r.parametersOnNewLine && braceLine == paramLine) ||
			(!r.parametersOnNewLine && braceLine != paramLine) {
			violations = append(violations, types.Violation{
				RuleID:   closureParameterPositionDescription.ID,
				RuleName: closureParameterPositionDescription.Name,
				Severity: r.severity,
				Location: types.Location{
					File:   file.Path,
					Offset: param.Offset,
					Line:   paramLine,
					Column: paramColumn,
				},
				Reason: r.positionReason(),
			})
		}

		rangeStart = param.Offset + len(param.Name)
	}
	return violations
}

func (r *ClosureParameterPositionRule) positionReason() string {
	if r.parametersOnNewLine {
		return "Closure parameters should be on a new line from the opening brace"
	}
	return "Closure parameters should be on the same line as opening brace"
}

// checkEmptyLineToBody scans the raw file text for parameter list
// terminators not followed by a blank line. The scan is purely textual:
// a terminator inside a string literal or comment is indistinguishable
// from a real one and is reported all the same.
func (r *ClosureParameterPositionRule) checkEmptyLineToBody(file *syntax.File) []types.Violation {
	var violations []types.Violation
	for _, match := range terminatorScan.FindAllIndex(file.Content, -1) {
		if match[1]-match[0] != len(closureParameterTerminator) {
			continue
		}
		offset := match[0] + len(closureParameterTerminator) + 1
		line, column := file.Index.PositionOf(offset)
		violations = append(violations, types.Violation{
			RuleID:   closureParameterPositionDescription.ID,
			RuleName: closureParameterPositionDescription.Name,
			Severity: r.severity,
			Location: types.Location{
				File:   file.Path,
				Offset: offset,
				Line:   line,
				Column: column,
			},
			Reason: "An empty line should follow the closure parameter list",
		})
	}
	return violations
}

package engine

import (
	"regexp"
	"strings"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// directivePattern recognizes swiftlint comment directives:
//
//	// swiftlint:disable rule_one rule_two
//	// swiftlint:disable:next rule_one
//	// swiftlint:enable all
//
// Detection is textual: a directive inside a string literal is honored
// all the same, matching the rest of the text-level scans in this tool.
var directivePattern = regexp.MustCompile(`swiftlint:(disable|enable)(:next|:this|:previous)?[ \t]+([^\n]+)`)

// allRules is the wildcard rule name in directives.
const allRules = "all"

// lineRange is an inclusive range of 1-based lines.
type lineRange struct {
	from, to int
}

// suppressions records, per rule ID (or the "all" wildcard), the line
// ranges where that rule is switched off.
type suppressions struct {
	ranges map[string][]lineRange
}

// parseDirectives scans a file once for disable/enable directives.
func parseDirectives(content []byte, index *types.LineIndex) *suppressions {
	s := &suppressions{ranges: make(map[string][]lineRange)}

	// open tracks rules currently disabled by a plain directive and
	// the line their disable began on.
	open := make(map[string]int)

	for _, match := range directivePattern.FindAllSubmatchIndex(content, -1) {
		action := string(content[match[2]:match[3]])
		modifier := ""
		if match[4] >= 0 {
			modifier = string(content[match[4]:match[5]])
		}
		names := strings.Fields(string(content[match[6]:match[7]]))
		line := index.LineOf(match[0])

		for _, name := range names {
			switch {
			case action == "enable":
				if from, ok := open[name]; ok {
					s.add(name, from, line)
					delete(open, name)
				}
			case modifier == ":next":
				s.add(name, line+1, line+1)
			case modifier == ":this":
				s.add(name, line, line)
			case modifier == ":previous":
				s.add(name, line-1, line-1)
			default:
				if _, ok := open[name]; !ok {
					open[name] = line
				}
			}
		}
	}

	// Unclosed disables run to end of file.
	lastLine := index.NumLines()
	for name, from := range open {
		s.add(name, from, lastLine)
	}

	return s
}

func (s *suppressions) add(rule string, from, to int) {
	s.ranges[rule] = append(s.ranges[rule], lineRange{from: from, to: to})
}

// disabled reports whether the rule is switched off on the given line,
// either by name or by the "all" wildcard.
func (s *suppressions) disabled(ruleID string, line int) bool {
	for _, name := range []string{ruleID, allRules} {
		for _, r := range s.ranges[name] {
			if line >= r.from && line <= r.to {
				return true
			}
		}
	}
	return false
}

// filter drops every violation falling inside a suppression.
func (s *suppressions) filter(violations []types.Violation) []types.Violation {
	if len(s.ranges) == 0 {
		return violations
	}
	kept := violations[:0]
	for _, v := range violations {
		if !s.disabled(v.RuleID, v.Location.Line) {
			kept = append(kept, v)
		}
	}
	return kept
}

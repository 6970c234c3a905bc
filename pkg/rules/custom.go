package rules

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// matchTimeout bounds a single regex evaluation so a backtracking
// pattern cannot hang the lint run.
const matchTimeout = 5 * time.Second

// CustomRuleDefinition is a user-defined regex rule as declared in the
// configuration file.
type CustomRuleDefinition struct {
	ID       string
	Name     string
	Regex    string
	Message  string
	Severity types.Severity
	Keywords []string
}

// CustomRule flags every match of a user-supplied pattern. Patterns
// compile in RE2 mode when possible (no backtracking); Perl-only
// constructs such as lookaheads fall back to the default engine with a
// match timeout.
type CustomRule struct {
	description types.RuleDescription
	re          *regexp2.Regexp
	message     string
	severity    types.Severity
	keywords    []string
}

// NewCustomRule compiles one definition. Compile failures surface here,
// before any file is read.
func NewCustomRule(def CustomRuleDefinition) (*CustomRule, error) {
	if def.ID == "" {
		return nil, fmt.Errorf("custom rule has no identifier")
	}
	if def.Regex == "" {
		return nil, fmt.Errorf("custom rule %q has no regex", def.ID)
	}

	re, err := regexp2.Compile(def.Regex, regexp2.RE2|regexp2.Multiline)
	if err != nil {
		re, err = regexp2.Compile(def.Regex, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q for custom rule %s: %w", def.Regex, def.ID, err)
		}
	}
	re.MatchTimeout = matchTimeout

	name := def.Name
	if name == "" {
		name = def.ID
	}
	message := def.Message
	if message == "" {
		message = fmt.Sprintf("%s violated", name)
	}
	severity := def.Severity
	if severity == "" {
		severity = types.SeverityWarning
	}

	return &CustomRule{
		description: types.RuleDescription{
			ID:          def.ID,
			Name:        name,
			Description: message,
			Kind:        types.KindLint,
		},
		re:       re,
		message:  message,
		severity: severity,
		keywords: def.Keywords,
	}, nil
}

// Description implements Rule.
func (r *CustomRule) Description() types.RuleDescription {
	return r.description
}

// Keywords returns the literal strings that must appear in a file for
// this rule to possibly match. An empty list means the rule always runs.
func (r *CustomRule) Keywords() []string {
	return r.keywords
}

// Check implements Rule. regexp2 reports match positions in runes, so
// positions are remapped to byte offsets before they meet the rest of
// the location model. A match error (timeout) ends the scan early with
// the violations found so far.
func (r *CustomRule) Check(file *syntax.File) []types.Violation {
	content := string(file.Content)
	byteOf := runeByteOffsets(file.Content)

	var violations []types.Violation
	match, err := r.re.FindStringMatch(content)
	for match != nil && err == nil {
		offset := match.Index
		if byteOf != nil {
			offset = byteOf[match.Index]
		}
		line, column := file.Index.PositionOf(offset)
		violations = append(violations, types.Violation{
			RuleID:   r.description.ID,
			RuleName: r.description.Name,
			Severity: r.severity,
			Location: types.Location{
				File:   file.Path,
				Offset: offset,
				Line:   line,
				Column: column,
			},
			Reason: r.message,
		})
		match, err = r.re.FindNextMatch(match)
	}
	return violations
}

// runeByteOffsets returns the byte offset of each rune index, or nil
// for pure ASCII content where the two are identical.
func runeByteOffsets(content []byte) []int {
	if len(content) == utf8.RuneCount(content) {
		return nil
	}
	offsets := make([]int, 0, utf8.RuneCount(content)+1)
	for i := range string(content) {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(content))
	return offsets
}

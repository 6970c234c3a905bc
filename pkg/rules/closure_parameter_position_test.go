package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

func TestClosureParameterPositionParameterOnOwnLine(t *testing.T) {
	file := parseFile(t, "[1, 2].map {\n number in\n number + 1 \n}\n")

	rule := NewClosureParameterPositionRule()
	violations := rule.Check(file)

	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, "closure_parameter_position", v.RuleID)
	assert.Equal(t, types.SeverityWarning, v.Severity)
	assert.Equal(t, 14, v.Location.Offset)
	assert.Equal(t, 2, v.Location.Line)
	assert.Equal(t, 2, v.Location.Column)
}

func TestClosureParameterPositionParameterOnBraceLine(t *testing.T) {
	file := parseFile(t, "[1, 2].map { number in\n number + 1 \n}\n")

	rule := NewClosureParameterPositionRule()
	assert.Empty(t, rule.Check(file))
}

func TestClosureParameterPositionPolicyInversion(t *testing.T) {
	sameLine := parseFile(t, "[1, 2].map { number in\n number + 1 \n}\n")
	ownLine := parseFile(t, "[1, 2].map {\n number in\n number + 1 \n}\n")

	rule := NewClosureParameterPositionRule()
	require.NoError(t, rule.ApplyConfiguration(map[string]any{"parameters_on_new_line": true}))

	// With the inverted policy the previously clean input is flagged at
	// the parameter's offset, and the previously flagged one is clean.
	violations := rule.Check(sameLine)
	require.Len(t, violations, 1)
	assert.Equal(t, 13, violations[0].Location.Offset)

	assert.Empty(t, rule.Check(ownLine))
}

func TestClosureParameterPositionSkipsCallsWithoutBody(t *testing.T) {
	content := []byte("f() { a in }")
	file := &syntax.File{
		Path:    "test.swift",
		Content: content,
		Index:   types.NewLineIndex(content),
		Calls: []syntax.CallExpression{
			{
				NameOffset: 0,
				NameLength: 1,
				BodyLength: 0,
				Parameters: []syntax.ClosureParameter{{Offset: 6, Name: "a"}},
			},
		},
	}

	rule := NewClosureParameterPositionRule()
	assert.Empty(t, rule.Check(file))
}

func TestClosureParameterPositionOutOfOrderParameterResetsFloor(t *testing.T) {
	// Both parameters report offset 7, so after the first one advances
	// the search floor past itself, the second arrives before the floor
	// and must restart the brace search from the callee's offset.
	content := []byte("f() {\n a in }")
	file := &syntax.File{
		Path:    "test.swift",
		Content: content,
		Index:   types.NewLineIndex(content),
		Calls: []syntax.CallExpression{
			{
				NameOffset: 0,
				NameLength: 1,
				BodyLength: 7,
				Parameters: []syntax.ClosureParameter{
					{Offset: 7, Name: "a"},
					{Offset: 7, Name: "a"},
				},
			},
		},
	}

	rule := NewClosureParameterPositionRule()
	violations := rule.Check(file)

	require.Len(t, violations, 2)
	for _, v := range violations {
		assert.Equal(t, 7, v.Location.Offset)
		assert.Equal(t, 2, v.Location.Line)
	}
}

func TestClosureParameterPositionSkipsParameterWithoutBraceInRange(t *testing.T) {
	content := []byte("f(a in)")
	file := &syntax.File{
		Path:    "test.swift",
		Content: content,
		Index:   types.NewLineIndex(content),
		Calls: []syntax.CallExpression{
			{
				NameOffset: 0,
				NameLength: 1,
				BodyLength: 5,
				Parameters: []syntax.ClosureParameter{{Offset: 2, Name: "a"}},
			},
		},
	}

	rule := NewClosureParameterPositionRule()
	assert.Empty(t, rule.Check(file))
}

func TestClosureParameterPositionMultipleParametersSearchWindow(t *testing.T) {
	// The brace sits before the first parameter only; once the window
	// advances past "sum" there is no brace left for "number", which is
	// skipped rather than reported twice.
	file := parseFile(t, "[1, 2].reduce(0) {\n    sum, number in\n    sum + number\n}\n")

	rule := NewClosureParameterPositionRule()
	violations := rule.Check(file)

	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].Location.Line)
}

func TestClosureParameterPositionEmptyLineToBody(t *testing.T) {
	rule := NewClosureParameterPositionRule()
	require.NoError(t, rule.ApplyConfiguration(map[string]any{"empty_line_to_body": true}))

	t.Run("terminator followed directly by content", func(t *testing.T) {
		file := parseFile(t, "numbers.forEach { number in\n    print(number)\n}\n")
		violations := rule.Check(file)

		require.Len(t, violations, 1)
		v := violations[0]
		// One character past the terminator and its length: "in" starts
		// at byte 25, so the violation lands at byte 28.
		assert.Equal(t, 28, v.Location.Offset)
		assert.Equal(t, "An empty line should follow the closure parameter list", v.Reason)
	})

	t.Run("terminator followed by a blank line", func(t *testing.T) {
		file := parseFile(t, "numbers.forEach { number in\n\n    print(number)\n}\n")
		assert.Empty(t, rule.Check(file))
	})

	t.Run("terminator at end of file", func(t *testing.T) {
		file := parseFile(t, "let label = number in")
		violations := rule.Check(file)
		require.Len(t, violations, 1)
	})

	t.Run("blank line violations suppress the position pass", func(t *testing.T) {
		file := parseFile(t, "numbers.forEach {\n    number in\n    print(number)\n}\n")
		violations := rule.Check(file)

		require.NotEmpty(t, violations)
		for _, v := range violations {
			assert.Equal(t, "An empty line should follow the closure parameter list", v.Reason)
		}
	})

	t.Run("terminator inside a word does not match", func(t *testing.T) {
		file := parseFile(t, "let string = \"printing\"\n")
		assert.Empty(t, rule.Check(file))
	})
}

func TestClosureParameterPositionApplyConfiguration(t *testing.T) {
	t.Run("wrong value type fails", func(t *testing.T) {
		rule := NewClosureParameterPositionRule()
		err := rule.ApplyConfiguration(map[string]any{"parameters_on_new_line": "yes"})
		assert.ErrorIs(t, err, ErrUnknownConfiguration)
	})

	t.Run("unknown key fails", func(t *testing.T) {
		rule := NewClosureParameterPositionRule()
		err := rule.ApplyConfiguration(map[string]any{"parameter_position": true})
		assert.ErrorIs(t, err, ErrUnknownConfiguration)
	})

	t.Run("empty mapping fails", func(t *testing.T) {
		rule := NewClosureParameterPositionRule()
		err := rule.ApplyConfiguration(map[string]any{})
		assert.ErrorIs(t, err, ErrUnknownConfiguration)
	})

	t.Run("non-mapping payload fails", func(t *testing.T) {
		rule := NewClosureParameterPositionRule()
		err := rule.ApplyConfiguration("warning")
		assert.ErrorIs(t, err, ErrUnknownConfiguration)
	})

	t.Run("failed apply leaves previous settings intact", func(t *testing.T) {
		rule := NewClosureParameterPositionRule()
		err := rule.ApplyConfiguration(map[string]any{
			"parameters_on_new_line": true,
			"bogus":                  1,
		})
		require.ErrorIs(t, err, ErrUnknownConfiguration)

		// Still the default same-line policy: a same-line parameter
		// stays clean, so the rejected key flipped nothing.
		file := parseFile(t, "[1, 2].map { number in\n number + 1 \n}\n")
		assert.Empty(t, rule.Check(file))
	})

	t.Run("severity is applied to violations", func(t *testing.T) {
		rule := NewClosureParameterPositionRule()
		require.NoError(t, rule.ApplyConfiguration(map[string]any{"severity": "error"}))

		file := parseFile(t, "[1, 2].map {\n number in\n number + 1 \n}\n")
		violations := rule.Check(file)
		require.Len(t, violations, 1)
		assert.Equal(t, types.SeverityError, violations[0].Severity)
	})

	t.Run("round-trip keeps the last applied values", func(t *testing.T) {
		rule := NewClosureParameterPositionRule()
		require.NoError(t, rule.ApplyConfiguration(map[string]any{"parameters_on_new_line": true}))
		require.NoError(t, rule.ApplyConfiguration(map[string]any{"parameters_on_new_line": false}))

		file := parseFile(t, "[1, 2].map { number in\n number + 1 \n}\n")
		assert.Empty(t, rule.Check(file))
	})
}

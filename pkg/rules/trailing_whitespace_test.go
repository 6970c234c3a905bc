package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingWhitespace(t *testing.T) {
	rule := NewTrailingWhitespaceRule()

	t.Run("clean lines", func(t *testing.T) {
		file := parseFile(t, "let a = 1\nlet b = 2\n")
		assert.Empty(t, rule.Check(file))
	})

	t.Run("trailing space", func(t *testing.T) {
		file := parseFile(t, "let x = 1 \n")
		violations := rule.Check(file)
		require.Len(t, violations, 1)
		assert.Equal(t, 9, violations[0].Location.Offset)
		assert.Equal(t, 1, violations[0].Location.Line)
		assert.Equal(t, 10, violations[0].Location.Column)
	})

	t.Run("trailing tab", func(t *testing.T) {
		file := parseFile(t, "let x = 1\t\n")
		require.Len(t, rule.Check(file), 1)
	})

	t.Run("reports each offending line", func(t *testing.T) {
		file := parseFile(t, "let a = 1 \nlet b = 2\nlet c = 3\t\n")
		violations := rule.Check(file)
		require.Len(t, violations, 2)
		assert.Equal(t, 1, violations[0].Location.Line)
		assert.Equal(t, 3, violations[1].Location.Line)
	})
}

func TestTrailingWhitespaceEmptyLines(t *testing.T) {
	source := "let a = 1\n   \nlet b = 2\n"

	t.Run("whitespace-only line flagged by default", func(t *testing.T) {
		rule := NewTrailingWhitespaceRule()
		violations := rule.Check(parseFile(t, source))
		require.Len(t, violations, 1)
		assert.Equal(t, 2, violations[0].Location.Line)
	})

	t.Run("ignores_empty_lines skips it", func(t *testing.T) {
		rule := NewTrailingWhitespaceRule()
		require.NoError(t, rule.ApplyConfiguration(map[string]any{"ignores_empty_lines": true}))
		assert.Empty(t, rule.Check(parseFile(t, source)))
	})
}

func TestTrailingWhitespaceConfiguration(t *testing.T) {
	rule := NewTrailingWhitespaceRule()
	assert.ErrorIs(t, rule.ApplyConfiguration(map[string]any{"ignores_empty_lines": "yes"}), ErrUnknownConfiguration)
	assert.ErrorIs(t, rule.ApplyConfiguration(map[string]any{"trim": true}), ErrUnknownConfiguration)
	assert.ErrorIs(t, rule.ApplyConfiguration(42), ErrUnknownConfiguration)
	assert.ErrorIs(t, rule.ApplyConfiguration(map[string]any{"severity": "fatal"}), ErrUnknownConfiguration)

	require.NoError(t, rule.ApplyConfiguration(map[string]any{"severity": "error"}))
	violations := rule.Check(parseFile(t, "let x = 1 \n"))
	require.Len(t, violations, 1)
	assert.True(t, violations[0].Severity.IsSerious())
}

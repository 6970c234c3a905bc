package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdonduk/SwiftLint/pkg/cache"
	"github.com/alexdonduk/SwiftLint/pkg/config"
	"github.com/alexdonduk/SwiftLint/pkg/rules"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

func newEngine(t *testing.T, cfg *config.Configuration) *Engine {
	t.Helper()
	e, err := New(Options{Config: cfg})
	require.NoError(t, err)
	return e
}

func lint(t *testing.T, e *Engine, source string) []types.Violation {
	t.Helper()
	violations, err := e.LintContent(context.Background(), "test.swift", []byte(source))
	require.NoError(t, err)
	return violations
}

func TestLintContentRunsBuiltinRules(t *testing.T) {
	e := newEngine(t, nil)

	violations := lint(t, e, "let x = 1 \nlet y = 2\n")

	require.Len(t, violations, 1)
	assert.Equal(t, "trailing_whitespace", violations[0].RuleID)
	assert.Equal(t, "test.swift", violations[0].Location.File)
	assert.Equal(t, 1, violations[0].Location.Line)
}

func TestLintContentOrdersByOffset(t *testing.T) {
	e := newEngine(t, nil)

	// Trailing whitespace on line 1 and a closure parameter on the
	// wrong line further down.
	violations := lint(t, e, "let a = 1 \n[1, 2].map {\n    number in\n    number + 1\n}\n")

	require.Len(t, violations, 2)
	assert.Equal(t, "trailing_whitespace", violations[0].RuleID)
	assert.Equal(t, "closure_parameter_position", violations[1].RuleID)
	assert.Less(t, violations[0].Location.Offset, violations[1].Location.Offset)
}

func TestDisabledRulesAreSkipped(t *testing.T) {
	e := newEngine(t, &config.Configuration{DisabledRules: []string{"trailing_whitespace"}})

	violations := lint(t, e, "let x = 1 \n")
	assert.Empty(t, violations)
}

func TestRuleConfigurationIsApplied(t *testing.T) {
	e := newEngine(t, &config.Configuration{
		RuleConfigurations: map[string]any{
			"closure_parameter_position": map[string]any{"parameters_on_new_line": true},
		},
	})

	// Parameter on the brace's line now violates the inverted policy.
	violations := lint(t, e, "[1, 2].map { number in\n    number + 1\n}\n")
	require.Len(t, violations, 1)
	assert.Equal(t, "closure_parameter_position", violations[0].RuleID)
}

func TestScalarRuleConfigurationIsApplied(t *testing.T) {
	cfg, err := config.Parse([]byte("line_length: 20\n"))
	require.NoError(t, err)
	e := newEngine(t, cfg)

	violations := lint(t, e, "let veryLongName = \"xxxxxxxxxx\"\n")
	require.Len(t, violations, 1)
	assert.Equal(t, "line_length", violations[0].RuleID)
}

func TestRejectedRuleConfigurationFailsConstruction(t *testing.T) {
	_, err := New(Options{Config: &config.Configuration{
		RuleConfigurations: map[string]any{
			"closure_parameter_position": map[string]any{"parameters_on_new_line": "yes"},
		},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrUnknownConfiguration)
}

func TestCustomRulesRunThroughPrefilter(t *testing.T) {
	e := newEngine(t, &config.Configuration{
		CustomRules: []rules.CustomRuleDefinition{
			{
				ID:       "no_print",
				Name:     "No Print",
				Regex:    `print\(`,
				Message:  "Use a logger instead of print.",
				Severity: types.SeverityError,
				Keywords: []string{"print"},
			},
		},
	})

	violations := lint(t, e, "print(\"hello\")\n")
	require.Len(t, violations, 1)
	assert.Equal(t, "no_print", violations[0].RuleID)
	assert.Equal(t, types.SeverityError, violations[0].Severity)

	assert.Empty(t, lint(t, e, "logger.info(\"hello\")\n"))
}

func TestInvalidCustomRegexFailsConstruction(t *testing.T) {
	_, err := New(Options{Config: &config.Configuration{
		CustomRules: []rules.CustomRuleDefinition{
			{ID: "broken", Regex: `(`},
		},
	}})
	assert.Error(t, err)
}

func TestLintCachedReplaysAndInvalidates(t *testing.T) {
	mem := cache.NewMemory()
	cfg := &config.Configuration{}
	e, err := New(Options{Config: cfg, Cache: mem, Version: "1.0"})
	require.NoError(t, err)

	content := []byte("let x = 1 \n")

	first, err := e.lintCached(context.Background(), "a.swift", content)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same content under a new path replays from cache with the new
	// path attached.
	second, err := e.lintCached(context.Background(), "b.swift", content)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "b.swift", second[0].Location.File)
	assert.Equal(t, first[0].Location.Offset, second[0].Location.Offset)

	// A version bump changes the fingerprint, so the old entry is not
	// replayed.
	upgraded, err := New(Options{Config: cfg, Cache: mem, Version: "2.0"})
	require.NoError(t, err)
	assert.NotEqual(t, e.fingerprint, upgraded.fingerprint)
}

func TestLintPathsOrdersAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.swift"), []byte("let b = 1 \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.swift"), []byte("let a = 1 \nlet aa = 2 \n"), 0o644))

	e := newEngine(t, nil)
	violations, err := e.LintPaths(context.Background(), []string{dir})
	require.NoError(t, err)

	require.Len(t, violations, 3)
	assert.Contains(t, violations[0].Location.File, "a.swift")
	assert.Contains(t, violations[1].Location.File, "a.swift")
	assert.Contains(t, violations[2].Location.File, "b.swift")
	assert.Less(t, violations[0].Location.Offset, violations[1].Location.Offset)
}

func TestLintPathsRespectsExcludedGlobs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Generated"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.swift"), []byte("let a = 1 \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Generated", "gen.swift"), []byte("let b = 2 \n"), 0o644))

	e := newEngine(t, &config.Configuration{Excluded: []string{"Generated/**"}})
	violations, err := e.LintPaths(context.Background(), []string{dir})
	require.NoError(t, err)

	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Location.File, "main.swift")
}

func TestSummarize(t *testing.T) {
	s := Summarize([]types.Violation{
		{Severity: types.SeverityWarning, Location: types.Location{File: "a.swift"}},
		{Severity: types.SeverityError, Location: types.Location{File: "a.swift"}},
		{Severity: types.SeverityError, Location: types.Location{File: "b.swift"}},
	})
	assert.Equal(t, Summary{Violations: 3, Serious: 2, Files: 2}, s)

	assert.Equal(t, Summary{}, Summarize(nil))
}

// Package engine runs a configured rule set over Swift files. It wires
// together parsing, the builtin and custom rules, disable directives,
// the keyword prefilter and the incremental cache.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexdonduk/SwiftLint/pkg/cache"
	"github.com/alexdonduk/SwiftLint/pkg/config"
	"github.com/alexdonduk/SwiftLint/pkg/enum"
	"github.com/alexdonduk/SwiftLint/pkg/prefilter"
	"github.com/alexdonduk/SwiftLint/pkg/rules"
	"github.com/alexdonduk/SwiftLint/pkg/syntax"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// Options configure an Engine.
type Options struct {
	// Config is the resolved lint configuration. Required.
	Config *config.Configuration

	// Cache replays results for unchanged files. Nil disables caching.
	Cache cache.Cache

	// Version participates in the cache fingerprint so a tool upgrade
	// invalidates cached results.
	Version string

	// IncludeHidden and MaxFileSize are forwarded to file enumeration.
	IncludeHidden bool
	MaxFileSize   int64
}

// Engine holds the compiled rule set for one lint run. An Engine is
// safe for concurrent use: rules are configured once at construction
// and only read afterwards, and each worker parses with its own parser.
type Engine struct {
	config      *config.Configuration
	rules       []rules.Rule
	customRules []*rules.CustomRule
	prefilter   *prefilter.Prefilter
	cache       cache.Cache
	fingerprint string
	options     Options
}

// New builds an engine from the configuration: fresh builtin rule
// instances minus the disabled ones, each configured rule's options
// applied (any rejected payload fails construction), and the custom
// rules compiled behind their keyword prefilter.
func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	var active []rules.Rule
	for _, rule := range rules.NewBuiltinRules() {
		id := rule.Description().ID
		if !cfg.RuleEnabled(id) {
			continue
		}
		if options, ok := cfg.RuleConfigurations[id]; ok {
			configurable, ok := rule.(rules.ConfigurableRule)
			if !ok {
				return nil, fmt.Errorf("rule %q does not accept configuration", id)
			}
			if err := configurable.ApplyConfiguration(options); err != nil {
				return nil, err
			}
		}
		active = append(active, rule)
	}

	var custom []*rules.CustomRule
	for _, def := range cfg.CustomRules {
		rule, err := rules.NewCustomRule(def)
		if err != nil {
			return nil, err
		}
		custom = append(custom, rule)
	}

	return &Engine{
		config:      cfg,
		rules:       active,
		customRules: custom,
		prefilter:   prefilter.New(custom),
		cache:       opts.Cache,
		fingerprint: cfg.Fingerprint(opts.Version),
		options:     opts,
	}, nil
}

// Rules returns the active builtin rules, in registry order.
func (e *Engine) Rules() []rules.Rule {
	return e.rules
}

// LintContent lints one file's content. The path is only used for
// reporting; no I/O happens here.
func (e *Engine) LintContent(ctx context.Context, path string, content []byte) ([]types.Violation, error) {
	parser := syntax.NewParser()
	defer parser.Close()
	return e.lintWithParser(ctx, parser, path, content)
}

// lintWithParser is the per-file pipeline: parse, run every applicable
// rule, drop violations suppressed by disable directives, sort by
// offset and dedupe.
func (e *Engine) lintWithParser(ctx context.Context, parser *syntax.Parser, path string, content []byte) ([]types.Violation, error) {
	file, err := parser.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}

	var violations []types.Violation
	for _, rule := range e.rules {
		violations = append(violations, rule.Check(file)...)
	}
	for _, rule := range e.prefilter.Filter(content) {
		violations = append(violations, rule.Check(file)...)
	}

	regions := parseDirectives(content, file.Index)
	violations = regions.filter(violations)

	types.SortViolations(violations)
	return dedupe(violations), nil
}

// LintPaths lints every Swift file under the given roots concurrently
// and returns all violations ordered by (file, offset, rule).
func (e *Engine) LintPaths(ctx context.Context, paths []string) ([]types.Violation, error) {
	var mu sync.Mutex
	var all []types.Violation

	for _, root := range paths {
		source := enum.NewFilesystemSource(enum.Config{
			Root:          root,
			IncludeHidden: e.options.IncludeHidden,
			MaxFileSize:   e.options.MaxFileSize,
			Select:        e.config.Selects,
		})

		err := source.Enumerate(ctx, func(path string, content []byte) error {
			violations, err := e.lintCached(ctx, path, content)
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, violations...)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	types.SortViolations(all)
	return all, nil
}

// lintCached consults the cache before linting. Cached entries store
// locations without a file path, so an unchanged file replays its
// violations under whatever path it has now.
func (e *Engine) lintCached(ctx context.Context, path string, content []byte) ([]types.Violation, error) {
	if e.cache == nil {
		return e.LintContent(ctx, path, content)
	}

	blob := types.ComputeBlobID(content)
	if cached, ok, err := e.cache.Get(blob, e.fingerprint); err != nil {
		return nil, fmt.Errorf("reading lint cache: %w", err)
	} else if ok {
		for i := range cached {
			cached[i].Location.File = path
		}
		return cached, nil
	}

	violations, err := e.LintContent(ctx, path, content)
	if err != nil {
		return nil, err
	}

	stored := make([]types.Violation, len(violations))
	copy(stored, violations)
	for i := range stored {
		stored[i].Location.File = ""
	}
	if err := e.cache.Put(blob, e.fingerprint, stored); err != nil {
		return nil, fmt.Errorf("writing lint cache: %w", err)
	}
	return violations, nil
}

// dedupe removes violations identical in rule, offset and reason.
// Distinct rules at the same offset survive. Input must be sorted.
func dedupe(violations []types.Violation) []types.Violation {
	if len(violations) < 2 {
		return violations
	}
	out := violations[:1]
	for _, v := range violations[1:] {
		last := out[len(out)-1]
		if v.RuleID == last.RuleID && v.Location == last.Location && v.Reason == last.Reason {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Summary aggregates a violation list the way the CLI reports it.
type Summary struct {
	Violations int
	Serious    int
	Files      int
}

// Summarize counts violations, error-severity violations and distinct
// files.
func Summarize(violations []types.Violation) Summary {
	files := make(map[string]struct{})
	s := Summary{Violations: len(violations)}
	for _, v := range violations {
		files[v.Location.File] = struct{}{}
		if v.Severity.IsSerious() {
			s.Serious++
		}
	}
	s.Files = len(files)
	return s
}

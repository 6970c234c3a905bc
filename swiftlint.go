// Package swiftlint provides a configurable Swift style linter.
//
// The flagship check is the closure parameter position rule, which
// flags closure parameter lists declared on the wrong source line
// relative to the closure's opening brace; a set of text-level style
// rules and user-defined regex rules run alongside it.
//
// # Basic Usage
//
// Create a linter and lint source content:
//
//	linter, err := swiftlint.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer linter.Close()
//
//	violations, err := linter.LintString("[1, 2].map {\n    number in\n    number + 1\n}\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, v := range violations {
//	    fmt.Printf("%s: %s\n", v.Location, v.Reason)
//	}
//
// # With Configuration
//
// Configuration follows the .swiftlint.yml format:
//
//	linter, err := swiftlint.New(swiftlint.WithConfigFile(".swiftlint.yml"))
package swiftlint

import (
	"context"
	"fmt"
	"os"

	"github.com/alexdonduk/SwiftLint/pkg/cache"
	"github.com/alexdonduk/SwiftLint/pkg/config"
	"github.com/alexdonduk/SwiftLint/pkg/engine"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/alexdonduk/SwiftLint" without
// subpackages.
type (
	// Violation is a single style infraction with its source position.
	Violation = types.Violation

	// Severity is the reporting level of a violation.
	Severity = types.Severity

	// Location is a point in a source file.
	Location = types.Location

	// RuleDescription is the static identity record of a rule.
	RuleDescription = types.RuleDescription

	// Configuration is the resolved lint configuration.
	Configuration = config.Configuration
)

// Re-export severity constants.
const (
	SeverityWarning = types.SeverityWarning
	SeverityError   = types.SeverityError
)

// Linter lints Swift source against a configured rule set.
type Linter struct {
	engine *engine.Engine
	cache  cache.Cache
	config *config.Configuration
}

// linterConfig holds construction options.
type linterConfig struct {
	configuration *config.Configuration
	configFile    string
	cache         cache.Cache
	cachePath     string
}

// Option configures a Linter.
type Option func(*linterConfig)

// WithConfiguration uses an already-built configuration instead of the
// implementation defaults.
func WithConfiguration(cfg *Configuration) Option {
	return func(c *linterConfig) {
		c.configuration = cfg
	}
}

// WithConfigFile loads the configuration from a .swiftlint.yml file.
func WithConfigFile(path string) Option {
	return func(c *linterConfig) {
		c.configFile = path
	}
}

// WithCache uses the given cache for incremental linting.
func WithCache(lintCache cache.Cache) Option {
	return func(c *linterConfig) {
		c.cache = lintCache
	}
}

// WithCachePath opens (creating if necessary) an on-disk cache at the
// given path. The Linter owns the cache and closes it in Close.
func WithCachePath(path string) Option {
	return func(c *linterConfig) {
		c.cachePath = path
	}
}

// New creates a Linter.
//
// By default the linter:
//   - runs every builtin rule at its implementation defaults,
//   - has no custom rules,
//   - does not cache results.
func New(opts ...Option) (*Linter, error) {
	var lc linterConfig
	for _, opt := range opts {
		opt(&lc)
	}

	cfg := lc.configuration
	if cfg == nil && lc.configFile != "" {
		loaded, err := config.Load(lc.configFile, "")
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cfg == nil {
		cfg = config.Default()
	}

	lintCache := lc.cache
	ownsCache := false
	if lintCache == nil && lc.cachePath != "" {
		opened, err := cache.New(cache.Config{Path: lc.cachePath})
		if err != nil {
			return nil, fmt.Errorf("opening lint cache: %w", err)
		}
		lintCache = opened
		ownsCache = true
	}

	eng, err := engine.New(engine.Options{
		Config: cfg,
		Cache:  lintCache,
	})
	if err != nil {
		if ownsCache {
			lintCache.Close()
		}
		return nil, err
	}

	linter := &Linter{
		engine: eng,
		config: cfg,
	}
	if ownsCache {
		linter.cache = lintCache
	}
	return linter, nil
}

// LintString lints source content under the placeholder path
// "<string>".
func (l *Linter) LintString(content string) ([]Violation, error) {
	return l.LintBytes([]byte(content), "<string>")
}

// LintBytes lints raw source content under the given path. The path is
// only used in reported locations; no file is read.
func (l *Linter) LintBytes(content []byte, path string) ([]Violation, error) {
	return l.engine.LintContent(context.Background(), path, content)
}

// LintFile reads and lints a single file.
func (l *Linter) LintFile(path string) ([]Violation, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return l.LintBytes(content, path)
}

// LintPaths lints every Swift file under the given roots, honoring the
// configuration's included/excluded patterns, and returns violations
// ordered by (file, offset).
func (l *Linter) LintPaths(ctx context.Context, paths ...string) ([]Violation, error) {
	return l.engine.LintPaths(ctx, paths)
}

// Rules returns the descriptions of the active rules.
func (l *Linter) Rules() []RuleDescription {
	descriptions := make([]RuleDescription, 0, len(l.engine.Rules()))
	for _, rule := range l.engine.Rules() {
		descriptions = append(descriptions, rule.Description())
	}
	return descriptions
}

// Configuration returns the linter's resolved configuration.
func (l *Linter) Configuration() *Configuration {
	return l.config
}

// Close releases resources the linter owns (currently only a cache
// opened through WithCachePath).
func (l *Linter) Close() error {
	if l.cache != nil {
		return l.cache.Close()
	}
	return nil
}

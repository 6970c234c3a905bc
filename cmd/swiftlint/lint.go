package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexdonduk/SwiftLint/pkg/cache"
	"github.com/alexdonduk/SwiftLint/pkg/config"
	"github.com/alexdonduk/SwiftLint/pkg/engine"
	"github.com/alexdonduk/SwiftLint/pkg/report"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

var (
	lintConfigPath    string
	lintReporterName  string
	lintStrict        bool
	lintNoCache       bool
	lintCachePath     string
	lintColor         string
	lintIncludeHidden bool
	lintMaxFileSize   int64
)

// errViolationsFound signals the run-failing exit code after the
// reporter has already written the violations.
var errViolationsFound = errors.New("violations found")

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint Swift source files",
	Long:  "Lint the Swift files under the given paths (default: current directory) and print every violation",
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().StringVar(&lintConfigPath, "config", "", "Path to a .swiftlint.yml file (default: discovered in the lint root)")
	lintCmd.Flags().StringVar(&lintReporterName, "reporter", "", "Output format: xcode, json, emoji, sarif (overrides config)")
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "Fail the run on any violation, not just errors")
	lintCmd.Flags().BoolVar(&lintNoCache, "no-cache", false, "Ignore the incremental lint cache")
	lintCmd.Flags().StringVar(&lintCachePath, "cache-path", "", "Path to the lint cache database (overrides config)")
	lintCmd.Flags().StringVar(&lintColor, "color", "auto", "Color output: auto, always, never")
	lintCmd.Flags().BoolVar(&lintIncludeHidden, "include-hidden", false, "Lint hidden files and directories")
	lintCmd.Flags().Int64Var(&lintMaxFileSize, "max-file-size", 0, "Maximum file size to lint in bytes (0 = no limit)")
}

func runLint(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := config.Load(lintConfigPath, configRoot(paths[0]))
	if err != nil {
		return err
	}
	if lintStrict {
		cfg.Strict = true
	}

	lintCache, err := openCache(cfg)
	if err != nil {
		return err
	}
	if lintCache != nil {
		defer lintCache.Close()
	}

	eng, err := engine.New(engine.Options{
		Config:        cfg,
		Cache:         lintCache,
		Version:       version,
		IncludeHidden: lintIncludeHidden,
		MaxFileSize:   lintMaxFileSize,
	})
	if err != nil {
		return err
	}

	// Context is only set when cobra executes the command; direct
	// callers (tests) leave it nil.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	violations, err := eng.LintPaths(ctx, paths)
	if err != nil {
		return fmt.Errorf("linting: %w", err)
	}

	reporterName := cfg.Reporter
	if lintReporterName != "" {
		reporterName = lintReporterName
	}
	reporter, err := report.New(reporterName, report.Options{
		Rules:   ruleDescriptions(eng),
		Version: version,
	})
	if err != nil {
		return err
	}
	if err := reporter.Report(cmd.OutOrStdout(), violations); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	summary := engine.Summarize(violations)
	if !quiet {
		printSummary(cmd, summary)
	}

	if summary.Serious > 0 || (cfg.Strict && summary.Violations > 0) {
		return errViolationsFound
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// configRoot returns the directory to discover .swiftlint.yml in: the
// path itself when it is a directory, otherwise its parent.
func configRoot(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// openCache resolves the cache location. The --cache-path flag beats
// the config; --no-cache beats everything; no configured path at all
// means no cache.
func openCache(cfg *config.Configuration) (cache.Cache, error) {
	if lintNoCache {
		return nil, nil
	}
	path := cfg.CachePath
	if lintCachePath != "" {
		path = lintCachePath
	}
	if path == "" {
		return nil, nil
	}
	c, err := cache.New(cache.Config{Path: path})
	if err != nil {
		return nil, fmt.Errorf("opening lint cache: %w", err)
	}
	return c, nil
}

func ruleDescriptions(eng *engine.Engine) []types.RuleDescription {
	descriptions := make([]types.RuleDescription, 0, len(eng.Rules()))
	for _, rule := range eng.Rules() {
		descriptions = append(descriptions, rule.Description())
	}
	return descriptions
}

// summaryStyles holds the color formatters for the closing summary.
type summaryStyles struct {
	done    *color.Color
	serious *color.Color
}

// newSummaryStyles creates the formatters, disabled when color is off.
func newSummaryStyles(enabled bool) *summaryStyles {
	s := &summaryStyles{
		done:    color.New(color.Bold, color.FgHiGreen),
		serious: color.New(color.Bold, color.FgHiRed),
	}
	if !enabled {
		s.done.DisableColor()
		s.serious.DisableColor()
	}
	return s
}

// printSummary writes the closing line to stderr so every reporter's
// stdout stays machine-readable.
func printSummary(cmd *cobra.Command, summary engine.Summary) {
	switch lintColor {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		if !term.IsTerminal(int(os.Stderr.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
	s := newSummaryStyles(!color.NoColor)

	heading := s.done.Sprint("Done linting!")
	if summary.Serious > 0 {
		heading = s.serious.Sprint("Done linting!")
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Found %d violations, %d serious in %d files.\n",
		heading, summary.Violations, summary.Serious, summary.Files)
}

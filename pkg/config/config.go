// Package config loads and validates .swiftlint.yml configuration
// files. The key set is closed: a top-level key must either be one of
// the documented settings or the ID of a registered rule, and anything
// else fails the whole load rather than being silently ignored.
package config

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alexdonduk/SwiftLint/pkg/rules"
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// Configuration is the resolved lint configuration for one run.
type Configuration struct {
	// Included and Excluded are doublestar glob patterns applied to
	// paths relative to the lint root. Excluded wins over Included.
	Included []string
	Excluded []string

	// DisabledRules lists builtin rule IDs removed from the run.
	DisabledRules []string

	// Reporter is the output format name (xcode, json, emoji, sarif).
	Reporter string

	// CachePath is where the incremental lint cache lives; empty means
	// no on-disk cache.
	CachePath string

	// Strict upgrades every warning to a run-failing violation.
	Strict bool

	// RuleConfigurations holds the raw option mapping for each rule
	// that has one, keyed by rule ID. Rules validate their own payload
	// via ApplyConfiguration.
	RuleConfigurations map[string]any

	// CustomRules are user-defined regex rules, in declaration order.
	CustomRules []rules.CustomRuleDefinition
}

// Default returns the configuration used when no config file exists:
// every builtin rule at its implementation defaults, xcode output.
func Default() *Configuration {
	return &Configuration{Reporter: "xcode"}
}

// Selects reports whether a path (relative to the lint root, with
// forward slashes) is in scope. An empty Included list selects
// everything; Excluded patterns win over Included ones. Invalid
// patterns never match.
func (c *Configuration) Selects(relPath string) bool {
	for _, pattern := range c.Excluded {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return false
		}
	}
	if len(c.Included) == 0 {
		return true
	}
	for _, pattern := range c.Included {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// RuleEnabled reports whether the builtin rule with the given ID
// participates in the run.
func (c *Configuration) RuleEnabled(id string) bool {
	for _, disabled := range c.DisabledRules {
		if disabled == id {
			return false
		}
	}
	return true
}

// Fingerprint returns a stable hex digest of everything that affects
// lint results: the configuration itself plus the tool version. Cached
// results are keyed by it, so any configuration change invalidates the
// cache. json.Marshal sorts map keys, which keeps the digest canonical.
func (c *Configuration) Fingerprint(version string) string {
	payload := struct {
		Version       string                       `json:"version"`
		DisabledRules []string                     `json:"disabled_rules"`
		RuleConfigs   map[string]any               `json:"rule_configs"`
		CustomRules   []rules.CustomRuleDefinition `json:"custom_rules"`
		Strict        bool                         `json:"strict"`
	}{
		Version:       version,
		DisabledRules: c.DisabledRules,
		RuleConfigs:   c.RuleConfigurations,
		CustomRules:   c.CustomRules,
		Strict:        c.Strict,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		// The payload is built from YAML scalars and slices; marshal
		// cannot fail on it. Fall back to an unshared digest anyway.
		data = []byte(fmt.Sprintf("%#v", payload))
	}
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// severityFrom reads an optional severity value out of a raw custom
// rule mapping.
func severityFrom(raw map[string]any, ruleID string) (types.Severity, error) {
	value, ok := raw["severity"]
	if !ok {
		return types.SeverityWarning, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("custom rule %q: severity expects a string, got %T", ruleID, value)
	}
	parsed, err := types.ParseSeverity(s)
	if err != nil {
		return "", fmt.Errorf("custom rule %q: %w", ruleID, err)
	}
	return parsed, nil
}

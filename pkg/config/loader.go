package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/alexdonduk/SwiftLint/pkg/rules"
)

// configFileNames is the ordered list of config file names to search
// for in the lint root.
var configFileNames = []string{
	".swiftlint.yml",
	".swiftlint.yaml",
}

// Discover returns the path of the first config file found in dir,
// following the standard search order, or an empty string when none
// exists.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads a configuration. If path is non-empty that file is loaded
// directly; otherwise Load searches dir via Discover and falls back to
// Default when no file exists.
func Load(path, dir string) (*Configuration, error) {
	if path == "" {
		path = Discover(dir)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds a Configuration from raw YAML. Unknown top-level keys
// fail the whole parse: a key must be a documented setting, a
// registered rule ID, or custom_rules.
func Parse(data []byte) (*Configuration, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	cfg := Default()
	for key, value := range raw {
		switch key {
		case "included":
			patterns, err := stringSlice(key, value)
			if err != nil {
				return nil, err
			}
			cfg.Included = patterns
		case "excluded":
			patterns, err := stringSlice(key, value)
			if err != nil {
				return nil, err
			}
			cfg.Excluded = patterns
		case "disabled_rules":
			ids, err := stringSlice(key, value)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				if _, ok := rules.NewBuiltin(id); !ok {
					return nil, fmt.Errorf("disabled_rules: unknown rule %q", id)
				}
			}
			cfg.DisabledRules = ids
		case "reporter":
			name, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("reporter expects a string, got %T", value)
			}
			cfg.Reporter = name
		case "cache_path":
			path, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("cache_path expects a string, got %T", value)
			}
			cfg.CachePath = path
		case "strict":
			strict, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("strict expects a bool, got %T", value)
			}
			cfg.Strict = strict
		case "custom_rules":
			defs, err := parseCustomRules(value)
			if err != nil {
				return nil, err
			}
			cfg.CustomRules = defs
		default:
			if _, ok := rules.NewBuiltin(key); !ok {
				return nil, fmt.Errorf("unknown configuration key %q", key)
			}
			// Rule values pass through as-is: rules take scalars as
			// well as option mappings, and each rule validates its own
			// payload when the configuration is applied.
			if cfg.RuleConfigurations == nil {
				cfg.RuleConfigurations = make(map[string]any)
			}
			cfg.RuleConfigurations[key] = value
		}
	}

	return cfg, nil
}

// parseCustomRules reads the custom_rules mapping: rule ID to a
// mapping of name/regex/message/severity/keywords. YAML mapping order
// is lost in a Go map, so definitions are ordered by ID for
// determinism.
func parseCustomRules(value any) ([]rules.CustomRuleDefinition, error) {
	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("custom_rules expects a mapping, got %T", value)
	}

	ids := make([]string, 0, len(mapping))
	for id := range mapping {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	defs := make([]rules.CustomRuleDefinition, 0, len(ids))
	for _, id := range ids {
		body, ok := mapping[id].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("custom rule %q expects a mapping, got %T", id, mapping[id])
		}

		def := rules.CustomRuleDefinition{ID: id}
		for key, v := range body {
			switch key {
			case "name":
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("custom rule %q: name expects a string, got %T", id, v)
				}
				def.Name = s
			case "regex":
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("custom rule %q: regex expects a string, got %T", id, v)
				}
				def.Regex = s
			case "message":
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("custom rule %q: message expects a string, got %T", id, v)
				}
				def.Message = s
			case "severity":
				severity, err := severityFrom(body, id)
				if err != nil {
					return nil, err
				}
				def.Severity = severity
			case "keywords":
				keywords, err := stringSlice(fmt.Sprintf("custom rule %q: keywords", id), v)
				if err != nil {
					return nil, err
				}
				def.Keywords = keywords
			default:
				return nil, fmt.Errorf("custom rule %q: unknown key %q", id, key)
			}
		}
		if def.Regex == "" {
			return nil, fmt.Errorf("custom rule %q has no regex", id)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func stringSlice(key string, value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s expects a list of strings, got %T", key, value)
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s expects a list of strings, got element of type %T", key, item)
		}
		result = append(result, s)
	}
	return result, nil
}

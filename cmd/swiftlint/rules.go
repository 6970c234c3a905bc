package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexdonduk/SwiftLint/pkg/rules"
)

var rulesFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules [rule_id]",
	Short: "List lint rules",
	Long:  "Display the builtin lint rules, or the full description and example corpus of a single rule",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&rulesFormat, "format", "table", "Output format: table, json")
}

func runRules(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return outputRuleDetail(cmd, args[0])
	}

	switch rulesFormat {
	case "json":
		return outputRulesJSON(cmd)
	case "table":
		return outputRulesTable(cmd)
	default:
		return fmt.Errorf("unknown output format: %s", rulesFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func outputRulesJSON(cmd *cobra.Command) error {
	instances := rules.NewBuiltinRules()
	descriptions := make([]any, 0, len(instances))
	for _, rule := range instances {
		descriptions = append(descriptions, rule.Description())
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(descriptions)
}

func outputRulesTable(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tName\tKind\tConfigurable\n")
	fmt.Fprintf(w, "--\t----\t----\t------------\n")

	for _, rule := range rules.NewBuiltinRules() {
		desc := rule.Description()
		_, configurable := rule.(rules.ConfigurableRule)
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", desc.ID, desc.Name, desc.Kind, configurable)
	}

	return nil
}

func outputRuleDetail(cmd *cobra.Command, id string) error {
	rule, ok := rules.NewBuiltin(id)
	if !ok {
		return fmt.Errorf("unknown rule: %s", id)
	}

	out := cmd.OutOrStdout()
	desc := rule.Description()
	fmt.Fprintf(out, "%s (%s)\n", desc.Name, desc.ID)
	fmt.Fprintf(out, "Kind: %s\n", desc.Kind)
	fmt.Fprintf(out, "%s\n", desc.Description)

	if len(desc.NonTriggeringExamples) > 0 {
		fmt.Fprintf(out, "\nNon-triggering examples:\n")
		for _, example := range desc.NonTriggeringExamples {
			fmt.Fprintf(out, "---\n%s", example)
		}
	}
	if len(desc.TriggeringExamples) > 0 {
		fmt.Fprintf(out, "\nTriggering examples:\n")
		for _, example := range desc.TriggeringExamples {
			fmt.Fprintf(out, "---\n%s", example)
		}
	}
	return nil
}

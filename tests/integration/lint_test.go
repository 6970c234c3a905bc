//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getProjectRoot returns the path to the project root
func getProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	// tests/integration/lint_test.go -> project root
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

// buildBinary builds the swiftlint binary once per test into a temp dir.
func buildBinary(t *testing.T) string {
	t.Helper()
	projectRoot := getProjectRoot()
	binary := filepath.Join(t.TempDir(), "swiftlint")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/swiftlint")
	buildCmd.Dir = projectRoot
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(output))
	return binary
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLintIntegration_ExitCodes(t *testing.T) {
	binary := buildBinary(t)

	dirty := writeProject(t, map[string]string{
		"main.swift": "let x = 1 \n",
	})
	clean := writeProject(t, map[string]string{
		"main.swift": "let x = 1\n",
	})

	// Warnings alone exit 0.
	cmd := exec.Command(binary, "lint", "--color", "never", dirty)
	output, err := cmd.CombinedOutput()
	assert.NoError(t, err, "warnings should not fail the run: %s", output)
	assert.Contains(t, string(output), "trailing_whitespace")

	// --strict upgrades the run to failing with exit code 2.
	cmd = exec.Command(binary, "lint", "--color", "never", "--strict", dirty)
	err = cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())

	// A clean tree exits 0.
	cmd = exec.Command(binary, "lint", "--color", "never", clean)
	assert.NoError(t, cmd.Run())
}

func TestLintIntegration_ConfigDiscoveryAndJSON(t *testing.T) {
	binary := buildBinary(t)

	dir := writeProject(t, map[string]string{
		".swiftlint.yml": "reporter: json\nclosure_parameter_position:\n  parameters_on_new_line: true\n",
		"main.swift":     "[1, 2].map { number in\n    number + 1\n}\n",
	})

	cmd := exec.Command(binary, "lint", "--color", "never", dir)
	stdout, err := cmd.Output()
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(stdout, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "closure_parameter_position", decoded[0]["rule_id"])
}

func TestLintIntegration_RulesListing(t *testing.T) {
	binary := buildBinary(t)

	output, err := exec.Command(binary, "rules").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "closure_parameter_position")

	output, err = exec.Command(binary, "rules", "closure_parameter_position").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "Triggering examples:")
}

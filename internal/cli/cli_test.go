package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/leetboard/internal/logging"
	"github.com/yaklabco/leetboard/pkg/fsutil"
	"github.com/yaklabco/leetboard/pkg/leaderboard"
)

func testBuildInfo() BuildInfo {
	return BuildInfo{Version: "test", Commit: "abc123", Date: "today"}
}

// execute runs the root command with args and returns stdout, stderr, and
// the execution error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStats(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "stats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- username: alice
  total_questions: 10
  easy_count: 5
  medium_count: 3
  hard_count: 2
- username: bob
  total_questions: 10
  easy_count: 2
  medium_count: 2
  hard_count: 6
- username: carol
  total_questions: 5
  easy_count: 5
  medium_count: 0
  hard_count: 0
`), 0644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(testBuildInfo())
	assert.Equal(t, "leetboard", root.Use)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "report")
	assert.Contains(t, names, "version")

	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing persistent flag %q", flag)
	}
}

func TestReportCommand_TextToStdout(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)

	stdout, stderr, err := execute(t, "report", statsPath, "--days", "7")
	require.NoError(t, err)

	assert.Contains(t, stdout, "LeetCode Statistics (Last 7 Days)")
	assert.Contains(t, stdout, "alice 🥇")
	assert.Contains(t, stdout, "bob 🥈")
	assert.Contains(t, stdout, "carol 🥉")
	assert.Contains(t, stderr, "Ranked 3 users over 7 days (text)")
}

func TestReportCommand_HTMLToFile(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)
	outBase := filepath.Join(dir, "weekly")

	stdout, stderr, err := execute(t,
		"report", statsPath, "--format", "html", "--output", outBase, "--days", "14")
	require.NoError(t, err)

	// Report goes to the file, not stdout.
	assert.NotContains(t, stdout, "<h1>")
	assert.Contains(t, stderr, "weekly.html")

	content, err := os.ReadFile(outBase + ".html")
	require.NoError(t, err)
	assert.Contains(t, string(content), "<h1>LeetCode Statistics (Last 14 Days)</h1>")
	assert.Contains(t, string(content), `class="first-place"`)
}

func TestReportCommand_MessageFlag(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)

	stdout, _, err := execute(t, "report", statsPath, "--message", "Window resets Monday")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Window resets Monday")
}

func TestReportCommand_ConfigFile(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)

	cfgPath := filepath.Join(dir, "leetboard.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: html\ndays: 21\n"), 0644))

	stdout, _, err := execute(t, "report", statsPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "<h1>LeetCode Statistics (Last 21 Days)</h1>")
}

func TestReportCommand_FlagOverridesConfig(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)

	cfgPath := filepath.Join(dir, "leetboard.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: html\n"), 0644))

	stdout, _, err := execute(t, "report", statsPath, "--config", cfgPath, "--format", "text")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "<h1>")
	assert.Contains(t, stdout, "LeetCode Statistics")
}

func TestReportCommand_MissingStatsFile(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "report", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestReportCommand_InvalidStats(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)

	statsPath := filepath.Join(dir, "stats.yaml")
	require.NoError(t, os.WriteFile(statsPath, []byte("- total_questions: 5\n"), 0644))

	_, _, err := execute(t, "report", statsPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, leaderboard.ErrInvalidInput)
}

func TestReportCommand_RequiresStatsArg(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	t.Chdir(t.TempDir())

	_, _, err := execute(t, "report")
	assert.Error(t, err)
}

func TestReportCommand_LogLevelFromEnv(t *testing.T) {
	// Not parallel: mutates the process environment and the default logger.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)

	originalLevel := logging.Default().GetLevel()
	t.Cleanup(func() { logging.Default().SetLevel(originalLevel) })

	t.Setenv("LEETBOARD_LOG_LEVEL", "debug")

	_, _, err := execute(t, "report", statsPath)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}

func TestReportCommand_LogLevelFromConfigFile(t *testing.T) {
	// Not parallel: changes working directory and the default logger.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)

	originalLevel := logging.Default().GetLevel()
	t.Cleanup(func() { logging.Default().SetLevel(originalLevel) })

	cfgPath := filepath.Join(dir, "leetboard.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0644))

	_, _, err := execute(t, "report", statsPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, log.ErrorLevel, logging.Default().GetLevel())
}

func TestReportCommand_DebugFlagWinsOverConfigLevel(t *testing.T) {
	// Not parallel: mutates the process environment and the default logger.

	dir := t.TempDir()
	t.Chdir(dir)
	statsPath := writeStats(t, dir)

	originalLevel := logging.Default().GetLevel()
	t.Cleanup(func() { logging.Default().SetLevel(originalLevel) })

	t.Setenv("LEETBOARD_LOG_LEVEL", "error")

	_, _, err := execute(t, "report", statsPath, "--debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "invalid input", err: fmt.Errorf("render: %w", leaderboard.ErrInvalidInput), want: ExitInvalidInput},
		{name: "not found", err: fmt.Errorf("load: %w", fsutil.ErrNotFound), want: ExitIOError},
		{name: "permission denied", err: fsutil.ErrPermissionDenied, want: ExitIOError},
		{name: "generic", err: errors.New("boom"), want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(testBuildInfo())

	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})

	// The version command writes through its own logger to os.Stdout, so
	// only the absence of an error is asserted here.
	require.NoError(t, root.Execute())
}

func TestReportCommand_EmptyStats(t *testing.T) {
	// Not parallel: changes working directory for config isolation.

	dir := t.TempDir()
	t.Chdir(dir)

	statsPath := filepath.Join(dir, "stats.json")
	require.NoError(t, os.WriteFile(statsPath, []byte("[]"), 0644))

	stdout, stderr, err := execute(t, "report", statsPath, "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "LeetCode Statistics (Last 7 Days)")
	assert.NotContains(t, stdout, "🥇")
	assert.Contains(t, stderr, "Ranked 0 users")
}

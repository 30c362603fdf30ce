package testutil

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/arthur-debert/helpex/pkg/paths"
)

// DefaultColumns is the terminal width of a TestEnvironment. With the default
// right margin of 10 records render at width 40.
const DefaultColumns = 50

// TestEnvironment isolates helpex from the user's directories and terminal.
type TestEnvironment struct {
	DataDir   string
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewTestEnvironment points the helpex data, config and state directories
// into a fresh temp dir and sets COLUMNS to DefaultColumns. The data
// directory is not created, so tests can observe helpex creating it.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		DataDir:   filepath.Join(root, "data"),
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
		t:         t,
	}

	t.Setenv(paths.EnvHelpexDataDir, env.DataDir)
	t.Setenv(paths.EnvHelpexConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvHelpexStateDir, env.StateDir)
	env.SetColumns(DefaultColumns)

	return env
}

// SetColumns overrides the detected terminal width.
func (env *TestEnvironment) SetColumns(columns int) {
	env.t.Setenv("COLUMNS", strconv.Itoa(columns))
}

// WriteRecord writes a record file, e.g. "tar.json", into the data directory.
func (env *TestEnvironment) WriteRecord(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.DataDir, name, content)
}

// WriteConfig writes the user configuration file.
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.ConfigDir, paths.ConfigFileName, content)
}

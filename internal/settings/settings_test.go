package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "render"}
	cmd.Flags().String("format", "term", "")
	cmd.Flags().String("theme", "light", "")
	cmd.Flags().Int("width", 0, "")
	cmd.Flags().Bool("no-color", false, "")
	return cmd
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "designsystem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "light", s.Theme)
	assert.Equal(t, "term", s.Format)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Zero(t, s.Width)
}

func TestLoadLayering(t *testing.T) {
	path := writeConfig(t, "theme: dark\nformat: html\nwidth: 80\nlog_level: info\n")

	s, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, "html", s.Format)
	assert.Equal(t, 80, s.Width)

	t.Setenv("DESIGNSYSTEM_WIDTH", "100")
	s, err = Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 100, s.Width, "environment overrides the file")

	cmd := newCommand()
	require.NoError(t, cmd.Flags().Set("width", "40"))
	require.NoError(t, cmd.Flags().Set("format", "term"))
	s, err = Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, 40, s.Width, "flags override the environment")
	assert.Equal(t, "term", s.Format)
	assert.Equal(t, "dark", s.Theme, "unset flags do not override the file")
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *dserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "format: pdf\n")

	_, err := Load(nil, path)
	var validationErr *dserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "format", validationErr.Field)
	assert.Contains(t, validationErr.Message, "pdf")
}

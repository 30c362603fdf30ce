package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/helpex/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Render.Indent)
	assert.Equal(t, "    ", cfg.Render.IndentString())
	assert.Equal(t, 10, cfg.Render.RightMargin)
	assert.Equal(t, "•", cfg.Render.Bullet)
	assert.Equal(t, 87, cfg.Terminal.FallbackColumns)
	assert.Equal(t, 90, cfg.Terminal.FallbackLines)
	assert.Equal(t, "", cfg.Editor.Command)
	assert.Equal(t, []string{".json", ".yaml", ".yml", ".toml"}, cfg.Store.Extensions)
}

func TestLoad_EmptyPathSkipsFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Render.Indent)
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[render]
indent = 2
bullet = "*"

[editor]
command = "nano"
args = "--nowrap --tabsize 4"

[store]
extensions = [".json"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Render.Indent)
	assert.Equal(t, "*", cfg.Render.Bullet)
	assert.Equal(t, 10, cfg.Render.RightMargin, "untouched keys keep their default")
	assert.Equal(t, "nano", cfg.Editor.Command)
	assert.Equal(t, "--nowrap --tabsize 4", cfg.Editor.Args)
	assert.Equal(t, []string{".json"}, cfg.Store.Extensions)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[render]\nright_margin = 6\n")
	t.Setenv("HELPEX_RENDER_RIGHT_MARGIN", "3")
	t.Setenv("HELPEX_TERMINAL_FALLBACK_COLUMNS", "120")
	t.Setenv("HELPEX_STORE_EXTENSIONS", ".yaml,.json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Render.RightMargin)
	assert.Equal(t, 120, cfg.Terminal.FallbackColumns)
	assert.Equal(t, []string{".yaml", ".json"}, cfg.Store.Extensions)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[render\nindent = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"negative indent", "[render]\nindent = -1\n", "render.indent"},
		{"zero indent", "[render]\nindent = 0\n", "render.indent"},
		{"negative margin", "[render]\nright_margin = -2\n", "render.right_margin"},
		{"zero columns", "[terminal]\nfallback_columns = 0\n", "terminal.fallback_columns"},
		{"no extensions", "[store]\nextensions = []\n", "store.extensions"},
		{"extension without dot", "[store]\nextensions = [\"json\"]\n", "store.extensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
			assert.Equal(t, tt.key, errors.DetailString(err, "key"))
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "render.right_margin", envKey("HELPEX_RENDER_RIGHT_MARGIN"))
	assert.Equal(t, "editor.command", envKey("HELPEX_EDITOR_COMMAND"))
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), "[render]")
}

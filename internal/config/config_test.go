package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_WithValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "todo.yaml")

	configContent := `
storage:
  file: ".todo/todos.json"
output:
  format: "simple"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, ".todo/todos.json", cfg.Storage.File)
	assert.Equal(t, "simple", cfg.Output.Format)
}

func TestLoadConfig_WithMissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	// Keep the global-config fallback out of this test.
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "todos.json", cfg.Storage.File)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoadConfig_WithPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "todo.yaml")

	configContent := `
storage:
  file: "custom.json"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "custom.json", cfg.Storage.File)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoadConfig_FallsBackToGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	xdgHome := filepath.Join(tmpDir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdgHome)

	globalDir := filepath.Join(xdgHome, "todo")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalConfig := `
storage:
  file: "global.json"
`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte(globalConfig), 0644))

	workDir := filepath.Join(tmpDir, "work")
	require.NoError(t, os.MkdirAll(workDir, 0755))

	cfg, err := LoadConfig(workDir)
	require.NoError(t, err)

	assert.Equal(t, "global.json", cfg.Storage.File)
}

func TestLoadConfig_LocalWinsOverGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	xdgHome := filepath.Join(tmpDir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdgHome)

	globalDir := filepath.Join(xdgHome, "todo")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte("storage:\n  file: global.json\n"), 0644))

	workDir := filepath.Join(tmpDir, "work")
	require.NoError(t, os.MkdirAll(workDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "todo.yaml"), []byte("storage:\n  file: local.json\n"), 0644))

	cfg, err := LoadConfig(workDir)
	require.NoError(t, err)

	assert.Equal(t, "local.json", cfg.Storage.File)
}

func TestLoadConfig_WithInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "todo.yaml")

	err := os.WriteFile(configPath, []byte("storage: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tmpDir)
	assert.Error(t, err)
}

func TestLoadConfigFromPath(t *testing.T) {
	t.Run("loads from an explicit path", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "custom-config.yaml")

		require.NoError(t, os.WriteFile(configPath, []byte("storage:\n  file: explicit.json\n"), 0644))

		cfg, err := LoadConfigFromPath(configPath)
		require.NoError(t, err)
		assert.Equal(t, "explicit.json", cfg.Storage.File)
	})

	t.Run("returns defaults for a missing path", func(t *testing.T) {
		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "todos.json", cfg.Storage.File)
	})
}

func TestLoadConfigWithFile(t *testing.T) {
	t.Run("prefers the explicit file", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "todo.yaml"), []byte("storage:\n  file: local.json\n"), 0644))

		explicit := filepath.Join(tmpDir, "other.yaml")
		require.NoError(t, os.WriteFile(explicit, []byte("storage:\n  file: other.json\n"), 0644))

		cfg, err := LoadConfigWithFile(tmpDir, explicit)
		require.NoError(t, err)
		assert.Equal(t, "other.json", cfg.Storage.File)
	})

	t.Run("falls back to the working directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "todo.yaml"), []byte("storage:\n  file: local.json\n"), 0644))

		cfg, err := LoadConfigWithFile(tmpDir, "")
		require.NoError(t, err)
		assert.Equal(t, "local.json", cfg.Storage.File)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults from workspace env var", func(t *testing.T) {
		t.Setenv(EnvWorkspaceDir, "/repo")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "clang++", cfg.CompilerName)
		assert.Equal(t, "/repo", cfg.WorkspaceDir)
		assert.Equal(t, "/repo/compile_commands.json", cfg.DatabasePath)
		assert.Equal(t, "/repo/.compdbhook/logs", cfg.LogDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("workspace falls back to the working directory", func(t *testing.T) {
		t.Setenv(EnvWorkspaceDir, "")
		os.Unsetenv(EnvWorkspaceDir)
		tempDir := t.TempDir()
		prevDir, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tempDir))
		t.Cleanup(func() { os.Chdir(prevDir) })

		cfg, err := Load()
		require.NoError(t, err)
		// tempDir may pass through a symlink on some systems
		assert.Contains(t, cfg.DatabasePath, "compile_commands.json")
		assert.NotEmpty(t, cfg.WorkspaceDir)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv(EnvWorkspaceDir, tempDir)
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, ConfigFileName), []byte(`
compiler = "g++"
database_path = "build/compile_commands.json"
log_level = "debug"
`), 0644))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "g++", cfg.CompilerName)
		assert.Equal(t, tempDir+"/build/compile_commands.json", cfg.DatabasePath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("environment overrides the config file", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv(EnvWorkspaceDir, tempDir)
		t.Setenv(EnvCompiler, "clang-18")
		t.Setenv(EnvDatabasePath, "/abs/compile_commands.json")
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, ConfigFileName), []byte(`
compiler = "g++"
`), 0644))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "clang-18", cfg.CompilerName)
		// absolute override is not re-joined against the workspace
		assert.Equal(t, "/abs/compile_commands.json", cfg.DatabasePath)
	})

	t.Run("broken config file is an error", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv(EnvWorkspaceDir, tempDir)
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, ConfigFileName), []byte("compiler = ["), 0644))

		_, err := Load()
		assert.Error(t, err)
	})
}

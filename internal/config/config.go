// config.go - Hook configuration management
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"compdb-hook/internal/compiler"
	"compdb-hook/internal/utils"
)

// Environment variables understood by the hook. They win over the config
// file, which wins over the built-in defaults.
const (
	EnvCompiler     = "COMP_DB_HOOK_COMPILER"
	EnvWorkspaceDir = "COMP_DB_HOOK_WORKSPACE_DIR"
	EnvDatabasePath = "COMP_DB_HOOK_DB_PATH"
	EnvLogDir       = "COMP_DB_HOOK_LOG_DIR"
	EnvLogLevel     = "COMP_DB_HOOK_LOG_LEVEL"
)

// ConfigFileName is the optional per-workspace config file.
const ConfigFileName = ".compdbhook.toml"

const (
	defaultLogLevel = "info"
	defaultLogsDir  = ".compdbhook/logs"
)

// Config carries everything one invocation needs. It is built once in main
// and passed down; nothing below this layer reads the environment.
type Config struct {
	CompilerName string
	WorkspaceDir string
	DatabasePath string
	LogDir       string
	LogLevel     string
}

// fileConfig is the shape of the optional TOML file. The workspace directory
// is deliberately not settable here: the file is located through the
// workspace, so letting it move the workspace would be circular.
type fileConfig struct {
	Compiler     string `toml:"compiler"`
	DatabasePath string `toml:"database_path"`
	LogDir       string `toml:"log_dir"`
	LogLevel     string `toml:"log_level"`
}

// Load assembles the configuration: defaults, then the workspace TOML file
// if present, then environment variables. A .env file in the working
// directory is honored before the environment is read; its absence is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	workspace := os.Getenv(EnvWorkspaceDir)
	if workspace == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine workspace directory: %w", err)
		}
		workspace = cwd
	}

	cfg := &Config{
		CompilerName: compiler.DefaultName,
		WorkspaceDir: workspace,
		DatabasePath: utils.JoinPath(workspace, utils.DatabaseFileName),
		LogDir:       utils.JoinPath(workspace, defaultLogsDir),
		LogLevel:     defaultLogLevel,
	}

	if err := applyFile(cfg, utils.JoinPath(workspace, ConfigFileName)); err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.Compiler != "" {
		cfg.CompilerName = fc.Compiler
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = utils.JoinPath(cfg.WorkspaceDir, fc.DatabasePath)
	}
	if fc.LogDir != "" {
		cfg.LogDir = utils.JoinPath(cfg.WorkspaceDir, fc.LogDir)
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvCompiler); v != "" {
		cfg.CompilerName = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = utils.JoinPath(cfg.WorkspaceDir, v)
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		cfg.LogDir = utils.JoinPath(cfg.WorkspaceDir, v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

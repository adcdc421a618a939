// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "polyrun"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides (e.g.
	// POLYRUN_DEFAULT_ENGINE).
	EnvPrefix = "POLYRUN"
)

// ErrInvalidConfig is the sentinel error wrapped by validation failures.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config holds all polyrun configuration.
	Config struct {
		// DefaultEngine is used by the CLI when no engine is given and the
		// program extension is not recognized. Empty means no default.
		DefaultEngine string `mapstructure:"default_engine" validate:"omitempty,oneof=javascript typescript python ruby lua java go csharp"`
		// Node configures the embedded module runtime used for JavaScript
		// and TypeScript programs.
		Node NodeConfig `mapstructure:"node"`
		// Engines maps engine names to interpreter command overrides.
		Engines map[string]EngineConfig `mapstructure:"engines" validate:"dive"`
		// UI holds user interface settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// NodeConfig configures the module runtime binary.
	NodeConfig struct {
		// Binary is the module runtime executable. A bare name is looked up
		// on PATH; a relative path is resolved against the runtime root.
		Binary string `mapstructure:"binary" validate:"required"`
	}

	// EngineConfig overrides how one engine invokes its interpreter.
	EngineConfig struct {
		// Binary is the interpreter executable. A bare name is looked up on
		// PATH; a relative path is resolved against the runtime root.
		Binary string `mapstructure:"binary" validate:"required"`
		// Args are inserted between the binary and the program path.
		Args []string `mapstructure:"args"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// Verbose enables debug logging by default.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults: stock interpreter commands for
// every engine, resolved from PATH.
func DefaultConfig() *Config {
	return &Config{
		Node: NodeConfig{Binary: "node"},
		Engines: map[string]EngineConfig{
			"python": {Binary: "python3"},
			"ruby":   {Binary: "ruby"},
			"lua":    {Binary: "lua"},
			"java":   {Binary: "java"},
			"go":     {Binary: "go", Args: []string{"run"}},
			"csharp": {Binary: "dotnet", Args: []string{"run", "--project"}},
		},
		UI: UIConfig{Verbose: false},
	}
}

// EngineCommand returns the interpreter binary and leading args for the named
// engine, falling back to the built-in defaults when the config has no
// override for it.
func (c *Config) EngineCommand(name string) (string, []string) {
	if ec, ok := c.Engines[name]; ok && ec.Binary != "" {
		return ec.Binary, ec.Args
	}
	if ec, ok := DefaultConfig().Engines[name]; ok {
		return ec.Binary, ec.Args
	}
	return "", nil
}

// ConfigDir returns the polyrun configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads configuration from the config file (if present) and POLYRUN_*
// environment variables, layered over the built-in defaults. A missing config
// file is not an error; a malformed or invalid one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("default_engine", defaults.DefaultEngine)
	v.SetDefault("node.binary", defaults.Node.Binary)
	for name, ec := range defaults.Engines {
		v.SetDefault("engines."+name+".binary", ec.Binary)
		v.SetDefault("engines."+name+".args", ec.Args)
	}
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(EnvPrefix)
	// Nested keys use dots internally; environment variables use underscores
	// (node.binary reads from POLYRUN_NODE_BINARY).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the unmarshaled config against the struct validation tags.
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Node.Binary != "node" {
		t.Errorf("Node.Binary = %q, want \"node\"", cfg.Node.Binary)
	}
	if cfg.DefaultEngine != "" {
		t.Errorf("DefaultEngine = %q, want empty", cfg.DefaultEngine)
	}

	wantEngines := []string{"python", "ruby", "lua", "java", "go", "csharp"}
	for _, name := range wantEngines {
		if _, ok := cfg.Engines[name]; !ok {
			t.Errorf("DefaultConfig() missing engine %q", name)
		}
	}

	if err := validate(cfg); err != nil {
		t.Errorf("validate(DefaultConfig()) = %v, want nil", err)
	}
}

func TestEngineCommand(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	bin, args := cfg.EngineCommand("go")
	if bin != "go" || len(args) != 1 || args[0] != "run" {
		t.Errorf("EngineCommand(\"go\") = (%q, %v), want (\"go\", [run])", bin, args)
	}

	cfg.Engines["python"] = EngineConfig{Binary: "/opt/python/bin/python3.12"}
	bin, _ = cfg.EngineCommand("python")
	if bin != "/opt/python/bin/python3.12" {
		t.Errorf("EngineCommand(\"python\") = %q, want override", bin)
	}

	// Unknown engines fall back to nothing rather than guessing a binary.
	bin, args = cfg.EngineCommand("perl")
	if bin != "" || args != nil {
		t.Errorf("EngineCommand(\"perl\") = (%q, %v), want empty", bin, args)
	}
}

func TestValidateRejectsUnknownDefaultEngine(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DefaultEngine = "perl"

	err := validate(cfg)
	if err == nil {
		t.Fatal("validate() = nil, want error for unknown default engine")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error does not wrap ErrInvalidConfig: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Node.Binary != "node" {
		t.Errorf("Node.Binary = %q, want default \"node\"", cfg.Node.Binary)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `default_engine = "python"

[node]
binary = "/opt/node/bin/node"

[engines.lua]
binary = "luajit"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.DefaultEngine != "python" {
		t.Errorf("DefaultEngine = %q, want \"python\"", cfg.DefaultEngine)
	}
	if cfg.Node.Binary != "/opt/node/bin/node" {
		t.Errorf("Node.Binary = %q, want \"/opt/node/bin/node\"", cfg.Node.Binary)
	}
	bin, _ := cfg.EngineCommand("lua")
	if bin != "luajit" {
		t.Errorf("EngineCommand(\"lua\") = %q, want \"luajit\"", bin)
	}
	// Engines without overrides keep their defaults.
	bin, _ = cfg.EngineCommand("ruby")
	if bin != "ruby" {
		t.Errorf("EngineCommand(\"ruby\") = %q, want \"ruby\"", bin)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	t.Setenv("POLYRUN_DEFAULT_ENGINE", "lua")
	t.Setenv("POLYRUN_NODE_BINARY", "/opt/node/bin/node")
	t.Setenv("POLYRUN_ENGINES_RUBY_BINARY", "jruby")
	t.Setenv("POLYRUN_UI_VERBOSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.DefaultEngine != "lua" {
		t.Errorf("DefaultEngine = %q, want \"lua\" from environment", cfg.DefaultEngine)
	}
	if cfg.Node.Binary != "/opt/node/bin/node" {
		t.Errorf("Node.Binary = %q, want \"/opt/node/bin/node\" from environment", cfg.Node.Binary)
	}
	bin, _ := cfg.EngineCommand("ruby")
	if bin != "jruby" {
		t.Errorf("EngineCommand(\"ruby\") = %q, want \"jruby\" from environment", bin)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true from environment")
	}
}

func TestEnvOverrideBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `[node]
binary = "/from/file/node"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	SetConfigDirOverride(dir)
	t.Cleanup(Reset)
	t.Setenv("POLYRUN_NODE_BINARY", "/from/env/node")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Node.Binary != "/from/env/node" {
		t.Errorf("Node.Binary = %q, want the environment to take precedence", cfg.Node.Binary)
	}
}

func TestConfigDirOverrideConcurrentWithGet(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetConfigDirOverride(dir)
			Get()
		}()
	}
	wg.Wait()

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want override %q", got, dir)
	}
}

func TestLoadRejectsInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `default_engine = "perl"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() = nil error, want validation error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error does not wrap ErrInvalidConfig: %v", err)
	}
}

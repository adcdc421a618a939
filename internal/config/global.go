// SPDX-License-Identifier: MPL-2.0

package config

import (
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	globalMu  sync.Mutex
	globalCfg *Config
)

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	globalMu.Lock()
	defer globalMu.Unlock()
	configDirOverride = dir
}

// Reset clears test overrides and the cached config. Call from test cleanup
// to restore defaults.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	configDirOverride = ""
	globalCfg = nil
}

// Get returns the process-wide configuration, loading it on first use.
// Load failures are logged and degrade to the built-in defaults so that
// execution never blocks on a broken config file.
func Get() *Config {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalCfg != nil {
		return globalCfg
	}

	cfg, err := Load()
	if err != nil {
		log.Warn("falling back to default config", "error", err)
		cfg = DefaultConfig()
	}
	globalCfg = cfg
	return globalCfg
}

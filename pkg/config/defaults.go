// Package config loads wtcheck settings from ini files and the environment.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

//go:embed defaults
var defaultsFS embed.FS

// fetch modes for terminal output capture.
const (
	FetchModeExec = "exec" // tail the sentinel file inside the tooling container
	FetchModeLogs = "logs" // read the tooling container logs
)

// Config holds everything the harness needs: file settings and environment.
type Config struct {
	Values
	Env Env

	LocalConfigPath  string // local config file used, empty if none
	GlobalConfigPath string // global config file location
}

// Load reads settings with fallback chain local → global → embedded and processes the environment.
// localPath may be empty. the environment is not validated here, callers pick the
// validation they need (ValidateTerminal, ValidateEditor).
func Load(localPath string) (*Config, error) {
	globalPath := ""
	if dir, err := DefaultConfigDir(); err == nil {
		globalPath = filepath.Join(dir, "config")
	}

	values, err := newValuesLoader(defaultsFS).Load(localPath, globalPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	return &Config{Values: values, Env: env, LocalConfigPath: localPath, GlobalConfigPath: globalPath}, nil
}

// DefaultConfigDir returns ~/.config/wtcheck, honoring XDG_CONFIG_HOME.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wtcheck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "wtcheck"), nil
}

// PollInterval returns the output poll interval.
func (c *Config) PollInterval() time.Duration { return ms(c.PollIntervalMs) }

// ShortTimeout returns the timeout for quick UI waits.
func (c *Config) ShortTimeout() time.Duration { return ms(c.ShortTimeoutMs) }

// LongTimeout returns the timeout for command output and terminal restarts.
func (c *Config) LongTimeout() time.Duration { return ms(c.LongTimeoutMs) }

// SetupTimeout returns the timeout for a whole test group setup (login + terminal start).
func (c *Config) SetupTimeout() time.Duration { return ms(c.SetupTimeoutMs) }

// PodReadyTimeout returns how long the fetcher waits for the terminal pod to become ready.
func (c *Config) PodReadyTimeout() time.Duration { return ms(c.PodReadyTimeoutMs) }

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

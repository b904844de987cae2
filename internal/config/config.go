// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads and writes the shaker TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/janderssonse/shaker/internal/menu"
)

// DefaultTitle is the list screen heading.
const DefaultTitle = "Cocktail Menu"

var (
	// ErrInvalidConfig is returned when the config file cannot be parsed or holds bad values.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrConfigExists is returned by WriteDefault when the file exists and force is not set.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Config holds the user-tunable settings.
type Config struct {
	Title                   string `toml:"title"`
	Data                    string `toml:"data"`
	PageSize                int    `toml:"page_size"`
	RevealMargin            int    `toml:"reveal_margin"`
	ScrollThreshold         int    `toml:"scroll_threshold"`
	ResetPageOnSpiritChange bool   `toml:"reset_page_on_spirit_change"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:        DefaultTitle,
		PageSize:     menu.DefaultPageSize,
		RevealMargin: menu.DefaultRevealMargin,
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Title) == "":
		return fmt.Errorf("%w: title must not be empty", ErrInvalidConfig)
	case c.PageSize <= 0:
		return fmt.Errorf("%w: page_size must be positive, got %d", ErrInvalidConfig, c.PageSize)
	case c.RevealMargin < 0:
		return fmt.Errorf("%w: reveal_margin must not be negative, got %d", ErrInvalidConfig, c.RevealMargin)
	case c.ScrollThreshold < 0:
		return fmt.Errorf("%w: scroll_threshold must not be negative, got %d", ErrInvalidConfig, c.ScrollThreshold)
	}

	return nil
}

// MenuOptions converts the config into controller options.
func (c Config) MenuOptions() menu.Options {
	return menu.Options{
		PageSize:            c.PageSize,
		ResetOnSpiritChange: c.ResetPageOnSpiritChange,
		ScrollThreshold:     c.ScrollThreshold,
	}
}

// Load reads the config at path. Keys absent from the file keep their defaults, and a
// missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Default(), err
	}

	if cfg.Data != "" {
		cfg.Data = ExpandPath(cfg.Data)
	}

	return cfg, nil
}

// Parse decodes TOML into cfg, rejecting unknown keys, and validates the result.
func Parse(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg.Validate()
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return data, nil
}

// WriteDefault writes Default() to path, creating parent directories. The write is
// guarded by a file lock next to the config so concurrent inits cannot interleave.
func WriteDefault(path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(path + ".lock")

	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire config lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("config %s is being written by another process", path)
	}

	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := Default().Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

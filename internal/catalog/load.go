// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/janderssonse/shaker/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a dataset file encoding.
type Format string

// Supported dataset formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for dataset files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// tomlFile wraps recipes because TOML documents must be tables at the top level.
type tomlFile struct {
	Recipes []domain.Recipe `toml:"recipes"`
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads a dataset file and builds a catalog from it.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	recipes, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return New(recipes)
}

// LoadOrDefault loads path, or the bundled dataset when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	return Load(path)
}

// Parse decodes a list of recipes. JSON and YAML hold a top-level list;
// TOML holds a [[recipes]] array of tables.
func Parse(data []byte, format Format) ([]domain.Recipe, error) {
	var recipes []domain.Recipe

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &recipes); err != nil {
			return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &recipes); err != nil {
			return nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
		}
	case FormatTOML:
		var file tomlFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse TOML dataset: %w", err)
		}

		recipes = file.Recipes
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return recipes, nil
}

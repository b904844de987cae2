// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package export writes a cocktail menu to an Excel workbook.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/janderssonse/shaker/internal/domain"
	"github.com/janderssonse/shaker/internal/menu"
)

// SheetName is the worksheet holding the menu.
const SheetName = "Menu"

// ErrUnsupportedExtension is returned when the output path does not end in .xlsx.
var ErrUnsupportedExtension = errors.New("export file must end in .xlsx")

// Header is the first row of the sheet.
var Header = []string{ //nolint:gochecknoglobals
	"Name", "Base Spirit", "Glass", "Ingredients", "Preview", "Instructions", "Garnish", "Notes",
}

// Write encodes recipes as an xlsx workbook to w, one row per recipe in the given order.
func Write(w io.Writer, recipes []domain.Recipe) error {
	f, err := build(recipes)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// WriteFile writes recipes to an xlsx file at path. A failed write leaves no file behind.
func WriteFile(path string, recipes []domain.Recipe) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".xlsx" {
		return fmt.Errorf("%w, got %q", ErrUnsupportedExtension, filepath.Base(path))
	}

	return writeFile(path, func(w io.Writer) error { return Write(w, recipes) })
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := write(file); err != nil {
		_ = file.Close()

		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

func build(recipes []domain.Recipe) (_ *excelize.File, err error) {
	f := excelize.NewFile()

	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	// StreamWriter keeps memory flat for large menus
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet: %w", err)
	}

	header := make([]any, 0, len(Header))
	for _, title := range Header {
		header = append(header, title)
	}

	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, recipe := range recipes {
		row := []any{
			recipe.Name,
			recipe.BaseSpirit,
			recipe.Glass,
			strings.Join(recipe.Ingredients, "\n"),
			menu.PreviewIngredients(recipe.Ingredients),
			recipe.Instructions,
			recipe.Garnish,
			recipe.Notes,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}

		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", recipe.Name, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush sheet: %w", err)
	}

	return f, nil
}

// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package export

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/janderssonse/shaker/internal/domain"
)

func sampleRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			Name:         "Daiquiri",
			BaseSpirit:   "Rum",
			Ingredients:  []string{"2 oz white rum", "1 oz lime juice"},
			Instructions: "Shake with ice.",
			Glass:        "Coupe",
			Garnish:      "Lime wheel",
		},
		{
			Name:         "Dry Martini",
			BaseSpirit:   "Gin",
			Ingredients:  []string{"2½ oz gin", "½ oz dry vermouth"},
			Instructions: "Stir with ice.",
			Glass:        "Martini",
			Notes:        "Very cold.",
		},
	}
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)

	return rows
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleRecipes()))

	rows := readRows(t, buf.Bytes())
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{
		"Daiquiri", "Rum", "Coupe", "2 oz white rum\n1 oz lime juice", "white rum, lime juice",
		"Shake with ice.", "Lime wheel",
	}, rows[1])
	assert.Equal(t, "Dry Martini", rows[2][0])
	assert.Equal(t, "gin, dry vermouth", rows[2][4])
	assert.Equal(t, "Very cold.", rows[2][7])
}

func TestWriteEmptyMenu(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	rows := readRows(t, buf.Bytes())
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "menu.xlsx")

	require.NoError(t, WriteFile(path, sampleRecipes()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer func() { _ = f.Close() }()

	name, err := f.GetCellValue(SheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Dry Martini", name)

	require.ErrorIs(t, WriteFile(filepath.Join(dir, "menu.csv"), sampleRecipes()), ErrUnsupportedExtension)
	require.Error(t, WriteFile(filepath.Join(dir, "missing", "menu.xlsx"), sampleRecipes()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportsWriterErrors(t *testing.T) {
	t.Parallel()

	err := Write(failingWriter{}, sampleRecipes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "menu.xlsx")
	failure := errors.New("disk full")

	err := writeFile(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("PK"))

		return failure
	})

	require.ErrorIs(t, err, failure)
	assert.NoFileExists(t, path)
}

func TestWriteFileKeepsOutputOnSuccess(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "menu.xlsx")

	require.NoError(t, writeFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("PK"))

		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data))
}

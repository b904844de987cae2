// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes human messages to stderr and command results to stdout.
package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when ANSI styling is used.
type ColorMode string

// Color modes accepted by --color.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidColorMode is returned for --color values other than auto, always or never.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode validates a --color value. The empty string means auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(value)); mode {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return mode, nil
	default:
		return ColorAuto, fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColorMode, value)
	}
}

// OutputState holds global output configuration.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool
	Color   ColorMode

	// Out receives results, Err receives messages. Nil means os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

// DefaultOutput provides output formatting utilities.
var DefaultOutput = &OutputState{} //nolint:gochecknoglobals

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, plain bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Plain = plain
}

func (o *OutputState) stdout() io.Writer {
	if o.Out != nil {
		return o.Out
	}

	return os.Stdout
}

func (o *OutputState) stderr() io.Writer {
	if o.Err != nil {
		return o.Err
	}

	return os.Stderr
}

// IsTTY checks if output is going to a terminal (not piped/redirected).
func (o *OutputState) IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec
}

// StdoutIsTTY reports whether results go to a terminal. Writers other than os.Stdout never do.
func (o *OutputState) StdoutIsTTY() bool {
	f, ok := o.stdout().(*os.File)

	return ok && o.IsTTY(f.Fd())
}

// ColorEnabled reports whether styled output should be produced.
func (o *OutputState) ColorEnabled() bool {
	if o.JSON || o.Plain {
		return false
	}

	switch o.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// Check no-color.org standards
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	return o.StdoutIsTTY()
}

// Bold formats text with bold when colored, uppercase when piped.
func (o *OutputState) Bold(text string) string {
	if o.JSON || o.Plain {
		return text
	}

	if o.ColorEnabled() {
		return "\033[1m" + text + "\033[0m"
	}

	return strings.ToUpper(text)
}

// Header formats section headers consistently.
func (o *OutputState) Header(text string) string {
	return o.Bold(text)
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), format+"\n", args...)
	}
}

// Successf writes success messages to stderr (only if not JSON/Plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr (always visible unless plain mode).
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "warning: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.stderr(), "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "error: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.stderr(), "✗ "+format+"\n", args...)
	}
}

// Result writes command results to stdout.
func (o *OutputState) Result(data any) {
	_, _ = fmt.Fprintf(o.stdout(), "%v\n", data)
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{
		"status": status,
	}
	maps.Copy(result, data)

	encoder := json.NewEncoder(o.stdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		_, _ = fmt.Fprintf(o.stderr(), "error encoding JSON: %v\n", err)
	}
}

// ErrorResult reports a failed command. In JSON mode the error is also written to stdout
// so scripts reading the result see it.
func (o *OutputState) ErrorResult(message string, code int) {
	if o.JSON {
		o.JSONResult("error", map[string]any{
			"error": message,
			"code":  code,
		})
	}

	o.Errorf("%s", message)
}

// PlainList outputs a simple list of items, one per line.
func (o *OutputState) PlainList(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintf(o.stdout(), "%s\n", item)
	}
}

// PlainValue outputs a single value.
func (o *OutputState) PlainValue(value string) {
	_, _ = fmt.Fprintf(o.stdout(), "%s\n", value)
}

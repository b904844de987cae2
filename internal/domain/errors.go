// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors.
var (
	ErrInvalidRecipe   = errors.New("invalid recipe")
	ErrDuplicateRecipe = errors.New("duplicate recipe")
	ErrEmptyDataset    = errors.New("dataset contains no recipes")
	ErrRecipeNotFound  = errors.New("recipe not found")
)

// ExitError carries a process exit code alongside a user-facing message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

// GetErrorInfo analyzes an error and returns user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	switch {
	case err == nil:
		return ErrorInfo{}
	case errors.Is(err, ErrRecipeNotFound):
		return ErrorInfo{
			Message:     "No such cocktail",
			Suggestions: []string{"Check the spelling", "Use 'shaker list --search <text>' to find it"},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrInvalidRecipe), errors.Is(err, ErrDuplicateRecipe), errors.Is(err, ErrEmptyDataset):
		return ErrorInfo{
			Message:     "Recipe dataset is malformed",
			Suggestions: []string{"Every recipe needs a unique name and at least one ingredient"},
			ShowDetails: true,
		}
	}

	lower := strings.ToLower(err.Error())

	switch {
	case strings.Contains(lower, "permission"), strings.Contains(lower, "denied"):
		return ErrorInfo{
			Message:     "Permission denied",
			Suggestions: []string{"Check that the file is readable and its directory writable"},
			ShowDetails: verbose,
		}
	case strings.Contains(lower, "no such file"):
		return ErrorInfo{
			Message:     "File not found",
			Suggestions: []string{"Check the path passed to --data or --config"},
			ShowDetails: verbose,
		}
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) > 0 && !verbose:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	case len(info.Suggestions) > 0:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}

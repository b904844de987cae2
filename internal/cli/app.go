// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli wires the shaker commands: scripting-friendly list, show, spirits and
// export commands, config management, and the interactive browser.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/urfave/cli/v3"

	"github.com/janderssonse/shaker/internal/catalog"
	"github.com/janderssonse/shaker/internal/config"
	"github.com/janderssonse/shaker/internal/console"
	"github.com/janderssonse/shaker/internal/domain"
	"github.com/janderssonse/shaker/internal/tui"
)

// Exit codes follow standard Unix conventions for better scripting support.
// Range 0-125 are safe to use (126+ have special meaning in shells).
const (
	// Standard Unix exit codes (0-10).
	ExitSuccess         = 0 // Operation completed successfully
	ExitGeneralError    = 1 // Generic failure (catch-all)
	ExitUsageError      = 2 // Invalid command line usage
	ExitConfigError     = 3 // Configuration file error
	ExitPermissionError = 4 // Permission denied
	ExitNotFoundError   = 5 // Requested recipe, spirit or file not found

	// System errors (10-19).
	ExitSystemError    = 12 // System call failed
	ExitInterruptError = 14 // User interrupted (Ctrl+C)

	// Application-specific errors (20-29).
	ExitDataError   = 20 // Recipe dataset could not be loaded
	ExitExportError = 21 // Workbook could not be written
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev" //nolint:gochecknoglobals

// LaunchFunc starts the interactive browser.
type LaunchFunc func(ctx context.Context, cat *catalog.Catalog, cfg config.Config) error

// CLI holds the command tree and the global flag values shared by every command.
type CLI struct {
	app    *cli.Command
	output *console.OutputState
	launch LaunchFunc

	verbose    bool
	json       bool
	plain      bool
	color      string // "auto", "always", "never"
	dataPath   string
	configPath string
}

// NewCLI creates the shaker command writing to the process stdout and stderr.
func NewCLI() *CLI {
	return newCLI(console.DefaultOutput, tui.LaunchInteractive)
}

func newCLI(output *console.OutputState, launch LaunchFunc) *CLI {
	app := &CLI{
		output: output,
		launch: launch,
	}

	app.app = &cli.Command{
		Name:    "shaker",
		Usage:   "Browse a cocktail menu from the terminal",
		Version: Version,
		Suggest: true,
		Description: `Search the cocktail menu by name or ingredient, narrow it down by base spirit
and open any recipe for the full instructions.

Run without a command to start the interactive browser.

EXAMPLES:
  shaker                              # Interactive browser
  shaker list --search lime           # Cocktails with lime
  shaker list --spirit Gin --all      # Every gin cocktail
  shaker show Negroni                 # Full recipe
  shaker export --output menu.xlsx    # Spreadsheet of the menu
  shaker --data bar.yaml list         # Use your own recipes`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "data",
				Usage:       "recipe dataset (`FILE` ending in .json, .yaml, .yml or .toml)",
				Destination: &app.dataPath,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "config `FILE` (default: $XDG_CONFIG_HOME/shaker/config.toml)",
				Sources:     cli.EnvVars(config.EnvConfigPath),
				Destination: &app.configPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages to stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       string(console.ColorAuto),
				Destination: &app.color,
			},
		},
		Before:   app.initConfig,
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	if output.Out != nil {
		app.app.Writer = output.Out
	}

	if output.Err != nil {
		app.app.ErrWriter = output.Err
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig validates the global flags and applies them to the output state.
// It runs again for each subcommand since global flags may follow the command name.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	mode, err := console.ParseColorMode(app.color)
	if err != nil {
		return ctx, domain.NewExitError(ExitUsageError, "invalid --color value: must be auto, always, or never", err)
	}

	app.output.SetMode(app.verbose, app.json, app.plain)
	app.output.Color = mode

	return ctx, nil
}

// defaultAction starts the interactive browser when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitUsageError,
			fmt.Sprintf("unknown command %q, run 'shaker --help' for usage", cmd.Args().First()), nil)
	}

	return app.runTUI(ctx)
}

func (app *CLI) runTUI(ctx context.Context) error {
	cfg, cat, err := app.load()
	if err != nil {
		return err
	}

	app.output.Progressf("Starting browser with %d cocktails", cat.Len())

	err = app.launch(ctx, cat, cfg)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, tui.ErrNoTerminal):
		return domain.NewExitError(ExitUsageError,
			"the browser needs an interactive terminal, use 'shaker list' when piping output", err)
	case errors.Is(err, context.Canceled):
		return domain.NewExitError(ExitInterruptError, "interrupted", err)
	default:
		return domain.NewExitError(ExitGeneralError, fmt.Sprintf("browser failed: %v", err), err)
	}
}

// resolveConfigPath returns --config (or SHAKER_CONFIG), else the XDG default.
func (app *CLI) resolveConfigPath() string {
	if app.configPath != "" {
		return config.ExpandPath(app.configPath)
	}

	return config.GetConfigPath()
}

func (app *CLI) loadConfig() (config.Config, error) {
	path := app.resolveConfigPath()
	app.output.Progressf("Reading config from %s", path)

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, domain.NewExitError(ExitConfigError, fmt.Sprintf("failed to load config %s: %v", path, err), err)
	}

	return cfg, nil
}

// load reads the config and the dataset it (or --data) points at.
func (app *CLI) load() (config.Config, *catalog.Catalog, error) {
	cfg, err := app.loadConfig()
	if err != nil {
		return cfg, nil, err
	}

	path := cfg.Data
	if app.dataPath != "" {
		path = config.ExpandPath(app.dataPath)
	}

	if path == "" {
		app.output.Progressf("Using bundled recipes")
	} else {
		app.output.Progressf("Loading recipes from %s", path)
	}

	cat, err := catalog.LoadOrDefault(path)
	if err != nil {
		return cfg, nil, app.datasetError(path, err)
	}

	return cfg, cat, nil
}

func (app *CLI) datasetError(path string, err error) error {
	message := fmt.Sprintf("cannot load recipes from %s\n%s", path, domain.FormatErrorMessage(err, app.verbose))

	switch {
	case errors.Is(err, catalog.ErrUnsupportedFormat):
		return domain.NewExitError(ExitUsageError, message, err)
	case errors.Is(err, fs.ErrNotExist):
		return domain.NewExitError(ExitNotFoundError, message, err)
	case errors.Is(err, fs.ErrPermission):
		return domain.NewExitError(ExitPermissionError, message, err)
	default:
		return domain.NewExitError(ExitDataError, message, err)
	}
}

// Fail reports err in the active output mode and returns the process exit code.
// Errors that carry no exit code come from flag parsing and count as usage errors.
func (app *CLI) Fail(err error) int {
	code, message := ExitUsageError, err.Error()

	exitErr := &domain.ExitError{}
	if errors.As(err, &exitErr) {
		code, message = exitErr.Code, exitErr.Message
	}

	app.output.ErrorResult(message, code)

	return code
}

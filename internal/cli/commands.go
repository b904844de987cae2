// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/janderssonse/shaker/internal/catalog"
	"github.com/janderssonse/shaker/internal/config"
	"github.com/janderssonse/shaker/internal/domain"
	"github.com/janderssonse/shaker/internal/export"
	"github.com/janderssonse/shaker/internal/menu"
	"github.com/janderssonse/shaker/internal/stringutil"
)

const (
	previewWidth  = 60
	defaultWrap   = 80
	maxWrap       = 100
	noTTYStyle    = "notty"
	emptyListText = "No cocktails found"
)

// listItem is the JSON shape of one row of `shaker list`.
type listItem struct {
	Name       string `json:"name"`
	BaseSpirit string `json:"baseSpirit"`
	Glass      string `json:"glass"`
	Preview    string `json:"preview"`
}

func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createListCommand(),
		app.createShowCommand(),
		app.createSpiritsCommand(),
		app.createExportCommand(),
		app.createConfigCommand(),
		app.createTUICommand(),
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "match cocktail names and ingredients containing `TEXT`",
		},
		&cli.StringFlag{
			Name:  "spirit",
			Usage: "only include cocktails with this base `SPIRIT`",
		},
	}
}

func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List cocktails matching a search and spirit filter",
		Description: `Prints one page of the filtered menu, sorted by name, with a short
ingredient preview. The page size comes from page_size in the config.`,
		Flags: append(filterFlags(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "show at most `N` cocktails (default: page_size)",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "show every matching cocktail",
			},
		),
		Before: app.initConfig,
		Action: app.runList,
	}
}

func (app *CLI) runList(_ context.Context, cmd *cli.Command) error {
	cfg, cat, err := app.load()
	if err != nil {
		return err
	}

	filtered, err := app.filter(cat, cmd)
	if err != nil {
		return err
	}

	limit := cfg.PageSize

	if cmd.IsSet("limit") {
		limit = int(cmd.Int("limit"))
		if limit <= 0 {
			return domain.NewExitError(ExitUsageError, "--limit must be a positive number", nil)
		}
	}

	if cmd.Bool("all") {
		limit = len(filtered)
	}

	app.printList(cfg.Title, menu.Page(filtered, limit), len(filtered))

	return nil
}

// filter applies --search and --spirit to the catalog.
func (app *CLI) filter(cat *catalog.Catalog, cmd *cli.Command) ([]domain.Recipe, error) {
	spirit, err := resolveSpirit(cat, cmd.String("spirit"))
	if err != nil {
		return nil, err
	}

	query := cmd.String("search")
	app.output.Progressf("Filtering %d cocktails (search %q, spirit %s)", cat.Len(), query, menu.SpiritLabel(spirit))

	return menu.Filter(cat.Recipes(), query, spirit), nil
}

// resolveSpirit maps a --spirit value onto the catalog's spelling of that spirit.
func resolveSpirit(cat *catalog.Catalog, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") || strings.EqualFold(value, menu.AllSpiritsLabel) {
		return menu.AllSpirits, nil
	}

	for _, spirit := range cat.Spirits() {
		if strings.EqualFold(spirit, value) {
			return spirit, nil
		}
	}

	return "", domain.NewExitError(ExitNotFoundError,
		fmt.Sprintf("unknown spirit %q, run 'shaker spirits' to see the options", value), nil)
}

func (app *CLI) printList(title string, page []domain.Recipe, total int) {
	switch {
	case app.output.JSON:
		items := make([]listItem, 0, len(page))
		for _, recipe := range page {
			items = append(items, listItem{
				Name:       recipe.Name,
				BaseSpirit: recipe.BaseSpirit,
				Glass:      recipe.Glass,
				Preview:    menu.PreviewIngredients(recipe.Ingredients),
			})
		}

		app.output.JSONResult("success", map[string]any{
			"total":   total,
			"count":   len(page),
			"hasMore": len(page) < total,
			"recipes": items,
		})
	case app.output.Plain:
		for _, recipe := range page {
			app.output.PlainValue(strings.Join([]string{
				recipe.Name, recipe.BaseSpirit, menu.PreviewIngredients(recipe.Ingredients),
			}, "\t"))
		}
	default:
		app.output.Result(app.output.Header(title))

		if len(page) == 0 {
			app.output.Result(emptyListText)

			return
		}

		nameWidth, spiritWidth := 0, 0
		for _, recipe := range page {
			nameWidth = max(nameWidth, runewidth.StringWidth(recipe.Name))
			spiritWidth = max(spiritWidth, runewidth.StringWidth(recipe.BaseSpirit))
		}

		for _, recipe := range page {
			app.output.Result(fmt.Sprintf("%s %s  %s  %s",
				menu.IconForSpirit(recipe.BaseSpirit),
				stringutil.PadRight(recipe.Name, nameWidth),
				stringutil.PadRight(recipe.BaseSpirit, spiritWidth),
				stringutil.Truncate(menu.PreviewIngredients(recipe.Ingredients), previewWidth)))
		}

		if len(page) < total {
			app.output.Result(fmt.Sprintf("\nShowing %d of %d cocktails, use --all to see the rest", len(page), total))
		}
	}
}

func (app *CLI) createShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the full recipe for one cocktail",
		ArgsUsage: "NAME",
		Description: `Names match exactly first, then case-insensitively. Multi-word names
need no quoting: shaker show dry martini`,
		Before: app.initConfig,
		Action: app.runShow,
	}
}

func (app *CLI) runShow(_ context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if name == "" {
		return domain.NewExitError(ExitUsageError, "missing cocktail name, usage: shaker show NAME", nil)
	}

	_, cat, err := app.load()
	if err != nil {
		return err
	}

	recipe, err := cat.Lookup(name)
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return domain.NewExitError(ExitNotFoundError,
			fmt.Sprintf("cannot show %q\n%s", name, domain.FormatErrorMessage(err, app.verbose)), err)
	}

	if err != nil {
		return domain.NewExitError(ExitGeneralError, err.Error(), err)
	}

	switch {
	case app.output.JSON:
		app.output.JSONResult("success", map[string]any{"recipe": recipe})
	case app.output.Plain || !app.output.StdoutIsTTY():
		app.output.Result(strings.TrimRight(menu.PlainText(recipe), "\n"))
	default:
		rendered, err := app.renderMarkdown(menu.Markdown(recipe), terminalWidth())
		if err != nil {
			app.output.Warningf("Markdown rendering failed, showing plain text: %v", err)
			app.output.Result(strings.TrimRight(menu.PlainText(recipe), "\n"))

			return nil
		}

		app.output.Result(strings.TrimRight(rendered, "\n"))
	}

	return nil
}

// renderMarkdown renders with glamour, using the unstyled theme when color is off.
func (app *CLI) renderMarkdown(markdown string, width int) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}

	if app.output.ColorEnabled() {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(noTTYStyle))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return out, nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec
	if err != nil || width <= 0 {
		return defaultWrap
	}

	return min(width, maxWrap)
}

func (app *CLI) createSpiritsCommand() *cli.Command {
	return &cli.Command{
		Name:   "spirits",
		Usage:  "List the base spirits on the menu",
		Before: app.initConfig,
		Action: app.runSpirits,
	}
}

func (app *CLI) runSpirits(_ context.Context, _ *cli.Command) error {
	_, cat, err := app.load()
	if err != nil {
		return err
	}

	spirits := cat.Spirits()

	switch {
	case app.output.JSON:
		app.output.JSONResult("success", map[string]any{
			"count":   len(spirits),
			"spirits": spirits,
		})
	case app.output.Plain:
		app.output.PlainList(spirits)
	default:
		width := 0
		for _, spirit := range spirits {
			width = max(width, runewidth.StringWidth(spirit))
		}

		for _, spirit := range spirits {
			count := len(menu.Filter(cat.Recipes(), "", spirit))
			app.output.Result(fmt.Sprintf("%s %s  %d", menu.IconForSpirit(spirit), stringutil.PadRight(spirit, width), count))
		}
	}

	return nil
}

func (app *CLI) createExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the filtered menu to an Excel workbook",
		Flags: append(filterFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "workbook `FILE` to write, must end in .xlsx",
			},
		),
		Before: app.initConfig,
		Action: app.runExport,
	}
}

func (app *CLI) runExport(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if path == "" {
		return domain.NewExitError(ExitUsageError, "missing --output FILE.xlsx", nil)
	}

	_, cat, err := app.load()
	if err != nil {
		return err
	}

	recipes, err := app.filter(cat, cmd)
	if err != nil {
		return err
	}

	if err := export.WriteFile(path, recipes); err != nil {
		message := fmt.Sprintf("export failed: %v", err)

		switch {
		case errors.Is(err, export.ErrUnsupportedExtension):
			return domain.NewExitError(ExitUsageError, message, err)
		case errors.Is(err, fs.ErrPermission):
			return domain.NewExitError(ExitPermissionError, message, err)
		default:
			return domain.NewExitError(ExitExportError, message, err)
		}
	}

	switch {
	case app.output.JSON:
		app.output.JSONResult("success", map[string]any{"file": path, "count": len(recipes)})
	case app.output.Plain:
		app.output.PlainValue(path)
	default:
		app.output.Successf("Exported %d cocktails to %s", len(recipes), path)
	}

	return nil
}

func (app *CLI) createConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "overwrite an existing file",
					},
				},
				Before: app.initConfig,
				Action: app.runConfigInit,
			},
			{
				Name:   "path",
				Usage:  "Print where the configuration file is read from",
				Before: app.initConfig,
				Action: app.runConfigPath,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Before: app.initConfig,
				Action: app.runConfigShow,
			},
		},
	}
}

func (app *CLI) runConfigInit(_ context.Context, cmd *cli.Command) error {
	path := app.resolveConfigPath()

	if err := config.WriteDefault(path, cmd.Bool("force")); err != nil {
		switch {
		case errors.Is(err, config.ErrConfigExists):
			return domain.NewExitError(ExitConfigError,
				fmt.Sprintf("config already exists at %s, use --force to overwrite", path), err)
		case errors.Is(err, fs.ErrPermission):
			return domain.NewExitError(ExitPermissionError, fmt.Sprintf("cannot write %s: %v", path, err), err)
		default:
			return domain.NewExitError(ExitConfigError, fmt.Sprintf("cannot write %s: %v", path, err), err)
		}
	}

	switch {
	case app.output.JSON:
		app.output.JSONResult("success", map[string]any{"path": path})
	case app.output.Plain:
		app.output.PlainValue(path)
	default:
		app.output.Successf("Wrote default config to %s", path)
	}

	return nil
}

func (app *CLI) runConfigPath(_ context.Context, _ *cli.Command) error {
	path := app.resolveConfigPath()

	if app.output.JSON {
		_, err := os.Stat(path)
		app.output.JSONResult("success", map[string]any{"path": path, "exists": err == nil})

		return nil
	}

	app.output.PlainValue(path)

	return nil
}

func (app *CLI) runConfigShow(_ context.Context, _ *cli.Command) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return domain.NewExitError(ExitGeneralError, err.Error(), err)
	}

	if app.output.JSON {
		app.output.JSONResult("success", map[string]any{
			"path":   app.resolveConfigPath(),
			"config": string(data),
		})

		return nil
	}

	app.output.Result(strings.TrimRight(string(data), "\n"))

	return nil
}

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"browse"},
		Usage:   "Start the interactive browser",
		Before:  app.initConfig,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.runTUI(ctx)
		},
	}
}

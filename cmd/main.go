// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for Shaker.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/janderssonse/shaker/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewCLI()

	if err := app.Run(ctx, os.Args); err != nil {
		return app.Fail(err)
	}

	return cli.ExitSuccess
}

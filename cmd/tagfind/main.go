package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/tagfind/internal/cli"
	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/logging"
	"github.com/indaco/tagfind/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.FprintError(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	app := cli.New(cfg, logger)
	return app.Run(context.Background(), args)
}

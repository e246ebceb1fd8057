package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/indaco/tagfind/internal/commands/find"
	"github.com/indaco/tagfind/internal/commands/initialize"
	rootcmd "github.com/indaco/tagfind/internal/commands/root"
	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/logging"
	"github.com/indaco/tagfind/internal/printer"
	"github.com/indaco/tagfind/internal/tui"
	"github.com/indaco/tagfind/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the tagfind cli.
// cfg is replaced in place when --config names another file, so subcommands
// holding the pointer see the final configuration.
func New(cfg *config.Config, logger *log.Logger) *urfavecli.Command {
	var noColorFlag bool

	return &urfavecli.Command{
		Name:                  "tagfind",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Discover the Marko taglibs visible from a directory",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a .yaml or .toml configuration file",
			},
			&urfavecli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: " + strings.Join(logging.ValidLevels, ", "),
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)

			if path := cmd.String("config"); path != "" {
				loaded, err := config.LoadFrom(path)
				if err != nil {
					return ctx, err
				}
				*cfg = *loaded
			}

			level := logging.ResolveLevel(cmd.String("log-level"), cfg.LogLevel)
			if !logging.IsValidLevel(level) {
				return ctx, fmt.Errorf("invalid log level %q (valid: %s)", level, strings.Join(logging.ValidLevels, ", "))
			}
			logger.SetLevel(logging.ParseLevel(level))
			logger.Debug("configuration loaded", "source", cfg.Source, "manifest", cfg.Manifest, "components-dir", cfg.ComponentsDir)

			theme := cfg.Theme
			if noColorFlag {
				theme = tui.PlainTheme
			}
			if theme != "" && !tui.IsValidTheme(theme) {
				logger.Warn("unknown theme, using default", "theme", theme, "valid", strings.Join(tui.ThemeNames(), ", "))
			}
			tui.SetTheme(theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(),
			find.Run(cfg, logger),
			rootcmd.Run(cfg, logger),
		},
	}
}

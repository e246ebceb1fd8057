package find

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/core"
	"github.com/indaco/tagfind/internal/finder"
	"github.com/indaco/tagfind/internal/taglib"
	"github.com/indaco/tagfind/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "find" command.
func Run(cfg *config.Config, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "find",
		Aliases:   []string{"ls"},
		Usage:     "List the taglibs visible from a directory",
		ArgsUsage: "[dir]",
		UsageText: `tagfind find [options] [dir]

Walks from dir (default: current directory) up to the enclosing package root,
collecting taglib manifests and components directories on the way, then adds
the taglibs shipped by the root package's dependencies.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only show summary",
			},
			&cli.StringSliceFlag{
				Name:    "exclude-dir",
				Aliases: []string{"x"},
				Usage:   "Skip a directory during the walk (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude-package",
				Usage: "Skip a dependency during resolution (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "register",
				Aliases: []string{"r"},
				Usage:   "Append the taglib at this manifest path to the results (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Skip interactive prompts",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runFindCmd(ctx, cmd, cfg, logger)
		},
	}
}

// runFindCmd executes the find command.
func runFindCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config, logger *log.Logger) error {
	startDir, err := filepath.Abs(startDirArg(cmd))
	if err != nil {
		return fmt.Errorf("failed to resolve start directory: %w", err)
	}

	fs := core.NewOSFileSystem()
	f := finder.New(fs, finder.Options{
		ManifestName:  cfg.Manifest,
		ComponentsDir: cfg.ComponentsDir,
		Logger:        logger,
	})

	flagDirs := cmd.StringSlice("exclude-dir")
	flagPackages := cmd.StringSlice("exclude-package")
	if err := applyExclusions(f, cfg, flagDirs, flagPackages); err != nil {
		return err
	}

	registered, err := loadRegistered(ctx, taglib.NewLoader(fs), cmd.StringSlice("register"))
	if err != nil {
		return err
	}

	format := ParseOutputFormat(cmd.String("format"))
	quiet := cmd.Bool("quiet")
	noInteractive := cmd.Bool("no-interactive")

	var found []*taglib.Taglib
	search := func(ctx context.Context) error {
		var err error
		found, err = f.Find(ctx, startDir, registered)
		return err
	}
	if format == FormatText && !quiet && !noInteractive {
		err = tui.Spin(ctx, "Discovering taglibs...", search)
	} else {
		err = search(ctx)
	}
	if err != nil {
		return err
	}

	result := &Result{StartDir: startDir, Taglibs: found, Registered: len(registered)}
	out := cmd.Root().Writer

	if quiet {
		printQuietSummary(out, result)
	} else {
		fmt.Fprint(out, NewFormatter(format).FormatResult(result))
	}

	if !noInteractive && format == FormatText {
		workflow := NewWorkflow(NewPrompter(), out)
		if _, err := workflow.Run(ctx, cfg, flagDirs, flagPackages); err != nil {
			return err
		}
	}

	return nil
}

func startDirArg(cmd *cli.Command) string {
	if dir := cmd.Args().First(); dir != "" {
		return dir
	}
	return "."
}

// applyExclusions registers configured and flag exclusions on f. Configured
// directories resolve against the config file's directory, flag directories
// against the working directory.
func applyExclusions(f *finder.Finder, cfg *config.Config, flagDirs, flagPackages []string) error {
	base, err := cfg.BaseDir()
	if err != nil {
		return fmt.Errorf("failed to resolve config directory: %w", err)
	}
	for _, d := range cfg.ResolvedExcludeDirs(base) {
		f.ExcludeDir(d)
	}

	for _, d := range flagDirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return fmt.Errorf("failed to resolve excluded directory %q: %w", d, err)
		}
		f.ExcludeDir(abs)
	}

	for _, p := range cfg.ExcludePackages {
		f.ExcludePackage(p)
	}
	for _, p := range flagPackages {
		f.ExcludePackage(p)
	}

	return nil
}

// loadRegistered loads each manifest passed with --register, in order.
func loadRegistered(ctx context.Context, loader *taglib.Loader, paths []string) ([]*taglib.Taglib, error) {
	registered := make([]*taglib.Taglib, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve registered taglib %q: %w", p, err)
		}
		t, err := loader.LoadFromFile(ctx, abs, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to register taglib: %w", err)
		}
		registered = append(registered, t)
	}
	return registered, nil
}

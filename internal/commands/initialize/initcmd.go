// Package initialize implements the "tagfind init" command.
package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/printer"
	"github.com/indaco/tagfind/internal/tui"
	"github.com/urfave/cli/v3"
)

// ErrConfigExists is returned when the target file exists and overwriting was not allowed.
var ErrConfigExists = errors.New("configuration file already exists")

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
	Input(title, description, placeholder string, validate func(string) error) (string, error)
}

type tuiPrompter struct{}

func (tuiPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

func (tuiPrompter) Input(title, description, placeholder string, validate func(string) error) (string, error) {
	return tui.Input(title, description, placeholder, validate)
}

// Swapped in tests.
var (
	isInteractive = tui.IsInteractive
	newPrompter   = func() Prompter { return tuiPrompter{} }
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a " + config.DefaultYAMLFile + " configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept defaults without prompting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var prompter Prompter
			if !cmd.Bool("yes") && isInteractive() {
				prompter = newPrompter()
			}
			path, err := runInit(ctx, prompter, config.DefaultYAMLFile, cmd.Bool("force"))
			if err != nil {
				return err
			}
			if path != "" {
				printer.FprintSuccess(cmd.Root().Writer, "Created "+path)
			}
			return nil
		},
	}
}

// runInit writes a configuration file to path. A nil prompter accepts every
// default. It returns the written path, or "" if the user declined to overwrite.
func runInit(_ context.Context, prompter Prompter, path string, force bool) (string, error) {
	if _, err := os.Stat(path); err == nil && !force {
		if prompter == nil {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
		}
		overwrite, err := prompter.Confirm("Overwrite "+path+"?", "The existing configuration will be replaced.")
		if err != nil {
			return "", err
		}
		if !overwrite {
			return "", nil
		}
	}

	cfg := config.Default()
	if prompter != nil {
		if err := promptFields(prompter, cfg); err != nil {
			return "", err
		}
	}

	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}

	saver := config.NewConfigSaver(&commentedMarshaler{}, nil, nil)
	if err := saver.SaveTo(cfg, path); err != nil {
		return "", err
	}
	return path, nil
}

// promptFields asks for the manifest and components directory names.
// Blank answers keep the defaults.
func promptFields(p Prompter, cfg *config.Config) error {
	fields := []struct {
		field       string
		title       string
		description string
		target      *string
	}{
		{"manifest", "Taglib manifest file name", "Looked up in every directory from the start directory to the package root.", &cfg.Manifest},
		{"components-dir", "Components directory name", "Scanned for tags next to each manifest.", &cfg.ComponentsDir},
	}

	for _, f := range fields {
		validate := func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return config.ValidateName(f.field, strings.TrimSpace(s))
		}
		value, err := p.Input(f.title, f.description, *f.target, validate)
		if err != nil {
			return err
		}
		if v := strings.TrimSpace(value); v != "" {
			*f.target = v
		}
	}

	return nil
}

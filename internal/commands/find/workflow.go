package find

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/printer"
	"github.com/indaco/tagfind/internal/tui"
)

const (
	dirOptionPrefix     = "dir:"
	packageOptionPrefix = "pkg:"
)

// Workflow offers to persist the exclusions passed on the command line.
type Workflow struct {
	prompter     Prompter
	out          io.Writer
	interactive  func() bool
	configExists func() bool
	save         func(*config.Config) error
}

// NewWorkflow creates a new workflow handler writing messages to out.
func NewWorkflow(prompter Prompter, out io.Writer) *Workflow {
	return &Workflow{
		prompter:     prompter,
		out:          out,
		interactive:  tui.IsInteractive,
		configExists: config.Exists,
		save:         config.SaveConfigFn,
	}
}

// Run asks whether to save dirs and packages into a new .tagfind.yaml.
// It does nothing when there is nothing to save, a configuration file already
// exists, or the session is not interactive. Returns true if a file was written.
func (w *Workflow) Run(_ context.Context, cfg *config.Config, dirs, packages []string) (bool, error) {
	if len(dirs) == 0 && len(packages) == 0 {
		return false, nil
	}
	if !w.interactive() || w.configExists() {
		return false, nil
	}

	fmt.Fprintln(w.out)
	printer.FprintInfo(w.out, "No "+config.DefaultYAMLFile+" configuration found.")

	save, err := w.prompter.Confirm(
		"Save these exclusions to "+config.DefaultYAMLFile+"?",
		"Future runs from this directory will apply them automatically.",
	)
	if err != nil {
		return false, err
	}
	if !save {
		printer.FprintFaint(w.out, "You can run 'tagfind init' later to create configuration.")
		return false, nil
	}

	options, defaults := buildExclusionOptions(dirs, packages)
	selected, err := w.prompter.MultiSelect(
		"Select exclusions to keep:",
		"Unselected entries only apply to this run.",
		options,
		defaults,
	)
	if err != nil {
		return false, err
	}

	keepDirs, keepPackages := splitSelection(selected)
	if len(keepDirs) == 0 && len(keepPackages) == 0 {
		printer.FprintFaint(w.out, "Nothing selected. No configuration written.")
		return false, nil
	}

	updated := withExclusions(cfg, keepDirs, keepPackages)
	if err := w.save(updated); err != nil {
		return false, fmt.Errorf("failed to save exclusions: %w", err)
	}

	printer.FprintSuccess(w.out, fmt.Sprintf("Saved %d exclusion(s) to %s",
		len(keepDirs)+len(keepPackages), config.DefaultYAMLFile))
	return true, nil
}

// buildExclusionOptions creates huh options with every entry pre-selected.
func buildExclusionOptions(dirs, packages []string) ([]huh.Option[string], []string) {
	options := make([]huh.Option[string], 0, len(dirs)+len(packages))
	defaults := make([]string, 0, len(dirs)+len(packages))

	for _, d := range dirs {
		value := dirOptionPrefix + d
		options = append(options, huh.NewOption("directory "+d, value))
		defaults = append(defaults, value)
	}
	for _, p := range packages {
		value := packageOptionPrefix + p
		options = append(options, huh.NewOption("package "+p, value))
		defaults = append(defaults, value)
	}

	return options, defaults
}

// splitSelection undoes the prefixes added by buildExclusionOptions.
func splitSelection(selected []string) (dirs, packages []string) {
	for _, s := range selected {
		switch {
		case strings.HasPrefix(s, dirOptionPrefix):
			dirs = append(dirs, strings.TrimPrefix(s, dirOptionPrefix))
		case strings.HasPrefix(s, packageOptionPrefix):
			packages = append(packages, strings.TrimPrefix(s, packageOptionPrefix))
		}
	}
	return dirs, packages
}

// withExclusions returns a copy of cfg with dirs and packages appended,
// skipping entries already present.
func withExclusions(cfg *config.Config, dirs, packages []string) *config.Config {
	updated := *cfg
	updated.ExcludeDirs = appendUnique(slices.Clone(cfg.ExcludeDirs), dirs...)
	updated.ExcludePackages = appendUnique(slices.Clone(cfg.ExcludePackages), packages...)
	return &updated
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(list, v) {
			list = append(list, v)
		}
	}
	return list
}

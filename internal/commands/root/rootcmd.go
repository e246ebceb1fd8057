// Package root implements the "tagfind root" command, which reports the
// package boundary that taglib discovery stops at.
package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/core"
	"github.com/indaco/tagfind/internal/pkgroot"
	"github.com/indaco/tagfind/internal/printer"
	"github.com/indaco/tagfind/internal/resolve"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli/v3"
)

// Report describes the discovery boundary of a start directory.
type Report struct {
	StartDir string

	// Package is nil when no package encloses StartDir.
	Package *pkgroot.Package

	// Boundary is where the ancestor walk stops.
	Boundary string

	Dependencies []Dependency
}

// Dependency is one merged dependency name of the root package.
type Dependency struct {
	Name     string
	Manifest string // resolved taglib manifest, empty if none
	Excluded bool
}

// getwd is swapped in tests.
var getwd = os.Getwd

// Run returns the "root" command.
func Run(cfg *config.Config, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "root",
		Usage:     "Show the package root and dependencies used for discovery",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				dir = "."
			}
			startDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve start directory: %w", err)
			}

			report, err := Inspect(ctx, core.NewOSFileSystem(), cfg, logger, startDir)
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			if cmd.String("format") == "json" {
				fmt.Fprintln(out, formatJSON(report))
				return nil
			}
			printText(out, report)
			return nil
		},
	}
}

// Inspect locates the package enclosing startDir and resolves the taglib
// manifest of each of its dependencies.
func Inspect(ctx context.Context, fs core.FileSystem, cfg *config.Config, logger *log.Logger, startDir string) (*Report, error) {
	report := &Report{StartDir: startDir}

	pkg, err := pkgroot.NewLocator(fs).Locate(ctx, startDir)
	if err != nil {
		logger.Debug("no package root", "dir", startDir, "err", err)
		wd, err := getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		report.Boundary = wd
		return report, nil
	}

	report.Package = pkg
	report.Boundary = pkg.Dir

	resolver := resolve.New(fs)
	for _, name := range pkg.DependencyNames() {
		dep := Dependency{Name: name, Excluded: slices.Contains(cfg.ExcludePackages, name)}
		if manifest, ok := resolver.ResolveFrom(ctx, pkg.Dir, filepath.Join(name, cfg.Manifest)); ok {
			dep.Manifest = manifest
		}
		report.Dependencies = append(report.Dependencies, dep)
	}

	return report, nil
}

func printText(w io.Writer, r *Report) {
	if r.Package == nil {
		printer.FprintWarning(w, "No package.json found at or above "+r.StartDir)
		fmt.Fprintf(w, "Discovery stops at the working directory: %s\n", printer.Bold(r.Boundary))
		return
	}

	name := r.Package.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "Package root: %s %s\n", printer.Bold(r.Boundary), printer.Faint(name))

	if len(r.Dependencies) == 0 {
		printer.FprintFaint(w, "No dependencies.")
		return
	}

	fmt.Fprintf(w, "Dependencies (%d):\n", len(r.Dependencies))
	for _, d := range r.Dependencies {
		switch {
		case d.Excluded:
			fmt.Fprintf(w, "  %s %s %s\n", printer.Warning("-"), d.Name, printer.Faint("(excluded)"))
		case d.Manifest != "":
			fmt.Fprintf(w, "  %s %s %s\n", printer.Success("✓"), d.Name, printer.Faint(d.Manifest))
		default:
			fmt.Fprintf(w, "  %s %s\n", printer.Faint("·"), d.Name)
		}
	}
}

func formatJSON(r *Report) string {
	out := "{}"
	out, _ = sjson.Set(out, "start_dir", r.StartDir)
	out, _ = sjson.Set(out, "boundary", r.Boundary)
	out, _ = sjson.Set(out, "has_package", r.Package != nil)
	if r.Package != nil {
		out, _ = sjson.Set(out, "package.name", r.Package.Name)
		out, _ = sjson.Set(out, "package.dir", r.Package.Dir)
	}
	out, _ = sjson.SetRaw(out, "dependencies", "[]")
	for _, d := range r.Dependencies {
		entry := "{}"
		entry, _ = sjson.Set(entry, "name", d.Name)
		entry, _ = sjson.Set(entry, "taglib", d.Manifest)
		entry, _ = sjson.Set(entry, "excluded", d.Excluded)
		out, _ = sjson.SetRaw(out, "dependencies.-1", entry)
	}
	return gjson.Get(out, "@pretty").String()
}

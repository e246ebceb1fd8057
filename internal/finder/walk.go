package finder

import (
	"context"
	"path/filepath"

	"github.com/indaco/tagfind/internal/core"
	"github.com/indaco/tagfind/internal/pkgroot"
	"github.com/indaco/tagfind/internal/taglib"
)

// walk visits startDir and each ancestor up to and including rootDir. If the
// filesystem root comes first, the walk stops there.
func (f *Finder) walk(ctx context.Context, startDir, rootDir string, excluded *exclusions, c *collector) error {
	cur := startDir
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if excluded.dirExcluded(cur) {
			f.logger.Debug("skipping excluded directory", "dir", cur)
		} else if err := f.visit(ctx, cur, excluded, c); err != nil {
			return err
		}

		if cur == rootDir {
			return nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return nil
		}
		cur = parent
	}
}

// visit checks one directory for a manifest and, unless that manifest declares
// its own tags directories, for a components directory.
func (f *Finder) visit(ctx context.Context, dir string, excluded *exclusions, c *collector) error {
	var manifest *taglib.Taglib

	manifestPath := filepath.Join(dir, f.manifestName)
	if core.Exists(ctx, f.fs, manifestPath) {
		t, err := f.loader.LoadFromFile(ctx, manifestPath, taglib.NewDependencyChain(manifestPath))
		if err != nil {
			return err
		}
		manifest = t
		c.add(t)
	}

	if manifest != nil && manifest.HasExplicitTagsDir() {
		return nil
	}

	componentsPath := filepath.Join(dir, f.componentsDir)
	if !core.IsDir(ctx, f.fs, componentsPath) ||
		excluded.dirExcluded(componentsPath) ||
		c.alreadyAdded(componentsPath) {
		return nil
	}

	t := taglib.New(componentsPath)
	chain := taglib.NewDependencyChain(componentsPath)
	if err := f.scanner.ScanTagsDir(ctx, componentsPath, dir, f.componentsDir, t, chain); err != nil {
		return err
	}
	c.add(t)
	return nil
}

// resolveDependencies adds the manifest of every installed dependency of pkg.
// Dependencies that are not installed or ship no manifest contribute nothing.
func (f *Finder) resolveDependencies(ctx context.Context, pkg *pkgroot.Package, excluded *exclusions, c *collector) error {
	if pkg == nil {
		return nil
	}

	for _, name := range pkg.DependencyNames() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if excluded.packageExcluded(name) {
			f.logger.Debug("skipping excluded package", "package", name)
			continue
		}

		manifestPath, ok := f.resolver.ResolveFrom(ctx, pkg.Dir, filepath.Join(name, f.manifestName))
		if !ok {
			f.logger.Debug("dependency has no taglib", "package", name)
			continue
		}

		chain := taglib.NewDependencyChain(filepath.Join(pkg.Dir, core.PackageManifestName), manifestPath)
		t, err := f.loader.LoadFromFile(ctx, manifestPath, chain)
		if err != nil {
			return err
		}
		c.add(t)
	}

	return nil
}

package finder

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/indaco/tagfind/internal/core"
	"github.com/indaco/tagfind/internal/logging"
	"github.com/indaco/tagfind/internal/pkgroot"
	"github.com/indaco/tagfind/internal/resolve"
	"github.com/indaco/tagfind/internal/taglib"
)

// ManifestLoader loads a taglib from a manifest file.
type ManifestLoader interface {
	LoadFromFile(ctx context.Context, path string, chain *taglib.DependencyChain) (*taglib.Taglib, error)
}

// DirScanner populates a taglib from a directory of tags.
type DirScanner interface {
	ScanTagsDir(ctx context.Context, tagsDir, baseDir, convention string, t *taglib.Taglib, chain *taglib.DependencyChain) error
}

// RootLocator finds the package enclosing a directory.
type RootLocator interface {
	Locate(ctx context.Context, dir string) (*pkgroot.Package, error)
}

// ModuleResolver resolves a module-relative request from a base directory.
type ModuleResolver interface {
	ResolveFrom(ctx context.Context, baseDir, request string) (string, bool)
}

// Options configures a Finder. Zero values select the defaults.
type Options struct {
	// ManifestName is the per-directory manifest file (default marko.json).
	ManifestName string

	// ComponentsDir is the conventional tags directory name (default components).
	ComponentsDir string

	// Loader, Scanner, Locator and Resolver replace the disk-backed collaborators.
	Loader   ManifestLoader
	Scanner  DirScanner
	Locator  RootLocator
	Resolver ModuleResolver

	// Getwd returns the fallback root when no package encloses the start directory.
	Getwd func() (string, error)

	Logger *log.Logger
}

// Finder discovers taglibs. One Finder holds the cache and exclusions of one
// compiler session; it is safe for concurrent use.
type Finder struct {
	fs            core.FileSystem
	manifestName  string
	componentsDir string
	loader        ManifestLoader
	scanner       DirScanner
	locator       RootLocator
	resolver      ModuleResolver
	getwd         func() (string, error)
	logger        *log.Logger

	mu       sync.Mutex
	cache    *resultCache
	excluded *exclusions
	// gen advances on ClearCache and Reset. A Find that started under an
	// older generation does not store its result.
	gen uint64
}

// New creates a Finder reading from fs.
func New(fs core.FileSystem, opts Options) *Finder {
	f := &Finder{
		fs:            fs,
		manifestName:  opts.ManifestName,
		componentsDir: opts.ComponentsDir,
		loader:        opts.Loader,
		scanner:       opts.Scanner,
		locator:       opts.Locator,
		resolver:      opts.Resolver,
		getwd:         opts.Getwd,
		logger:        opts.Logger,
		cache:         newResultCache(),
		excluded:      newExclusions(),
	}

	if f.manifestName == "" {
		f.manifestName = core.DefaultManifestName
	}
	if f.componentsDir == "" {
		f.componentsDir = core.DefaultComponentsDir
	}
	if f.loader == nil {
		f.loader = taglib.NewLoader(fs)
	}
	if f.scanner == nil {
		f.scanner = taglib.NewScanner(fs)
	}
	if f.locator == nil {
		f.locator = pkgroot.NewLocator(fs)
	}
	if f.resolver == nil {
		f.resolver = resolve.New(fs)
	}
	if f.getwd == nil {
		f.getwd = os.Getwd
	}
	if f.logger == nil {
		f.logger = logging.Discard()
	}

	return f
}

// Find returns the taglibs visible from dir followed by registered, in order.
// Results are cached by the exact dir string. A malformed manifest anywhere on
// the way aborts the call and nothing is cached. A result computed across a
// ClearCache or Reset is returned to the caller but not cached.
func (f *Finder) Find(ctx context.Context, dir string, registered []*taglib.Taglib) ([]*taglib.Taglib, error) {
	f.mu.Lock()
	if found, ok := f.cache.get(dir); ok {
		f.mu.Unlock()
		f.logger.Debug("taglib cache hit", "dir", dir)
		return slices.Clone(found), nil
	}
	excluded := f.excluded.snapshot()
	gen := f.gen
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pkg := f.locateRoot(ctx, dir)
	rootDir, err := f.rootDir(pkg)
	if err != nil {
		return nil, err
	}

	c := newCollector()
	if err := f.walk(ctx, dir, rootDir, excluded, c); err != nil {
		return nil, fmt.Errorf("discover taglibs from %q: %w", dir, err)
	}
	if err := f.resolveDependencies(ctx, pkg, excluded, c); err != nil {
		return nil, fmt.Errorf("discover taglibs from %q: %w", dir, err)
	}

	found := make([]*taglib.Taglib, 0, len(c.ordered)+len(registered))
	found = append(found, c.ordered...)
	found = append(found, registered...)

	f.mu.Lock()
	if f.gen == gen {
		f.cache.put(dir, found)
	} else {
		f.logger.Debug("cache cleared during discovery, result not cached", "dir", dir)
	}
	f.mu.Unlock()

	return slices.Clone(found), nil
}

// ClearCache evicts every cached result.
func (f *Finder) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache.clear()
	f.gen++
}

// ExcludeDir skips dir (and a components directory at that exact path) in
// future walks. Cached results are not affected.
func (f *Finder) ExcludeDir(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.excluded.excludeDir(dir)
}

// ExcludePackage skips the named dependency in future resolutions.
// Cached results are not affected.
func (f *Finder) ExcludePackage(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.excluded.excludePackage(name)
}

// Reset clears the cache and both exclusion sets.
func (f *Finder) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache.clear()
	f.excluded = newExclusions()
	f.gen++
}

// locateRoot never fails: any locator error means there is no root package.
func (f *Finder) locateRoot(ctx context.Context, dir string) *pkgroot.Package {
	pkg, err := f.locator.Locate(ctx, dir)
	if err != nil {
		f.logger.Debug("no package root", "dir", dir, "err", err)
		return nil
	}
	return pkg
}

func (f *Finder) rootDir(pkg *pkgroot.Package) (string, error) {
	if pkg != nil {
		return pkg.Dir, nil
	}
	wd, err := f.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	f.logger.Debug("using working directory as root", "root", wd)
	return wd, nil
}

// Package pkgroot locates the package that encloses a directory.
package pkgroot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/indaco/tagfind/internal/core"
	"github.com/tidwall/gjson"
)

// ErrNotFound is returned when no package manifest exists at or above a directory.
var ErrNotFound = errors.New("no package manifest found")

// Package is the nearest enclosing package of a directory.
type Package struct {
	// Dir is the package root directory.
	Dir string

	// Name is the declared package name, possibly empty.
	Name string

	Dependencies     []string
	PeerDependencies []string
	DevDependencies  []string
}

// DependencyNames merges runtime, peer and dev dependency names.
// A name keeps the position of its first occurrence.
func (p *Package) DependencyNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, group := range [][]string{p.Dependencies, p.PeerDependencies, p.DevDependencies} {
		for _, name := range group {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Locator finds package roots.
type Locator struct {
	fs           core.FileSystem
	manifestName string
}

// NewLocator creates a Locator looking for package.json files.
func NewLocator(fs core.FileSystem) *Locator {
	return &Locator{fs: fs, manifestName: core.PackageManifestName}
}

// Locate walks up from dir to the first directory holding a package manifest.
// It returns ErrNotFound when the filesystem root is reached first, and a
// parse error when the manifest it finds is not valid JSON.
func (l *Locator) Locate(ctx context.Context, dir string) (*Package, error) {
	cur := dir
	for {
		manifestPath := filepath.Join(cur, l.manifestName)
		if core.IsFile(ctx, l.fs, manifestPath) {
			return l.load(ctx, cur, manifestPath)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, ErrNotFound
		}
		cur = parent
	}
}

func (l *Locator) load(ctx context.Context, dir, manifestPath string) (*Package, error) {
	data, err := l.fs.ReadFile(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", manifestPath, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse %q: invalid JSON", manifestPath)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("failed to parse %q: expected a JSON object", manifestPath)
	}

	return &Package{
		Dir:              dir,
		Name:             doc.Get("name").String(),
		Dependencies:     objectKeys(doc.Get("dependencies")),
		PeerDependencies: objectKeys(doc.Get("peerDependencies")),
		DevDependencies:  objectKeys(doc.Get("devDependencies")),
	}, nil
}

// objectKeys returns the keys of a JSON object in document order.
func objectKeys(obj gjson.Result) []string {
	if !obj.IsObject() {
		return nil
	}
	var keys []string
	obj.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Package resolve locates files inside installed packages using node-style
// nested node_modules lookup.
package resolve

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/indaco/tagfind/internal/core"
)

// Resolver resolves module-relative requests such as "widgets/marko.json".
type Resolver struct {
	fs core.FileSystem
}

// New creates a Resolver reading from fs.
func New(fs core.FileSystem) *Resolver {
	return &Resolver{fs: fs}
}

// ResolveFrom returns the absolute path of request as seen from baseDir.
// Relative and absolute requests are resolved directly. Bare requests are
// looked up in node_modules of baseDir and each of its ancestors, skipping
// directories that are themselves named node_modules.
func (r *Resolver) ResolveFrom(ctx context.Context, baseDir, request string) (string, bool) {
	if request == "" {
		return "", false
	}

	if isPathRequest(request) {
		p := request
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		if core.IsFile(ctx, r.fs, p) {
			return p, true
		}
		return "", false
	}

	for _, dir := range NodeModulesPaths(baseDir) {
		p := filepath.Join(dir, request)
		if core.IsFile(ctx, r.fs, p) {
			return p, true
		}
	}
	return "", false
}

// NodeModulesPaths lists candidate node_modules directories for baseDir,
// nearest first.
func NodeModulesPaths(baseDir string) []string {
	var paths []string
	cur := filepath.Clean(baseDir)
	for {
		if filepath.Base(cur) != core.NodeModulesDir {
			paths = append(paths, filepath.Join(cur, core.NodeModulesDir))
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return paths
		}
		cur = parent
	}
}

func isPathRequest(request string) bool {
	return filepath.IsAbs(request) ||
		request == "." || request == ".." ||
		strings.HasPrefix(request, "./") || strings.HasPrefix(request, "../")
}

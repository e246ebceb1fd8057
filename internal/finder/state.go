package finder

import (
	"maps"

	"github.com/indaco/tagfind/internal/taglib"
)

// resultCache maps an exact starting directory to its discovery result.
type resultCache struct {
	entries map[string][]*taglib.Taglib
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string][]*taglib.Taglib)}
}

func (c *resultCache) get(dir string) ([]*taglib.Taglib, bool) {
	found, ok := c.entries[dir]
	return found, ok
}

func (c *resultCache) put(dir string, found []*taglib.Taglib) {
	c.entries[dir] = found
}

func (c *resultCache) clear() {
	c.entries = make(map[string][]*taglib.Taglib)
}

func (c *resultCache) len() int {
	return len(c.entries)
}

// exclusions holds directories and dependency names skipped by discovery.
type exclusions struct {
	dirs     map[string]struct{}
	packages map[string]struct{}
}

func newExclusions() *exclusions {
	return &exclusions{
		dirs:     make(map[string]struct{}),
		packages: make(map[string]struct{}),
	}
}

func (e *exclusions) excludeDir(dir string)      { e.dirs[dir] = struct{}{} }
func (e *exclusions) excludePackage(name string) { e.packages[name] = struct{}{} }

func (e *exclusions) dirExcluded(dir string) bool {
	_, ok := e.dirs[dir]
	return ok
}

func (e *exclusions) packageExcluded(name string) bool {
	_, ok := e.packages[name]
	return ok
}

// snapshot returns a copy safe to read without holding the Finder lock.
func (e *exclusions) snapshot() *exclusions {
	return &exclusions{
		dirs:     maps.Clone(e.dirs),
		packages: maps.Clone(e.packages),
	}
}

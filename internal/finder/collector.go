package finder

import "github.com/indaco/tagfind/internal/taglib"

// collector accumulates taglibs for a single Find call. The first taglib
// with a given ID wins; later ones are dropped.
type collector struct {
	seen    map[string]struct{}
	ordered []*taglib.Taglib
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

func (c *collector) add(t *taglib.Taglib) {
	if _, ok := c.seen[t.ID]; ok {
		return
	}
	c.seen[t.ID] = struct{}{}
	c.ordered = append(c.ordered, t)
}

// alreadyAdded reports whether a taglib with this ID (or scanned from this path) was added.
func (c *collector) alreadyAdded(id string) bool {
	_, ok := c.seen[id]
	return ok
}

package taglib

import "strings"

// DependencyChain is the trail of files and directories followed to reach a
// manifest. It is immutable; Append returns a new chain.
type DependencyChain struct {
	parts []string
}

// NewDependencyChain returns a chain seeded with parts.
func NewDependencyChain(parts ...string) *DependencyChain {
	return &DependencyChain{parts: append([]string(nil), parts...)}
}

// Append returns a copy of c with part added at the end.
func (c *DependencyChain) Append(part string) *DependencyChain {
	if c == nil {
		return NewDependencyChain(part)
	}
	parts := make([]string, 0, len(c.parts)+1)
	parts = append(parts, c.parts...)
	parts = append(parts, part)
	return &DependencyChain{parts: parts}
}

// Parts returns a copy of the trail.
func (c *DependencyChain) Parts() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.parts...)
}

func (c *DependencyChain) String() string {
	if c == nil {
		return "[]"
	}
	return "[" + strings.Join(c.parts, " → ") + "]"
}

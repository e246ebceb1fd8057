// Package finder resolves the ordered set of taglibs visible from a directory.
//
// A Finder walks from the starting directory up to the enclosing package root,
// picking up marko.json manifests and components directories on the way, then
// adds the manifests shipped by the root package's dependencies. Results are
// deduplicated by taglib ID (first found wins) and cached per starting
// directory until ClearCache or Reset is called.
//
// File organization:
//   - finder.go: Finder type, options and the public operations
//   - walk.go: ancestor walk and dependency resolution
//   - collector.go: per-call ordered, deduplicated accumulator
//   - state.go: result cache and exclusion registry
package finder

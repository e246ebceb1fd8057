package taglib

import "path/filepath"

// Tag is a single custom tag exposed by a taglib.
type Tag struct {
	// Name is the tag name without angle brackets.
	Name string

	// Dir is the directory the tag was found in, if it was scanned.
	Dir string

	// Template is the absolute path to the tag template, if any.
	Template string

	// Renderer is the absolute path to the tag renderer, if any.
	Renderer string

	// DefinitionPath is the absolute path to a tag definition file, if any.
	DefinitionPath string

	// Source records how the tag was found (a tags directory convention or "manifest").
	Source string

	// Chain is the trail that led to the tag, ending with its own path.
	// It is nil for tags declared inline in a manifest.
	Chain *DependencyChain
}

// Taglib is an identity-bearing bundle of tags.
// Descriptors are never modified once discovery has handed them out.
type Taglib struct {
	// ID is the unique identity. Defaults to Path unless the manifest sets taglib-id.
	ID string

	// Path is the manifest file or scanned directory this taglib came from.
	Path string

	// Dir is the directory that relative paths in the manifest resolve against.
	Dir string

	// TagsDirs lists declared tags directories. Nil means the manifest declared none.
	TagsDirs []string

	tags     map[string]*Tag
	tagOrder []string
}

// New returns an empty taglib identified by path.
func New(path string) *Taglib {
	return &Taglib{
		ID:   path,
		Path: path,
		Dir:  filepath.Dir(path),
		tags: make(map[string]*Tag),
	}
}

// HasExplicitTagsDir reports whether the manifest declared tags-dir, even as an empty list.
func (t *Taglib) HasExplicitTagsDir() bool {
	return t.TagsDirs != nil
}

// AddTag registers tag, replacing an earlier tag of the same name in place.
func (t *Taglib) AddTag(tag *Tag) {
	if t.tags == nil {
		t.tags = make(map[string]*Tag)
	}
	if _, exists := t.tags[tag.Name]; !exists {
		t.tagOrder = append(t.tagOrder, tag.Name)
	}
	t.tags[tag.Name] = tag
}

// Tag returns the named tag or nil.
func (t *Taglib) Tag(name string) *Tag {
	return t.tags[name]
}

// TagNames returns tag names in registration order.
func (t *Taglib) TagNames() []string {
	names := make([]string, len(t.tagOrder))
	copy(names, t.tagOrder)
	return names
}

// TagCount returns the number of registered tags.
func (t *Taglib) TagCount() int {
	return len(t.tagOrder)
}

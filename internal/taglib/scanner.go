package taglib

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/indaco/tagfind/internal/core"
)

// Files that turn a child directory into a tag, in lookup order.
var (
	templateFiles   = []string{"index.marko", "template.marko"}
	rendererFiles   = []string{"renderer.js", "index.js"}
	definitionFiles = []string{"marko-tag.json"}
)

const templateExt = ".marko"

// Scanner builds tags from a directory by convention.
type Scanner struct {
	fs core.FileSystem
}

// NewScanner creates a Scanner reading from fs.
func NewScanner(fs core.FileSystem) *Scanner {
	return &Scanner{fs: fs}
}

// ScanTagsDir adds one tag to t for every immediate child of tagsDir that
// looks like a tag: a directory holding a template, renderer or tag
// definition, or a *.marko file. baseDir is only used to make the Source of
// each tag readable; convention names the directory as the user wrote it.
// Every tag carries chain extended with the tag's own path.
func (s *Scanner) ScanTagsDir(ctx context.Context, tagsDir, baseDir, convention string, t *Taglib, chain *DependencyChain) error {
	entries, err := s.fs.ReadDir(ctx, tagsDir)
	if err != nil {
		return &ManifestReadError{Path: tagsDir, Chain: chain, Err: err}
	}

	source := convention
	if rel, err := filepath.Rel(baseDir, tagsDir); err == nil {
		source = rel
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		childPath := filepath.Join(tagsDir, name)

		if !entry.IsDir() {
			if filepath.Ext(name) == templateExt {
				t.AddTag(&Tag{
					Name:     strings.TrimSuffix(name, templateExt),
					Dir:      tagsDir,
					Template: childPath,
					Source:   source,
					Chain:    chain.Append(childPath),
				})
			}
			continue
		}

		tag := &Tag{
			Name:           name,
			Dir:            childPath,
			Template:       s.firstExisting(ctx, childPath, templateFiles),
			Renderer:       s.firstExisting(ctx, childPath, rendererFiles),
			DefinitionPath: s.firstExisting(ctx, childPath, definitionFiles),
			Source:         source,
			Chain:          chain.Append(childPath),
		}
		if tag.Template == "" && tag.Renderer == "" && tag.DefinitionPath == "" {
			continue
		}
		t.AddTag(tag)
	}

	return nil
}

func (s *Scanner) firstExisting(ctx context.Context, dir string, names []string) string {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if core.IsFile(ctx, s.fs, p) {
			return p
		}
	}
	return ""
}

package taglib

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/tagfind/internal/core"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// Manifest keys understood by the loader. Unknown keys are ignored.
const (
	keyTaglibID = "taglib-id"
	keyTagsDir  = "tags-dir"
	keyTags     = "tags"
)

// sourceManifest marks tags declared directly in a manifest.
const sourceManifest = "manifest"

// Loader builds taglibs from manifest files.
type Loader struct {
	fs      core.FileSystem
	scanner *Scanner
}

// NewLoader creates a Loader that reads manifests and tags directories from fs.
func NewLoader(fs core.FileSystem) *Loader {
	return &Loader{fs: fs, scanner: NewScanner(fs)}
}

// LoadFromFile reads the manifest at path and returns its taglib.
// Comments are allowed in the manifest. Declared tags directories are scanned
// immediately, so a missing tags directory fails the load.
func (l *Loader) LoadFromFile(ctx context.Context, path string, chain *DependencyChain) (*Taglib, error) {
	if chain == nil {
		chain = NewDependencyChain(path)
	}

	data, err := l.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &ManifestReadError{Path: path, Chain: chain, Err: err}
	}

	clean := jsonc.ToJSON(data)
	if !gjson.ValidBytes(clean) {
		return nil, &ManifestParseError{Path: path, Chain: chain, Err: syntaxError(clean)}
	}

	root := gjson.ParseBytes(clean)
	if !root.IsObject() {
		return nil, &ManifestParseError{Path: path, Chain: chain, Err: errNotObject}
	}

	t := New(path)
	var fieldErr error
	root.ForEach(func(key, value gjson.Result) bool {
		fieldErr = l.applyField(ctx, t, key.String(), value, chain)
		return fieldErr == nil
	})
	if fieldErr != nil {
		return nil, wrapFieldError(path, chain, fieldErr)
	}

	return t, nil
}

func (l *Loader) applyField(ctx context.Context, t *Taglib, key string, value gjson.Result, chain *DependencyChain) error {
	switch {
	case key == keyTaglibID:
		if value.Type != gjson.String || value.String() == "" {
			return fmt.Errorf("%q must be a non-empty string", keyTaglibID)
		}
		t.ID = value.String()

	case key == keyTagsDir:
		dirs, err := stringList(value)
		if err != nil {
			return fmt.Errorf("%q %w", keyTagsDir, err)
		}
		t.TagsDirs = make([]string, 0, len(dirs))
		for _, dir := range dirs {
			abs := resolvePath(t.Dir, dir)
			t.TagsDirs = append(t.TagsDirs, abs)
			if err := l.scanner.ScanTagsDir(ctx, abs, t.Dir, dir, t, chain.Append(abs)); err != nil {
				return err
			}
		}

	case key == keyTags:
		if !value.IsObject() {
			return fmt.Errorf("%q must be an object", keyTags)
		}
		var tagErr error
		value.ForEach(func(name, def gjson.Result) bool {
			tagErr = addManifestTag(t, name.String(), def)
			return tagErr == nil
		})
		return tagErr

	case strings.HasPrefix(key, "<") && strings.HasSuffix(key, ">") && len(key) > 2:
		return addManifestTag(t, key[1:len(key)-1], value)
	}

	return nil
}

// addManifestTag registers a tag declared inline or by reference to a definition file.
func addManifestTag(t *Taglib, name string, def gjson.Result) error {
	tag := &Tag{Name: name, Source: sourceManifest}

	switch {
	case def.Type == gjson.String:
		tag.DefinitionPath = resolvePath(t.Dir, def.String())
	case def.IsObject():
		if tmpl := def.Get("template"); tmpl.Exists() {
			tag.Template = resolvePath(t.Dir, tmpl.String())
		}
		if renderer := def.Get("renderer"); renderer.Exists() {
			tag.Renderer = resolvePath(t.Dir, renderer.String())
		}
	default:
		return fmt.Errorf("tag <%s> must be a string path or an object", name)
	}

	t.AddTag(tag)
	return nil
}

// stringList accepts a string or an array of strings.
func stringList(value gjson.Result) ([]string, error) {
	if value.Type == gjson.String {
		return []string{value.String()}, nil
	}
	if !value.IsArray() {
		return nil, fmt.Errorf("must be a string or an array of strings")
	}

	var out []string
	for _, item := range value.Array() {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("must only contain strings")
		}
		out = append(out, item.String())
	}
	return out, nil
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

// syntaxError recovers a positioned error for invalid JSON; gjson only reports validity.
func syntaxError(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return fmt.Errorf("invalid JSON")
}

// wrapFieldError keeps read failures from nested tags directories as read errors.
func wrapFieldError(path string, chain *DependencyChain, err error) error {
	switch err.(type) {
	case *ManifestReadError, *ManifestParseError:
		return err
	}
	return &ManifestParseError{Path: path, Chain: chain, Err: err}
}

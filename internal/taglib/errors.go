package taglib

import (
	"errors"
	"fmt"
)

// errNotObject is wrapped when a manifest's top-level value is not a JSON object.
var errNotObject = errors.New("manifest must contain a JSON object")

// ManifestParseError indicates a manifest that exists but cannot be interpreted.
type ManifestParseError struct {
	Path  string
	Chain *DependencyChain
	Err   error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse taglib manifest at %s %s: %v", e.Path, e.Chain, e.Err)
}

// Unwrap returns the underlying error
func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// ManifestReadError indicates a manifest or tags directory that could not be read.
type ManifestReadError struct {
	Path  string
	Chain *DependencyChain
	Err   error
}

func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("failed to read %s %s: %v", e.Path, e.Chain, e.Err)
}

// Unwrap returns the underlying error
func (e *ManifestReadError) Unwrap() error {
	return e.Err
}

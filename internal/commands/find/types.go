package find

import (
	"github.com/charmbracelet/huh"
	"github.com/indaco/tagfind/internal/taglib"
	"github.com/indaco/tagfind/internal/tui"
)

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
	MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

// MultiSelect shows a multi-select prompt.
func (p *TUIPrompter) MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	return tui.MultiSelect(title, description, options, defaults)
}

// OutputFormat controls how discovery results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Result is one discovery run as displayed by the command.
type Result struct {
	// StartDir is the absolute directory discovery started from.
	StartDir string

	// Taglibs is the discovery output, registered taglibs last.
	Taglibs []*taglib.Taglib

	// Registered is how many trailing entries of Taglibs came from --register.
	Registered int
}

// TagCount sums the tags of every taglib.
func (r *Result) TagCount() int {
	n := 0
	for _, t := range r.Taglibs {
		n += t.TagCount()
	}
	return n
}

// isRegistered reports whether Taglibs[i] was registered explicitly.
func (r *Result) isRegistered(i int) bool {
	return i >= len(r.Taglibs)-r.Registered
}

// kind describes where Taglibs[i] came from.
func (r *Result) kind(i int) string {
	switch {
	case r.isRegistered(i):
		return "registered"
	case isManifestPath(r.Taglibs[i].Path):
		return "manifest"
	default:
		return "directory"
	}
}

package find

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/indaco/tagfind/internal/printer"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Formatter handles display of discovery results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats the discovery result for display.
func (f *Formatter) FormatResult(result *Result) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(result)
	case FormatTable:
		return f.formatTable(result)
	default:
		return f.formatText(result)
	}
}

// formatText formats the result as human-readable text.
func (f *Formatter) formatText(result *Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Taglibs visible from " + result.StartDir))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	if len(result.Taglibs) == 0 {
		sb.WriteString(printer.Faint("  No taglibs found."))
		sb.WriteString("\n")
	}

	for i, t := range result.Taglibs {
		status := printer.Success("✓")
		if result.isRegistered(i) {
			status = printer.Info("+")
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", status, t.ID,
			printer.Faint(fmt.Sprintf("(%s, %s)", result.kind(i), pluralize(t.TagCount(), "tag"))))
		if t.ID != t.Path {
			fmt.Fprintf(&sb, "      %s %s\n", printer.Faint("path:"), t.Path)
		}
		if names := t.TagNames(); len(names) > 0 {
			fmt.Fprintf(&sb, "      %s %s\n", printer.Faint("tags:"), strings.Join(names, ", "))
		}
	}

	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	sb.WriteString(formatSummary(result))
	sb.WriteString("\n")

	return sb.String()
}

// formatTable formats the result as a table.
func (f *Formatter) formatTable(result *Result) string {
	rows := make([][]string, 0, len(result.Taglibs))
	for i, t := range result.Taglibs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.ID,
			result.kind(i),
			strconv.Itoa(t.TagCount()),
		})
	}

	var sb strings.Builder
	sb.WriteString(printer.Table([]string{"#", "ID", "KIND", "TAGS"}, rows))
	sb.WriteString("\n")
	sb.WriteString(formatSummary(result))
	sb.WriteString("\n")
	return sb.String()
}

// formatJSON formats the result as indented JSON.
func (f *Formatter) formatJSON(result *Result) string {
	out := "{}"
	out, _ = sjson.Set(out, "start_dir", result.StartDir)
	out, _ = sjson.SetRaw(out, "taglibs", "[]")

	for i, t := range result.Taglibs {
		entry := "{}"
		entry, _ = sjson.Set(entry, "id", t.ID)
		entry, _ = sjson.Set(entry, "path", t.Path)
		entry, _ = sjson.Set(entry, "kind", result.kind(i))
		entry, _ = sjson.Set(entry, "tags", t.TagNames())
		out, _ = sjson.SetRaw(out, "taglibs.-1", entry)
	}

	out, _ = sjson.Set(out, "summary.taglib_count", len(result.Taglibs))
	out, _ = sjson.Set(out, "summary.tag_count", result.TagCount())
	out, _ = sjson.Set(out, "summary.registered_count", result.Registered)

	return gjson.Get(out, "@pretty").String()
}

func formatSummary(result *Result) string {
	summary := fmt.Sprintf("Found %s with %s",
		pluralize(len(result.Taglibs), "taglib"), pluralize(result.TagCount(), "tag"))
	if result.Registered > 0 {
		summary += fmt.Sprintf(" (%d registered)", result.Registered)
	}
	return summary
}

// printQuietSummary prints a single summary line.
func printQuietSummary(w io.Writer, result *Result) {
	fmt.Fprintln(w, formatSummary(result))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func isManifestPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

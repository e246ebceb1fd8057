package find

import (
	"strings"
	"testing"

	"github.com/indaco/tagfind/internal/taglib"
	"github.com/tidwall/gjson"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"table", FormatTable},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseOutputFormat(tt.input); got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func sampleResult() *Result {
	manifest := taglib.New("/app/marko.json")
	manifest.ID = "app"
	manifest.AddTag(&taglib.Tag{Name: "app-layout"})

	components := taglib.New("/app/components")
	components.AddTag(&taglib.Tag{Name: "my-button"})
	components.AddTag(&taglib.Tag{Name: "my-card"})

	extra := taglib.New("/extra/marko.json")

	return &Result{
		StartDir:   "/app/src",
		Taglibs:    []*taglib.Taglib{manifest, components, extra},
		Registered: 1,
	}
}

func TestFormatter_FormatResult_Text(t *testing.T) {
	output := NewFormatter(FormatText).FormatResult(sampleResult())

	checks := []string{
		"Taglibs visible from /app/src",
		"app",
		"path: /app/marko.json",
		"(manifest, 1 tag)",
		"/app/components",
		"(directory, 2 tags)",
		"tags: my-button, my-card",
		"(registered, 0 tags)",
		"Found 3 taglibs with 3 tags (1 registered)",
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("output missing expected text %q:\n%s", check, output)
		}
	}

	// Unless ID and path differ, only the ID is shown.
	if strings.Contains(output, "path: /app/components") {
		t.Error("path line should be omitted when it equals the ID")
	}
}

func TestFormatter_FormatResult_TextEmpty(t *testing.T) {
	output := NewFormatter(FormatText).FormatResult(&Result{StartDir: "/tmp"})
	if !strings.Contains(output, "No taglibs found.") || !strings.Contains(output, "Found 0 taglibs with 0 tags") {
		t.Errorf("unexpected empty output:\n%s", output)
	}
}

func TestFormatter_FormatResult_JSON(t *testing.T) {
	output := NewFormatter(FormatJSON).FormatResult(sampleResult())

	if !gjson.Valid(output) {
		t.Fatalf("invalid JSON:\n%s", output)
	}

	tests := []struct {
		path string
		want string
	}{
		{"start_dir", "/app/src"},
		{"taglibs.0.id", "app"},
		{"taglibs.0.path", "/app/marko.json"},
		{"taglibs.1.tags", `["my-button","my-card"]`},
		{"taglibs.2.kind", "registered"},
		{"taglibs.2.tags", "[]"},
		{"summary.taglib_count", "3"},
		{"summary.registered_count", "1"},
	}
	for _, tt := range tests {
		got := gjson.Get(output, tt.path)
		raw := got.String()
		if got.IsArray() {
			raw = strings.Join(strings.Fields(got.Raw), "")
		}
		if raw != tt.want {
			t.Errorf("%s = %s, want %s", tt.path, raw, tt.want)
		}
	}
}

func TestFormatter_FormatResult_Table(t *testing.T) {
	output := NewFormatter(FormatTable).FormatResult(sampleResult())

	for _, want := range []string{"#", "ID", "KIND", "TAGS", "app", "/app/components", "registered"} {
		if !strings.Contains(output, want) {
			t.Errorf("table output missing %q:\n%s", want, output)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "tag"); got != "1 tag" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "tag"); got != "0 tags" {
		t.Errorf("pluralize(0) = %q", got)
	}
}

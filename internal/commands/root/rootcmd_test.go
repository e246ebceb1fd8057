package root

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/core"
	"github.com/indaco/tagfind/internal/logging"
	"github.com/indaco/tagfind/internal/printer"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
)

func TestMain(m *testing.M) {
	printer.SetNoColor(true)
	os.Exit(m.Run())
}

func newProjectFS() *core.MockFileSystem {
	fs := core.NewMockFileSystem()
	fs.SetFile("/app/package.json", []byte(`{
		"name": "app",
		"dependencies": {"ui-lib": "1", "lodash": "4"},
		"devDependencies": {"test-tags": "1", "ui-lib": "1"}
	}`))
	fs.SetFile("/app/node_modules/ui-lib/marko.json", []byte(`{}`))
	fs.SetFile("/app/node_modules/test-tags/marko.json", []byte(`{}`))
	fs.SetDir("/app/src/pages")
	return fs
}

func TestInspect_WithPackage(t *testing.T) {
	cfg := config.Default()
	cfg.ExcludePackages = []string{"test-tags"}

	report, err := Inspect(context.Background(), newProjectFS(), cfg, logging.Discard(), "/app/src/pages")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Boundary != "/app" || report.Package == nil || report.Package.Name != "app" {
		t.Fatalf("unexpected report: %+v", report)
	}

	want := []Dependency{
		{Name: "ui-lib", Manifest: "/app/node_modules/ui-lib/marko.json"},
		{Name: "lodash"},
		{Name: "test-tags", Manifest: "/app/node_modules/test-tags/marko.json", Excluded: true},
	}
	if len(report.Dependencies) != len(want) {
		t.Fatalf("got %d dependencies, want %d: %+v", len(report.Dependencies), len(want), report.Dependencies)
	}
	for i, w := range want {
		if report.Dependencies[i] != w {
			t.Errorf("dependency %d = %+v, want %+v", i, report.Dependencies[i], w)
		}
	}
}

func TestInspect_NoPackageFallsBackToWorkingDir(t *testing.T) {
	orig := getwd
	getwd = func() (string, error) { return "/work", nil }
	t.Cleanup(func() { getwd = orig })

	fs := core.NewMockFileSystem()
	fs.SetDir("/tmp/loose")

	report, err := Inspect(context.Background(), fs, config.Default(), logging.Discard(), "/tmp/loose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Package != nil || report.Boundary != "/work" {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestInspect_GetwdError(t *testing.T) {
	orig := getwd
	getwd = func() (string, error) { return "", errors.New("gone") }
	t.Cleanup(func() { getwd = orig })

	_, err := Inspect(context.Background(), core.NewMockFileSystem(), config.Default(), logging.Discard(), "/nowhere")
	if err == nil || !strings.Contains(err.Error(), "working directory") {
		t.Errorf("expected working directory error, got %v", err)
	}
}

func TestPrintText(t *testing.T) {
	report, err := Inspect(context.Background(), newProjectFS(), config.Default(), logging.Discard(), "/app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	printText(&buf, report)
	out := buf.String()

	for _, want := range []string{"Package root: /app app", "Dependencies (3):", "✓ ui-lib", "· lodash"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printText(&buf, &Report{StartDir: "/x", Boundary: "/work"})
	if !strings.Contains(buf.String(), "working directory: /work") {
		t.Errorf("unexpected fallback output:\n%s", buf.String())
	}
}

func TestRootCmd_JSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "site", "peerDependencies": {"x": "1"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	app := &cli.Command{
		Name:     "tagfind",
		Writer:   &buf,
		Commands: []*cli.Command{Run(config.Default(), logging.Discard())},
	}
	if err := app.Run(context.Background(), []string{"tagfind", "root", "--format", "json", dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if got := gjson.Get(out, "package.name").String(); got != "site" {
		t.Errorf("package.name = %q, want site", got)
	}
	if got := gjson.Get(out, "boundary").String(); got != dir {
		t.Errorf("boundary = %q, want %q", got, dir)
	}
	if got := gjson.Get(out, "dependencies.0.name").String(); got != "x" {
		t.Errorf("dependencies.0.name = %q, want x", got)
	}
	if gjson.Get(out, "dependencies.0.excluded").Bool() {
		t.Error("x should not be excluded")
	}
}

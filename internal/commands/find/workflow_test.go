package find

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/indaco/tagfind/internal/config"
)

type mockPrompter struct {
	confirm      bool
	confirmErr   error
	selected     []string
	selectAll    bool
	selectErr    error
	gotOptions   []huh.Option[string]
	gotDefaults  []string
	confirmCalls int
	selectCalls  int
}

func (m *mockPrompter) Confirm(string, string) (bool, error) {
	m.confirmCalls++
	return m.confirm, m.confirmErr
}

func (m *mockPrompter) MultiSelect(_, _ string, options []huh.Option[string], defaults []string) ([]string, error) {
	m.selectCalls++
	m.gotOptions = options
	m.gotDefaults = defaults
	if m.selectAll {
		return defaults, m.selectErr
	}
	return m.selected, m.selectErr
}

// newTestWorkflow returns a workflow whose environment checks and saver are stubbed.
func newTestWorkflow(p Prompter, interactive, exists bool) (*Workflow, *bytes.Buffer, *[]*config.Config) {
	var out bytes.Buffer
	var saved []*config.Config
	w := NewWorkflow(p, &out)
	w.interactive = func() bool { return interactive }
	w.configExists = func() bool { return exists }
	w.save = func(cfg *config.Config) error {
		saved = append(saved, cfg)
		return nil
	}
	return w, &out, &saved
}

func TestWorkflow_Run_Skips(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		exists      bool
		dirs        []string
	}{
		{name: "nothing to save", interactive: true, exists: false},
		{name: "not interactive", interactive: false, exists: false, dirs: []string{"legacy"}},
		{name: "config exists", interactive: true, exists: true, dirs: []string{"legacy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockPrompter{confirm: true, selectAll: true}
			w, _, saved := newTestWorkflow(p, tt.interactive, tt.exists)

			wrote, err := w.Run(context.Background(), config.Default(), tt.dirs, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if wrote || len(*saved) != 0 || p.confirmCalls != 0 {
				t.Errorf("expected no prompt and no save, got wrote=%v saves=%d prompts=%d", wrote, len(*saved), p.confirmCalls)
			}
		})
	}
}

func TestWorkflow_Run_Declined(t *testing.T) {
	p := &mockPrompter{confirm: false}
	w, out, saved := newTestWorkflow(p, true, false)

	wrote, err := w.Run(context.Background(), config.Default(), []string{"legacy"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wrote || len(*saved) != 0 || p.selectCalls != 0 {
		t.Error("declining must not save or ask for a selection")
	}
	if !strings.Contains(out.String(), "tagfind init") {
		t.Errorf("expected hint about tagfind init, got %q", out.String())
	}
}

func TestWorkflow_Run_SavesSelection(t *testing.T) {
	p := &mockPrompter{confirm: true, selected: []string{"dir:legacy", "pkg:@acme/old-ui"}}
	w, out, saved := newTestWorkflow(p, true, false)

	cfg := config.Default()
	cfg.ExcludeDirs = []string{"legacy"}

	wrote, err := w.Run(context.Background(), cfg, []string{"legacy", "vendor"}, []string{"@acme/old-ui"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !wrote || len(*saved) != 1 {
		t.Fatalf("expected one save, got wrote=%v saves=%d", wrote, len(*saved))
	}

	if len(p.gotOptions) != 3 || len(p.gotDefaults) != 3 {
		t.Errorf("expected 3 options all selected by default, got %d/%d", len(p.gotOptions), len(p.gotDefaults))
	}

	got := (*saved)[0]
	if !slices.Equal(got.ExcludeDirs, []string{"legacy"}) {
		t.Errorf("ExcludeDirs = %v, want [legacy] without duplicates", got.ExcludeDirs)
	}
	if !slices.Equal(got.ExcludePackages, []string{"@acme/old-ui"}) {
		t.Errorf("ExcludePackages = %v", got.ExcludePackages)
	}
	if len(cfg.ExcludePackages) != 0 {
		t.Error("the loaded config must not be modified")
	}
	if !strings.Contains(out.String(), "Saved 2 exclusion(s)") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestWorkflow_Run_EmptySelection(t *testing.T) {
	p := &mockPrompter{confirm: true, selected: nil}
	w, _, saved := newTestWorkflow(p, true, false)

	wrote, err := w.Run(context.Background(), config.Default(), nil, []string{"widgets"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wrote || len(*saved) != 0 {
		t.Error("an empty selection must not write a config")
	}
}

func TestWorkflow_Run_Errors(t *testing.T) {
	t.Run("confirm error", func(t *testing.T) {
		p := &mockPrompter{confirmErr: errors.New("aborted")}
		w, _, _ := newTestWorkflow(p, true, false)
		if _, err := w.Run(context.Background(), config.Default(), []string{"a"}, nil); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("select error", func(t *testing.T) {
		p := &mockPrompter{confirm: true, selectErr: errors.New("aborted")}
		w, _, _ := newTestWorkflow(p, true, false)
		if _, err := w.Run(context.Background(), config.Default(), []string{"a"}, nil); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("save error", func(t *testing.T) {
		p := &mockPrompter{confirm: true, selectAll: true}
		w, _, _ := newTestWorkflow(p, true, false)
		w.save = func(*config.Config) error { return errors.New("disk full") }

		_, err := w.Run(context.Background(), config.Default(), []string{"a"}, nil)
		if err == nil || !strings.Contains(err.Error(), "failed to save exclusions") {
			t.Errorf("expected save error, got %v", err)
		}
	})
}

func TestSplitSelection(t *testing.T) {
	dirs, packages := splitSelection([]string{"dir:a", "pkg:b", "other", "dir:c"})
	if !slices.Equal(dirs, []string{"a", "c"}) || !slices.Equal(packages, []string{"b"}) {
		t.Errorf("splitSelection() = %v, %v", dirs, packages)
	}
}

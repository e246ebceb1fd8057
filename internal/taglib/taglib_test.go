package taglib

import "testing"

func TestTaglib_AddTagKeepsFirstPosition(t *testing.T) {
	tl := New("/x/marko.json")
	tl.AddTag(&Tag{Name: "a", Template: "one"})
	tl.AddTag(&Tag{Name: "b"})
	tl.AddTag(&Tag{Name: "a", Template: "two"})

	names := tl.TagNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("TagNames() = %v, want [a b]", names)
	}
	if tl.Tag("a").Template != "two" {
		t.Errorf("Tag(a).Template = %q, want %q", tl.Tag("a").Template, "two")
	}
}

func TestTaglib_ZeroValueAddTag(t *testing.T) {
	tl := &Taglib{ID: "bare"}
	tl.AddTag(&Tag{Name: "x"})
	if tl.TagCount() != 1 {
		t.Errorf("TagCount() = %d, want 1", tl.TagCount())
	}
	if tl.HasExplicitTagsDir() {
		t.Error("HasExplicitTagsDir() = true, want false")
	}
}

func TestDependencyChain(t *testing.T) {
	base := NewDependencyChain("/a")
	next := base.Append("/b")

	if got := base.String(); got != "[/a]" {
		t.Errorf("base.String() = %q, want %q", got, "[/a]")
	}
	if got := next.String(); got != "[/a → /b]" {
		t.Errorf("next.String() = %q, want %q", got, "[/a → /b]")
	}
	if len(next.Parts()) != 2 {
		t.Errorf("len(Parts()) = %d, want 2", len(next.Parts()))
	}

	var nilChain *DependencyChain
	if nilChain.String() != "[]" {
		t.Errorf("nil chain String() = %q, want []", nilChain.String())
	}
	if got := nilChain.Append("/c").String(); got != "[/c]" {
		t.Errorf("nil.Append = %q, want [/c]", got)
	}
}

package catalog

import (
	"sort"
	"testing"
)

func TestLookupIsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("GitHub"); !ok {
		t.Error("GitHub should be registered")
	}
	if _, ok := r.Lookup("github"); ok {
		t.Error("lookup should be case-sensitive")
	}
}

func TestResolveFallback(t *testing.T) {
	r := NewRegistry()
	got := r.Resolve("Mystery Tool")
	if got.Name != "Mystery Tool" {
		t.Errorf("fallback name = %q, want the requested name", got.Name)
	}
	if got.Icon == "" {
		t.Error("fallback should carry a default icon")
	}
	if got.Category != "other" {
		t.Errorf("fallback category = %q, want %q", got.Category, "other")
	}
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	if len(names) != len(r.All()) {
		t.Errorf("Names and All disagree: %d vs %d", len(names), len(r.All()))
	}
}

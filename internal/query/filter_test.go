package query

import (
	"reflect"
	"testing"
)

type testItem struct {
	ID     string
	Status string
	Name   string
}

func testItems() []testItem {
	return []testItem{
		{ID: "1", Status: "active", Name: "Support Triage"},
		{ID: "2", Status: "paused", Name: "Slack Digest"},
		{ID: "3", Status: "active", Name: "PR Reviewer"},
		{ID: "4", Status: "error", Name: "Invoice Sync"},
		{ID: "5", Status: "active", Name: "Onboarding Helper"},
	}
}

func statusKey(i testItem) string { return i.Status }

func TestFilterAllReturnsOriginal(t *testing.T) {
	items := testItems()
	f := NewFilter(items, statusKey, "")
	got := f.Items()
	if len(got) != len(items) {
		t.Fatalf("items = %d, want %d", len(got), len(items))
	}
	if &got[0] != &items[0] {
		t.Error("all-value view should be the original slice, not a copy")
	}
}

func TestFilterByValue(t *testing.T) {
	f := NewFilter(testItems(), statusKey, "all")
	f.Set("active")
	got := f.Items()
	want := []string{"1", "3", "5"}
	if len(got) != len(want) {
		t.Fatalf("filtered count = %d, want %d", len(got), len(want))
	}
	for i, item := range got {
		if item.ID != want[i] {
			t.Errorf("item[%d].ID = %q, want %q (order must be preserved)", i, item.ID, want[i])
		}
	}
}

func TestFilterCountsInvariant(t *testing.T) {
	items := testItems()
	f := NewFilter(items, statusKey, "all")
	counts := f.Counts()

	sum := 0
	for k, v := range counts {
		if k == "all" {
			continue
		}
		sum += v
	}
	if sum != counts["all"] {
		t.Errorf("non-all buckets sum to %d, all bucket = %d", sum, counts["all"])
	}
	if counts["all"] != len(items) {
		t.Errorf("all bucket = %d, want %d", counts["all"], len(items))
	}
	if counts["active"] != 3 || counts["paused"] != 1 || counts["error"] != 1 {
		t.Errorf("unexpected bucket counts: %v", counts)
	}
}

func TestFilterMissingKeyBucketsAsEmpty(t *testing.T) {
	items := []testItem{{ID: "1"}, {ID: "2", Status: "active"}}
	f := NewFilter(items, statusKey, "all")
	counts := f.Counts()
	if counts[""] != 1 {
		t.Errorf("empty-string bucket = %d, want 1", counts[""])
	}

	f.Set("active")
	if len(f.Items()) != 1 {
		t.Errorf("active count = %d, want 1", len(f.Items()))
	}
}

func TestFilterReset(t *testing.T) {
	f := NewFilter(testItems(), statusKey, "all")
	f.Set("paused")
	if len(f.Items()) != 1 {
		t.Fatalf("paused count = %d, want 1", len(f.Items()))
	}
	f.Reset()
	if f.Value() != "all" {
		t.Errorf("value after reset = %q, want %q", f.Value(), "all")
	}
	if len(f.Items()) != 5 {
		t.Errorf("items after reset = %d, want 5", len(f.Items()))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := testItems()
	snapshot := make([]testItem, len(items))
	copy(snapshot, items)

	f := NewFilter(items, statusKey, "all")
	f.Set("active")
	f.Items()
	f.Set("error")
	f.Items()

	if !reflect.DeepEqual(items, snapshot) {
		t.Error("input slice was mutated")
	}
}

func TestFilterCountsCopyIsSafe(t *testing.T) {
	f := NewFilter(testItems(), statusKey, "all")
	counts := f.Counts()
	counts["active"] = 99
	if f.Counts()["active"] != 3 {
		t.Error("mutating the returned counts map leaked into the filter")
	}
}

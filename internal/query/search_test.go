package query

import "testing"

func nameKey(i testItem) (string, bool) { return i.Name, true }

func noStringKey(i testItem) (string, bool) { return "", false }

func searchOpts(caseSensitive bool) SearchOptions[testItem] {
	return SearchOptions[testItem]{
		Keys:          []KeyFunc[testItem]{nameKey, func(i testItem) (string, bool) { return i.ID, true }},
		CaseSensitive: caseSensitive,
	}
}

func TestSearchEmptyQueryIdentity(t *testing.T) {
	items := testItems()
	s := NewSearch(items, searchOpts(false))

	for _, q := range []string{"", "   ", "\t\n"} {
		s.SetQuery(q)
		got := s.Items()
		if len(got) != len(items) {
			t.Fatalf("query %q: items = %d, want %d", q, len(got), len(items))
		}
		if &got[0] != &items[0] {
			t.Errorf("query %q: expected the original slice back, got a copy", q)
		}
	}
}

func TestSearchCaseInsensitiveByDefault(t *testing.T) {
	s := NewSearch(testItems(), searchOpts(false))

	for _, q := range []string{"SLACK", "slack", "Slack"} {
		s.SetQuery(q)
		if s.Count() != 1 {
			t.Errorf("query %q: count = %d, want 1", q, s.Count())
		}
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	s := NewSearch(testItems(), searchOpts(true))

	s.SetQuery("Slack")
	if s.Count() != 1 {
		t.Errorf("exact-case query: count = %d, want 1", s.Count())
	}
	s.SetQuery("SLACK")
	if s.Count() != 0 {
		t.Errorf("wrong-case query: count = %d, want 0", s.Count())
	}
	if s.HasResults() {
		t.Error("HasResults should be false for a wrong-case query")
	}
}

func TestSearchContainsNotPrefix(t *testing.T) {
	s := NewSearch(testItems(), searchOpts(false))
	s.SetQuery("reviewer")
	if s.Count() != 1 {
		t.Fatalf("count = %d, want 1", s.Count())
	}
	if s.Items()[0].ID != "3" {
		t.Errorf("matched ID = %q, want %q", s.Items()[0].ID, "3")
	}
}

func TestSearchMatchesAnyKey(t *testing.T) {
	// "4" appears only in the ID field.
	s := NewSearch(testItems(), searchOpts(false))
	s.SetQuery("4")
	if s.Count() != 1 {
		t.Errorf("count = %d, want 1", s.Count())
	}
}

func TestSearchNonStringFieldsNeverMatch(t *testing.T) {
	s := NewSearch(testItems(), SearchOptions[testItem]{Keys: []KeyFunc[testItem]{noStringKey}})
	s.SetQuery("anything")
	if s.Count() != 0 {
		t.Errorf("count = %d, want 0", s.Count())
	}
}

func TestSearchPreservesOrder(t *testing.T) {
	s := NewSearch(testItems(), searchOpts(false))
	s.SetQuery("s")
	got := s.Items()
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("result order broken: %q before %q", got[i-1].ID, got[i].ID)
		}
	}
}

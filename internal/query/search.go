package query

import "strings"

// KeyFunc extracts a searchable string field from an item. It reports
// ok=false when the field is not a string for this item; such fields
// never match.
type KeyFunc[T any] func(T) (value string, ok bool)

// SearchOptions configures which fields a Search matches against and
// whether matching is case-sensitive.
type SearchOptions[T any] struct {
	Keys          []KeyFunc[T]
	CaseSensitive bool
}

// Search is a substring search over a fixed set of string fields. Like
// Filter, each instance belongs to one caller and is not safe for
// concurrent use.
type Search[T any] struct {
	items   []T
	opts    SearchOptions[T]
	query   string
	derived []T
	dirty   bool
}

// NewSearch builds a search over items.
func NewSearch[T any](items []T, opts SearchOptions[T]) *Search[T] {
	return &Search[T]{items: items, opts: opts, dirty: true}
}

// SetQuery changes the active query.
func (s *Search[T]) SetQuery(q string) {
	if q != s.query {
		s.query = q
		s.dirty = true
	}
}

// Query returns the active query.
func (s *Search[T]) Query() string {
	return s.query
}

// Items returns the matching view. An empty or whitespace-only query
// short-circuits to the original slice. Otherwise an item matches when
// any configured key holds a string containing the query as a substring,
// lower-cased on both sides unless CaseSensitive is set.
func (s *Search[T]) Items() []T {
	q := strings.TrimSpace(s.query)
	if q == "" {
		return s.items
	}
	if s.dirty {
		if !s.opts.CaseSensitive {
			q = strings.ToLower(q)
		}
		s.derived = make([]T, 0, len(s.items))
		for _, item := range s.items {
			if s.matches(item, q) {
				s.derived = append(s.derived, item)
			}
		}
		s.dirty = false
	}
	return s.derived
}

func (s *Search[T]) matches(item T, q string) bool {
	for _, key := range s.opts.Keys {
		v, ok := key(item)
		if !ok {
			continue
		}
		if !s.opts.CaseSensitive {
			v = strings.ToLower(v)
		}
		if strings.Contains(v, q) {
			return true
		}
	}
	return false
}

// HasResults reports whether the current query matches any item.
func (s *Search[T]) HasResults() bool {
	return len(s.Items()) > 0
}

// Count returns the number of matching items.
func (s *Search[T]) Count() int {
	return len(s.Items())
}

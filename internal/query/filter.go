// Package query provides the pure list operations shared by every console
// list view: single-key equality filtering with bucket counts, substring
// search over configurable fields, and bounds-clamped pagination.
// All operations return derived views; the input slice is never mutated.
package query

// DefaultAllValue is the filter value that selects every item.
const DefaultAllValue = "all"

// Filter is a single-key equality filter over an in-memory list. Each
// instance is owned by one caller for the lifetime of a view and is not
// safe for concurrent use.
type Filter[T any] struct {
	items    []T
	key      func(T) string
	allValue string
	value    string

	counts  map[string]int
	derived []T
	dirty   bool
}

// NewFilter builds a filter over items using key to extract the bucket
// value of each item. An empty allValue defaults to "all".
func NewFilter[T any](items []T, key func(T) string, allValue string) *Filter[T] {
	if allValue == "" {
		allValue = DefaultAllValue
	}
	f := &Filter[T]{
		items:    items,
		key:      key,
		allValue: allValue,
		value:    allValue,
		dirty:    true,
	}
	f.counts = make(map[string]int, 8)
	for _, item := range items {
		f.counts[key(item)]++
	}
	f.counts[allValue] = len(items)
	return f
}

// Set changes the active filter value.
func (f *Filter[T]) Set(value string) {
	if value != f.value {
		f.value = value
		f.dirty = true
	}
}

// Value returns the active filter value.
func (f *Filter[T]) Value() string {
	return f.value
}

// Reset restores the all-items view.
func (f *Filter[T]) Reset() {
	f.Set(f.allValue)
}

// Items returns the filtered view. When the active value is the all-value
// the original slice is returned unchanged; otherwise a new slice holding
// exactly the items whose key equals the active value, in original order.
func (f *Filter[T]) Items() []T {
	if f.value == f.allValue {
		return f.items
	}
	if f.dirty {
		f.derived = make([]T, 0, f.counts[f.value])
		for _, item := range f.items {
			if f.key(item) == f.value {
				f.derived = append(f.derived, item)
			}
		}
		f.dirty = false
	}
	return f.derived
}

// Counts returns occurrence counts per bucket value plus the all-value
// bucket holding the total item count. The non-all buckets always sum to
// the all bucket.
func (f *Filter[T]) Counts() map[string]int {
	out := make(map[string]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}

package catalog

import "strings"

// AllCategories selects every record regardless of category.
const AllCategories int64 = 0

// FilterState is what a list screen currently filters by. It lives in the
// screen, never in the cache, and is thrown away when the user navigates
// elsewhere.
type FilterState struct {
	// Category narrows the view to one category id, or AllCategories.
	Category int64
	// Search keeps only records whose display name contains it,
	// case-insensitively.
	Search string
}

// Reset returns the filter to its initial state: every category, no search
// term.
func (f *FilterState) Reset() {
	f.Category = AllCategories
	f.Search = ""
}

// View projects a cache snapshot through filter into the ordered records a
// list screen shows. It is a pure function: no network access, no mutation
// of records, same inputs same output. The result preserves the snapshot's
// order, and an empty result simply means nothing matched.
//
// Callers recompute the view in full whenever the snapshot or the filter
// changes; at this system's scale a full O(n) pass beats bookkeeping an
// incremental one.
func View[T any](collection Collection[T], records []T, filter FilterState) []T {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	view := make([]T, 0, len(records))
	for _, record := range records {
		if filter.Category != AllCategories &&
			collection.CategoryID != nil &&
			collection.CategoryID(record) != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(collection.DisplayName(record)), search) {
			continue
		}
		view = append(view, record)
	}

	return view
}

// View projects the cache's current contents through filter. Shorthand for
// [View] over [Cache.Records].
func (c *Cache[T]) View(filter FilterState) []T {
	return View(c.collection, c.Records(), filter)
}

// Package listview holds the state containers behind every management list
// view: filter state, bulk selection, TTL-cached fetching with
// stale-while-revalidate, and single-shot mutations. Each view owns its own
// instances, so state can never leak between domains. All containers are
// safe for concurrent use.
package listview

import (
	"sync"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
)

// Filters holds one view's filter state: a set of named equality filters
// over a fixed default shape, plus a free-text search term.
type Filters struct {
	mu       sync.RWMutex
	defaults map[string]string
	values   map[string]string
	search   string
}

// NewFilters creates filter state that resets to the given defaults. The
// defaults map is copied.
func NewFilters(defaults map[string]string) *Filters {
	f := &Filters{defaults: make(map[string]string, len(defaults))}
	for key, value := range defaults {
		f.defaults[key] = value
	}
	f.values = cloneMap(f.defaults)
	return f
}

func cloneMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

// Update merges a sparse partial into the current filters. Keys absent from
// partial keep their current value.
func (f *Filters) Update(partial map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, value := range partial {
		f.values[key] = value
	}
}

// UpdateSearch sets the search term, leaving the named filters untouched.
func (f *Filters) UpdateSearch(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search = term
}

// Clear resets the filters and search term to the defaults.
func (f *Filters) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = cloneMap(f.defaults)
	f.search = ""
}

// Snapshot returns a copy of the current filter values and the search term.
func (f *Filters) Snapshot() (map[string]string, string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneMap(f.values), f.search
}

// Get returns the current value of one filter.
func (f *Filters) Get(key string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[key]
}

// Search returns the current search term.
func (f *Filters) Search() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.search
}

// Query materializes the current state into a list query for the facade.
func (f *Filters) Query(page, limit int) dto.ListQuery {
	values, search := f.Snapshot()
	return dto.ListQuery{
		Page:    page,
		Limit:   limit,
		Search:  search,
		Filters: values,
	}
}

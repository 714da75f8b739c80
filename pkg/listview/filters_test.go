package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltersUpdateIsSparse(t *testing.T) {
	f := NewFilters(map[string]string{"status": "", "type": ""})

	f.Update(map[string]string{"status": "published"})
	f.Update(map[string]string{"type": "workshop"})

	values, _ := f.Snapshot()
	assert.Equal(t, "published", values["status"], "earlier update must survive later sparse updates")
	assert.Equal(t, "workshop", values["type"])
}

func TestFiltersSearchIndependent(t *testing.T) {
	f := NewFilters(map[string]string{"status": ""})

	f.Update(map[string]string{"status": "draft"})
	f.UpdateSearch("react")

	assert.Equal(t, "draft", f.Get("status"))
	assert.Equal(t, "react", f.Search())
}

func TestFiltersClear(t *testing.T) {
	f := NewFilters(map[string]string{"status": "", "tier": "gold"})

	f.Update(map[string]string{"status": "active", "tier": "silver"})
	f.UpdateSearch("acme")
	f.Clear()

	values, search := f.Snapshot()
	assert.Equal(t, "", values["status"])
	assert.Equal(t, "gold", values["tier"], "clear restores defaults, not empty strings")
	assert.Equal(t, "", search)
}

func TestFiltersIsolatedBetweenViews(t *testing.T) {
	events := NewFilters(map[string]string{"status": ""})
	sponsors := NewFilters(map[string]string{"status": ""})

	events.Update(map[string]string{"status": "published"})

	assert.Equal(t, "", sponsors.Get("status"))
}

func TestFiltersSnapshotIsCopy(t *testing.T) {
	f := NewFilters(map[string]string{"status": ""})

	values, _ := f.Snapshot()
	values["status"] = "tampered"

	assert.Equal(t, "", f.Get("status"))
}

func TestFiltersQuery(t *testing.T) {
	f := NewFilters(map[string]string{"status": ""})
	f.Update(map[string]string{"status": "published"})
	f.UpdateSearch("react")

	q := f.Query(2, 50)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, "react", q.Search)
	assert.Equal(t, "published", q.Filters["status"])
}

func TestSelectionToggleInvolution(t *testing.T) {
	s := NewSelection()

	s.Toggle("a")
	assert.True(t, s.Has("a"))
	s.Toggle("a")
	assert.False(t, s.Has("a"))
	assert.Equal(t, 0, s.Count())
}

func TestSelectionSelectAllIdempotent(t *testing.T) {
	s := NewSelection()
	s.Toggle("old")

	s.SelectAll([]string{"a", "b", "c"})
	assert.Equal(t, 3, s.Count())
	assert.False(t, s.Has("old"), "select-all replaces, not extends")

	s.SelectAll([]string{"a", "b", "c"})
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
}

func TestSelectionVisible(t *testing.T) {
	s := NewSelection()
	assert.False(t, s.Visible())

	s.Toggle("a")
	assert.True(t, s.Visible())

	s.Clear()
	assert.False(t, s.Visible())
}

package dto

import (
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
)

// ListQuery carries pagination and filter state for a list request. Filters
// holds only keys the resource whitelists; unknown query parameters are
// ignored upstream.
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

// SetDefaults applies the default page window.
func (q *ListQuery) SetDefaults() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// BulkRequest asks for one operation applied to many records. Operation is
// "delete" or any transition action the resource declares.
type BulkRequest struct {
	Operation string   `json:"operation" binding:"required"`
	IDs       []string `json:"ids" binding:"required,min=1"`
}

// TransitionMeta describes one status-change action: the statuses it may
// fire from and the status it lands on.
type TransitionMeta struct {
	From []string `json:"from"`
	To   string   `json:"to"`
}

// ResourceMeta describes one managed resource to its management view: the
// filter shape a view resets to, the transition vocabulary behind its action
// buttons, and how each status is rendered.
type ResourceMeta struct {
	Name           string                    `json:"name"`
	Path           string                    `json:"path"`
	FilterKeys     []string                  `json:"filter_keys"`
	DefaultFilters map[string]string         `json:"default_filters"`
	Transitions    map[string]TransitionMeta `json:"transitions"`
	Display        map[string]domain.Display `json:"display"`
}

// BulkResult reports the per-record outcome of a bulk operation.
type BulkResult struct {
	Operation string            `json:"operation"`
	Requested int               `json:"requested"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Failures  map[string]string `json:"failures,omitempty"` // id -> reason
}

// Package catalog declares each managed resource once: its REST path, its
// lifecycle, its filterable keys, and how statuses are displayed. Everything
// downstream (repositories, services, handlers, facades) is generic over
// these descriptors.
package catalog

import (
	"sort"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
)

// Transition is one allowed status change, addressed by action name
// (publish, archive, approve, ...).
type Transition struct {
	From []domain.Status
	To   domain.Status
}

// AllowedFrom reports whether the transition may fire from the given status.
func (t Transition) AllowedFrom(s domain.Status) bool {
	for _, from := range t.From {
		if from == s {
			return true
		}
	}
	return false
}

// Resource describes one managed entity type.
type Resource[T domain.Entity] struct {
	// Name is the singular resource name used in logs and events.
	Name string
	// Path is the REST collection path segment, e.g. "events".
	Path string
	// New returns an empty record ready for JSON binding.
	New func() T
	// DefaultStatus is assigned on create when the payload carries none.
	DefaultStatus domain.Status
	// FilterKeys are the query parameters accepted as equality filters.
	// "status" is always implied.
	FilterKeys []string
	// DefaultFilters is the filter state a management view resets to.
	DefaultFilters map[string]string
	// Transitions maps action names to their status-change rules. Each
	// action becomes a POST /:id/<action> sub-route.
	Transitions map[string]Transition
	// Display maps each status to its presentation.
	Display map[domain.Status]domain.Display
}

// TransitionNames returns the declared action names in stable order.
func (r Resource[T]) TransitionNames() []string {
	names := make([]string, 0, len(r.Transitions))
	for name := range r.Transitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayFor returns the display entry for a status, with a plain fallback
// for statuses missing from the table.
func (r Resource[T]) DisplayFor(s domain.Status) domain.Display {
	if d, ok := r.Display[s]; ok {
		return d
	}
	return domain.Display{Label: string(s), Badge: "neutral", Icon: "circle"}
}

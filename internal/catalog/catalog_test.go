package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
)

func TestDisplayFor(t *testing.T) {
	res := Events()

	d := res.DisplayFor(domain.StatusPublished)
	assert.Equal(t, "Published", d.Label)
	assert.Equal(t, "success", d.Badge)

	// statuses missing from the table get a plain fallback
	d = res.DisplayFor(domain.StatusRejected)
	assert.Equal(t, "rejected", d.Label)
	assert.Equal(t, "neutral", d.Badge)
	assert.Equal(t, "circle", d.Icon)
}

func TestTransitionNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"archive", "cancel", "publish"}, Events().TransitionNames())
}

func TestAllowedFrom(t *testing.T) {
	cancel := Events().Transitions["cancel"]
	assert.True(t, cancel.AllowedFrom(domain.StatusDraft))
	assert.True(t, cancel.AllowedFrom(domain.StatusPublished))
	assert.False(t, cancel.AllowedFrom(domain.StatusArchived))
}

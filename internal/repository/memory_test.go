package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
)

func newEvent(id, title string, status domain.Status, createdAt time.Time) *domain.Event {
	e := &domain.Event{
		Title:   title,
		Type:    "workshop",
		StartAt: createdAt.Add(24 * time.Hour),
	}
	e.ID = id
	e.Status = status
	e.CreatedAt = createdAt
	e.UpdatedAt = createdAt
	return e
}

func TestMemoryCRUD(t *testing.T) {
	repo := NewMemory(func() *domain.Event { return &domain.Event{} })
	ctx := context.Background()
	now := time.Now().UTC()

	event := newEvent("e1", "First", domain.StatusDraft, now)
	require.NoError(t, repo.Create(ctx, event))
	assert.Error(t, repo.Create(ctx, event), "duplicate IDs are rejected")

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)

	// stored record is isolated from caller mutations
	got.Title = "mutated"
	again, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "First", again.Title)

	got.Title = "Renamed"
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	require.NoError(t, repo.Delete(ctx, "e1"))
	missing, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, missing, "miss returns nil record, nil error")

	assert.Error(t, repo.Update(ctx, event))
	assert.Error(t, repo.Delete(ctx, "e1"))
}

func TestMemoryListFilterAndSearch(t *testing.T) {
	repo := NewMemory(func() *domain.Event { return &domain.Event{} })
	ctx := context.Background()
	now := time.Now().UTC()

	conference := newEvent("e1", "React Conference 2024", domain.StatusPublished, now)
	planning := newEvent("e2", "Planning Meeting", domain.StatusDraft, now.Add(time.Minute))
	require.NoError(t, repo.Create(ctx, conference))
	require.NoError(t, repo.Create(ctx, planning))

	records, total, err := repo.List(ctx, dto.ListQuery{
		Search:  "react",
		Filters: map[string]string{"status": "published"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, "React Conference 2024", records[0].Title)

	// empty filter values are ignored
	records, total, err = repo.List(ctx, dto.ListQuery{
		Filters: map[string]string{"status": "", "type": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, records, 2)
}

func TestMemoryListOrderAndPagination(t *testing.T) {
	repo := NewMemory(func() *domain.Event { return &domain.Event{} })
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		event := newEvent(fmt.Sprintf("e%d", i), fmt.Sprintf("Event %d", i),
			domain.StatusDraft, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, event))
	}

	records, total, err := repo.List(ctx, dto.ListQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, records, 2)
	assert.Equal(t, "Event 4", records[0].Title, "newest first")
	assert.Equal(t, "Event 3", records[1].Title)

	records, _, err = repo.List(ctx, dto.ListQuery{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Event 0", records[0].Title)

	records, total, err = repo.List(ctx, dto.ListQuery{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, records, "page past the end is empty, not an error")
}

func TestMemoryApply(t *testing.T) {
	repo := NewMemory(func() *domain.Event { return &domain.Event{} })
	ctx := context.Background()
	now := time.Now().UTC()

	event := newEvent("e1", "Meetup", domain.StatusPublished, now)
	require.NoError(t, repo.Create(ctx, event))

	updated, err := repo.Apply(ctx, "e1", func(e *domain.Event) error {
		e.Attendees = append(e.Attendees, "u1")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, updated.Attendees)

	// returned record is isolated from stored state
	updated.Attendees = append(updated.Attendees, "mutated")
	stored, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, stored.Attendees)

	// an apply error aborts the write
	_, err = repo.Apply(ctx, "e1", func(e *domain.Event) error {
		e.Attendees = nil
		return fmt.Errorf("reject")
	})
	require.Error(t, err)
	stored, err = repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, stored.Attendees)

	missing, err := repo.Apply(ctx, "nope", func(e *domain.Event) error { return nil })
	require.NoError(t, err)
	assert.Nil(t, missing, "miss returns nil record, nil error")
}

func TestMemoryApplyConcurrent(t *testing.T) {
	repo := NewMemory(func() *domain.Event { return &domain.Event{} })
	ctx := context.Background()

	event := newEvent("e1", "Busy", domain.StatusPublished, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, event))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.Apply(ctx, "e1", func(e *domain.Event) error {
				e.Attendees = append(e.Attendees, fmt.Sprintf("u%d", n))
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, stored.Attendees, 50, "no update may be lost")
}

func TestMemoryFilterValueKeys(t *testing.T) {
	repo := NewMemory(func() *domain.Event { return &domain.Event{} })
	ctx := context.Background()
	now := time.Now().UTC()

	event := newEvent("e1", "Chapter Meetup", domain.StatusPublished, now)
	event.ChapterID = "ch-7"
	require.NoError(t, repo.Create(ctx, event))

	_, total, err := repo.List(ctx, dto.ListQuery{Filters: map[string]string{"chapter_id": "ch-7"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = repo.List(ctx, dto.ListQuery{Filters: map[string]string{"chapter_id": "other"}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

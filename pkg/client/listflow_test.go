package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/config"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/listview"
)

// Composes the list-view state containers with the facade the way a
// management view does: the resource's default filters seed the filter
// state, the fetcher loads through the configured cache, and a bulk delete
// refetches the list and drops the selection.
func TestListViewFlow(t *testing.T) {
	server := newAPIServer(t)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL + "/api/v1"
	cfg.API.Timeout = 5 * time.Second
	cfg.Cache.ListTTL = time.Minute

	res := catalog.Events()
	facade := New(cfg, res, func() string { return "test-token" }, testLogger(t))

	ctx := context.Background()
	published, err := facade.Create(ctx, sampleEvent("React Conference 2024"))
	require.NoError(t, err)
	_, err = facade.Transition(ctx, published.ID, "publish")
	require.NoError(t, err)
	draft, err := facade.Create(ctx, sampleEvent("Planning Meeting"))
	require.NoError(t, err)

	filters := listview.NewFilters(res.DefaultFilters)
	cache := listview.NewCache[[]*domain.Event](cfg.Cache.ListTTL)
	selection := listview.NewSelection()

	fetcher := listview.NewFetcher(cache, res.Path, func(ctx context.Context) ([]*domain.Event, error) {
		records, _, err := facade.List(ctx, filters.Query(1, 20))
		return records, err
	})

	records, err := fetcher.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// second load within the TTL is served from the cache
	records, err = fetcher.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	filters.Update(map[string]string{"status": "published"})
	records, err = fetcher.Refetch(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "React Conference 2024", records[0].Title)

	filters.Clear()
	assert.Equal(t, "", filters.Get("status"))
	records, err = fetcher.Refetch(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// bulk delete the checked rows, refetch, drop the selection
	selection.Toggle(published.ID)
	selection.Toggle(draft.ID)
	remove := listview.NewMutation(func(ctx context.Context, ids []string) (*dto.BulkResult, error) {
		return facade.Bulk(ctx, "delete", ids)
	})
	result, err := remove.Do(ctx, selection.IDs())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)

	records, err = fetcher.Refetch(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	selection.Clear()
	assert.Equal(t, 0, selection.Count())
	assert.False(t, selection.Visible())
}

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/events"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/handler"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/repository"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/service"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/config"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", ServiceName: "test"})
	require.NoError(t, err)
	return log
}

// newAPIServer runs the real handler stack over an in-memory repository.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	res := catalog.Events()
	repo := repository.NewMemory(res.New)
	svc := service.NewResource(res, repo, events.NewNoopPublisher(), testLogger(t))

	router := gin.New()
	api := router.Group("/api/v1")
	handler.NewResource(svc).Register(api)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func newHTTPFacade(t *testing.T, server *httptest.Server) *HTTPFacade[*domain.Event] {
	t.Helper()
	return NewHTTP(HTTPConfig{
		BaseURL: server.URL + "/api/v1",
		Timeout: 5 * time.Second,
	}, catalog.Events(), func() string { return "test-token" })
}

func sampleEvent(title string) *domain.Event {
	return &domain.Event{
		Title:    title,
		Type:     "workshop",
		Location: "Cape Town",
		StartAt:  time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		Capacity: 50,
	}
}

func TestHTTPFacadeRoundTrip(t *testing.T) {
	server := newAPIServer(t)
	facade := newHTTPFacade(t, server)
	ctx := context.Background()

	created, err := facade.Create(ctx, sampleEvent("Round Trip"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := facade.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Round Trip", got.Title)
	assert.Equal(t, "Cape Town", got.Location)
	assert.Equal(t, 50, got.Capacity)
	assert.Equal(t, domain.StatusDraft, got.Status)
}

func TestHTTPFacadeList(t *testing.T) {
	server := newAPIServer(t)
	facade := newHTTPFacade(t, server)
	ctx := context.Background()

	published, err := facade.Create(ctx, sampleEvent("React Conference 2024"))
	require.NoError(t, err)
	_, err = facade.Transition(ctx, published.ID, "publish")
	require.NoError(t, err)

	_, err = facade.Create(ctx, sampleEvent("Planning Meeting"))
	require.NoError(t, err)

	records, pagination, err := facade.List(ctx, dto.ListQuery{
		Search:  "react",
		Filters: map[string]string{"status": "published"},
	})
	require.NoError(t, err)
	require.NotNil(t, pagination)
	assert.Equal(t, int64(1), pagination.Total)
	require.Len(t, records, 1)
	assert.Equal(t, "React Conference 2024", records[0].Title)
}

func TestHTTPFacadeErrorNormalization(t *testing.T) {
	server := newAPIServer(t)
	facade := newHTTPFacade(t, server)
	ctx := context.Background()

	_, err := facade.Get(ctx, "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, response.ErrCodeNotFound, apiErr.Code)

	_, err = facade.Create(ctx, &domain.Event{})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, response.ErrCodeValidationFailed, apiErr.Code)
	assert.Contains(t, apiErr.Details, "title")
}

func TestHTTPFacadeTransportErrorNormalization(t *testing.T) {
	facade := NewHTTP(HTTPConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: 200 * time.Millisecond,
	}, catalog.Events(), nil)

	_, err := facade.Get(context.Background(), "any")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, response.ErrCodeNetworkError, apiErr.Code)

	_, _, err = facade.List(context.Background(), dto.ListQuery{})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, response.ErrCodeNetworkError, apiErr.Code)
}

func TestHTTPFacadeSendsBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"x","title":"T","status":"draft","start_at":"2026-10-01T18:00:00Z","created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}}`))
	}))
	defer backend.Close()

	facade := NewHTTP(HTTPConfig{BaseURL: backend.URL, Timeout: time.Second},
		catalog.Events(), func() string { return "secret-token" })

	_, err := facade.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestMockFacadeParity(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.UseMockAPI = true

	facade := New(cfg, catalog.Events(), nil, testLogger(t))
	_, ok := facade.(*MockFacade[*domain.Event])
	require.True(t, ok, "mock mode must select the mock facade at construction")

	ctx := context.Background()

	created, err := facade.Create(ctx, sampleEvent("Mock Event"))
	require.NoError(t, err)

	got, err := facade.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mock Event", got.Title)

	// same error normalization as the HTTP facade
	_, err = facade.Get(ctx, "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, response.ErrCodeNotFound, apiErr.Code)

	_, err = facade.Transition(ctx, created.ID, "archive")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, response.ErrCodeInvalidTransition, apiErr.Code)
}

func TestMockFacadeUpdate(t *testing.T) {
	facade := NewMock(catalog.Events(), testLogger(t))
	ctx := context.Background()

	created, err := facade.Create(ctx, sampleEvent("Before"))
	require.NoError(t, err)

	patch := sampleEvent("After")
	patch.Status = domain.StatusArchived // must not take effect

	updated, err := facade.Update(ctx, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, domain.StatusDraft, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestFacadeBulkDelete(t *testing.T) {
	server := newAPIServer(t)
	facade := newHTTPFacade(t, server)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for _, title := range []string{"A", "B", "C"} {
		created, err := facade.Create(ctx, sampleEvent(title))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	result, err := facade.Bulk(ctx, "delete", ids)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 0, result.Failed)

	records, pagination, err := facade.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(0), pagination.Total)
}

func TestNewSelectsHTTPByDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://localhost:8080/api/v1"
	cfg.API.Timeout = 10 * time.Second

	facade := New(cfg, catalog.Events(), nil, testLogger(t))
	_, ok := facade.(*HTTPFacade[*domain.Event])
	assert.True(t, ok)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/events"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/repository"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/service"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/middleware"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

type rsvpFixture struct {
	router *gin.Engine
	event  *domain.Event
}

// fakeAuth injects identity from a test header the way the JWT middleware
// would from token claims.
func fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-Test-User"); userID != "" {
			c.Set(middleware.ContextKeyUserID, userID)
		}
		c.Next()
	}
}

func newRSVPFixture(t *testing.T, capacity int) *rsvpFixture {
	t.Helper()

	res := catalog.Events()
	repo := repository.NewMemory(res.New)
	log, err := logger.New(&logger.Config{Level: "error", ServiceName: "test"})
	require.NoError(t, err)

	resources := service.NewResource(res, repo, events.NewNoopPublisher(), log)
	created, err := resources.Create(context.Background(), &domain.Event{
		Title:    "RSVP Target",
		StartAt:  time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
		Capacity: capacity,
	})
	require.NoError(t, err)
	published, err := resources.Transition(context.Background(), created.ID, "publish")
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api/v1", fakeAuth())
	NewRSVP(service.NewRSVP(repo, events.NewNoopPublisher(), log)).Register(api)

	return &rsvpFixture{router: router, event: published}
}

func (f *rsvpFixture) do(method, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRSVPEndpoint(t *testing.T) {
	f := newRSVPFixture(t, 10)

	rec := f.do(http.MethodPost, "/api/v1/events/"+f.event.ID+"/rsvp", "user-1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/events/"+f.event.ID+"/rsvp", "user-1")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRSVPEndpointRequiresIdentity(t *testing.T) {
	f := newRSVPFixture(t, 10)

	rec := f.do(http.MethodPost, "/api/v1/events/"+f.event.ID+"/rsvp", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRSVPEndpointCapacityConflict(t *testing.T) {
	f := newRSVPFixture(t, 1)

	rec := f.do(http.MethodPost, "/api/v1/events/"+f.event.ID+"/rsvp", "user-1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/events/"+f.event.ID+"/rsvp", "user-2")
	require.Equal(t, http.StatusConflict, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, response.ErrCodeEventFull, envelope.Error.Code)
}

func TestRSVPEndpointMissingEvent(t *testing.T) {
	f := newRSVPFixture(t, 10)

	rec := f.do(http.MethodPost, "/api/v1/events/missing/rsvp", "user-1")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, response.ErrCodeNotFound, envelope.Error.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := gin.New()
	api := router.Group("")
	NewHealth("alumniconnect-api", "1.0.0", nil).Register(api)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alumniconnect-api")

	req = httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

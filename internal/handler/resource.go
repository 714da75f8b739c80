package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/service"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

// Resource exposes the uniform REST surface of one managed resource:
//
//	GET    /<path>                paginated filtered list
//	GET    /<path>/meta           resource descriptor for management views
//	POST   /<path>                create
//	POST   /<path>/bulk           bulk delete or transition
//	GET    /<path>/:id            fetch one
//	PUT    /<path>/:id            update
//	DELETE /<path>/:id            delete
//	POST   /<path>/:id/<action>   one route per declared transition
type Resource[T domain.Entity] struct {
	svc *service.Resource[T]
}

// NewResource creates the handler for one resource service.
func NewResource[T domain.Entity](svc *service.Resource[T]) *Resource[T] {
	return &Resource[T]{svc: svc}
}

// Register mounts the resource routes on the router group.
func (h *Resource[T]) Register(rg *gin.RouterGroup) {
	res := h.svc.Descriptor()
	g := rg.Group("/" + res.Path)

	g.GET("", h.List)
	g.GET("/meta", h.Meta)
	g.POST("", h.Create)
	g.POST("/bulk", h.Bulk)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)

	for _, action := range res.TransitionNames() {
		g.POST("/:id/"+action, h.transition(action))
	}
}

// List handles GET /<path> with page, limit, search, status, and the
// resource's whitelisted filter keys as query parameters.
func (h *Resource[T]) List(c *gin.Context) {
	query := dto.ListQuery{
		Search:  c.Query("search"),
		Filters: map[string]string{},
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if status := c.Query("status"); status != "" {
		query.Filters["status"] = status
	}
	for _, key := range h.svc.Descriptor().FilterKeys {
		if value := c.Query(key); value != "" {
			query.Filters[key] = value
		}
	}
	query.SetDefaults()

	records, total, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(records, query.Page, query.Limit, total))
}

// Meta handles GET /<path>/meta. Management views read the resource
// descriptor once to build their filter bars, action buttons, and status
// badges instead of hardcoding them per domain.
func (h *Resource[T]) Meta(c *gin.Context) {
	res := h.svc.Descriptor()

	statuses := []domain.Status{res.DefaultStatus}
	transitions := make(map[string]dto.TransitionMeta, len(res.Transitions))
	for name, rule := range res.Transitions {
		from := make([]string, 0, len(rule.From))
		for _, s := range rule.From {
			from = append(from, string(s))
			statuses = append(statuses, s)
		}
		transitions[name] = dto.TransitionMeta{From: from, To: string(rule.To)}
		statuses = append(statuses, rule.To)
	}

	display := make(map[string]domain.Display, len(statuses))
	for _, s := range statuses {
		display[string(s)] = res.DisplayFor(s)
	}

	c.JSON(http.StatusOK, response.Success(dto.ResourceMeta{
		Name:           res.Name,
		Path:           res.Path,
		FilterKeys:     res.FilterKeys,
		DefaultFilters: res.DefaultFilters,
		Transitions:    transitions,
		Display:        display,
	}))
}

// Get handles GET /<path>/:id.
func (h *Resource[T]) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(record))
}

// Create handles POST /<path>.
func (h *Resource[T]) Create(c *gin.Context) {
	record := h.svc.Descriptor().New()
	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body: "+err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), record)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(created))
}

// Update handles PUT /<path>/:id. The request body is merged over the stored
// record; identity, creation time, and status cannot be changed this way.
func (h *Resource[T]) Update(c *gin.Context) {
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), func(record T) error {
		return c.ShouldBindJSON(record)
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(updated))
}

// Delete handles DELETE /<path>/:id.
func (h *Resource[T]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithMessage(nil, "Deleted"))
}

// Bulk handles POST /<path>/bulk.
func (h *Resource[T]) Bulk(c *gin.Context) {
	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body: "+err.Error()))
		return
	}

	result, err := h.svc.Bulk(c.Request.Context(), req.Operation, req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

func (h *Resource[T]) transition(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := h.svc.Transition(c.Request.Context(), c.Param("id"), action)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(record))
	}
}

func (h *Resource[T]) handleError(c *gin.Context, err error) {
	writeServiceError(c, err)
}

// writeServiceError maps service errors onto the envelope's error codes.
func writeServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ValidationFailed(verr.Fields))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.NotFound(""))
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.InvalidTransition(err.Error()))
	case errors.Is(err, service.ErrUnknownOperation):
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeUnknownOperation, err.Error()))
	case errors.Is(err, service.ErrEventFull):
		c.JSON(http.StatusConflict, response.EventFull(""))
	case errors.Is(err, service.ErrRSVPClosed):
		c.JSON(http.StatusGone, response.Error(response.ErrCodeRSVPClosed, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
	}
}

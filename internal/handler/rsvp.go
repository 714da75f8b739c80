package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/service"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/middleware"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

// RSVP exposes event attendance endpoints. The acting user comes from the
// JWT claims, never from the request body.
type RSVP struct {
	svc *service.RSVP
}

// NewRSVP creates the RSVP handler.
func NewRSVP(svc *service.RSVP) *RSVP {
	return &RSVP{svc: svc}
}

// Register mounts the RSVP routes under the events collection.
func (h *RSVP) Register(rg *gin.RouterGroup) {
	rg.POST("/events/:id/rsvp", h.Create)
	rg.DELETE("/events/:id/rsvp", h.Cancel)
}

// Create handles POST /events/:id/rsvp.
func (h *RSVP) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	event, err := h.svc.Register(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithMessage(event, "RSVP confirmed"))
}

// Cancel handles DELETE /events/:id/rsvp.
func (h *RSVP) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	event, err := h.svc.Cancel(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithMessage(event, "RSVP cancelled"))
}

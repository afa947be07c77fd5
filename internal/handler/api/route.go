package api

import (
	"net/http"
	"time"

	resdto "pestdesk/internal/handler/dto/response"
	"pestdesk/internal/handler/httperr"
	"pestdesk/internal/pkg/config"
	"pestdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	q   queries.RouteQueries
	loc *time.Location
}

func NewRouteHandler(q queries.RouteQueries, cfg config.Config) *RouteHandler {
	loc, err := time.LoadLocation(cfg.Schedule.TimeZone)
	if err != nil {
		loc = time.Local
	}
	return &RouteHandler{q: q, loc: loc}
}

// @Summary Day route
// @Description Ordered stops with coordinates for a technician's day, for map plotting
// @Tags routes
// @Produce json
// @Security BearerAuth
// @Param date query string false "Calendar day (YYYY-MM-DD), default today"
// @Success 200 {object} resdto.RouteResponse
// @Failure 400 {object} httperr.Response
// @Router /routes [get]
func (h *RouteHandler) DayRoute(c *gin.Context) {
	var day time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date; expected YYYY-MM-DD", nil)
			return
		}
		day = parsed
	} else {
		now := time.Now().In(h.loc)
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	}

	view, err := h.q.DayRoute(c.Request.Context(), day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build route", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRouteView(view))
}

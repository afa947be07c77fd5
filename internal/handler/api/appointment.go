package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "pestdesk/internal/handler/dto/request"
	resdto "pestdesk/internal/handler/dto/response"
	"pestdesk/internal/handler/httperr"
	"pestdesk/internal/pkg/config"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
	loc  *time.Location
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries, cfg config.Config) *AppointmentHandler {
	loc, err := time.LoadLocation(cfg.Schedule.TimeZone)
	if err != nil {
		loc = time.Local
	}
	return &AppointmentHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Book appointment
// @Description Book a 60-minute appointment starting at the given instant
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Create appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot no longer available", nil)
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrGeocodeFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Could not resolve appointment location", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Create appointment failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List appointments for a calendar day or a customer
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Param customer_id query string false "Customer ID"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer_id", nil)
			return
		}
		views, err := h.q.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list appointments", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
		return
	}

	day, ok := h.parseDay(c)
	if !ok {
		return
	}
	views, err := h.q.ListByDay(c.Request.Context(), day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list appointments", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Reschedule appointment
// @Description Move an appointment to a new start instant; status is untouched
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleAppointmentRequest true "New start time"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/schedule [patch]
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Reschedule(c.Request.Context(), id, req.StartTime); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot no longer available", nil)
		case errors.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reschedule failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Update appointment status
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, commands.ErrAppointmentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status update failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Cancel an appointment, freeing its slots; the record is kept
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrAppointmentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cancel failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Day slot grid
// @Description Get the 08:00-18:00 grid of 15-minute slots for a day
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} resdto.GridResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule/grid [get]
func (h *AppointmentHandler) Grid(c *gin.Context) {
	day, ok := h.parseDay(c)
	if !ok {
		return
	}
	view, err := h.q.DayGrid(c.Request.Context(), day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build grid", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGridView(view))
}

// @Summary Check candidate start
// @Description Report whether a 60-minute appointment at the given start would overlap an existing one
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param start query string true "Candidate start (RFC 3339)"
// @Success 200 {object} resdto.OverlapResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule/check [get]
func (h *AppointmentHandler) CheckOverlap(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start; expected RFC 3339", nil)
		return
	}
	start = start.In(h.loc)

	overlaps, err := h.q.CheckOverlap(c.Request.Context(), start)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Overlap check failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.OverlapResponse{StartTime: start, Overlaps: overlaps})
}

// parseDay reads the date query parameter as a calendar day in the business
// time zone. Missing date means today.
func (h *AppointmentHandler) parseDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now().In(h.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date; expected YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return day, true
}

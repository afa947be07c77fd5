package api

import (
	"errors"
	"net/http"

	reqdto "pestdesk/internal/handler/dto/request"
	resdto "pestdesk/internal/handler/dto/response"
	"pestdesk/internal/handler/httperr"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateCustomerEmail) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create customer failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load customer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCustomerView(view))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary List customers
// @Description List customers, optionally filtered by plan, tag, or search text
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param service_plan query string false "Service plan filter"
// @Param tag query string false "Tag filter"
// @Param search query string false "Name/email/address search"
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	filter := queries.CustomerFilter{
		ServicePlan: c.Query("service_plan"),
		Tag:         c.Query("tag"),
		Search:      c.Query("search"),
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list customers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(views))
}

// @Summary Update customer
// @Description Update a customer record; an address change re-geocodes the location
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrDuplicateCustomerEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Update customer failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load customer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

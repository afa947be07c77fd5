package api

import (
	"errors"
	"net/http"

	domreview "pestdesk/internal/domain/review"
	reqdto "pestdesk/internal/handler/dto/request"
	resdto "pestdesk/internal/handler/dto/response"
	"pestdesk/internal/handler/httperr"
	"pestdesk/internal/handler/middleware"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Submit review
// @Description Submit a customer review; it stays hidden until approved
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitReviewRequest true "Submit review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), commands.SubmitReviewRequest{
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit review failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary List published reviews
// @Description Approved reviews only, newest first
// @Tags reviews
// @Produce json
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews [get]
func (h *ReviewHandler) ListPublished(c *gin.Context) {
	views, err := h.q.ListPublished(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary List reviews for moderation
// @Description All reviews, optionally filtered by moderation status
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param status query string false "Moderation status filter"
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews/moderation [get]
func (h *ReviewHandler) ListForModeration(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Moderate review
// @Description Approve or reject a pending review; the decision is final
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ModerateReviewRequest true "Moderation decision"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews/{id}/moderation [patch]
func (h *ReviewHandler) Moderate(c *gin.Context) {
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Moderate(c.Request.Context(), id, req.Status, staffID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, domreview.ErrAlreadyModerated):
			httperr.AbortWithError(c, http.StatusConflict, err, "Review already moderated", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Moderation failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	domchat "pestdesk/internal/domain/chat"
	reqdto "pestdesk/internal/handler/dto/request"
	resdto "pestdesk/internal/handler/dto/response"
	"pestdesk/internal/handler/httperr"
	"pestdesk/internal/handler/middleware"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	cmds commands.ChatCommands
	q    queries.ChatQueries
}

func NewChatHandler(cmds commands.ChatCommands, q queries.ChatQueries) *ChatHandler {
	return &ChatHandler{cmds: cmds, q: q}
}

// @Summary Post chat message
// @Description Post a staff message to a customer thread; fans out to live subscribers
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer_id path string true "Customer ID"
// @Param request body reqdto.PostMessageRequest true "Message body"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /chat/{customer_id}/messages [post]
func (h *ChatHandler) Post(c *gin.Context) {
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer_id", nil)
		return
	}
	var req reqdto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.PostMessage(c.Request.Context(), commands.PostMessageRequest{
		CustomerID: customerID,
		Sender:     domchat.SenderStaff.String(),
		SenderID:   staffID,
		Body:       req.Body,
	})
	if err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Post message failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessageView(view))
}

// @Summary Chat history
// @Description Messages for the customer thread in ascending sent order
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param customer_id path string true "Customer ID"
// @Param before query string false "Return messages sent before this instant (RFC 3339)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {array} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /chat/{customer_id}/messages [get]
func (h *ChatHandler) History(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer_id", nil)
		return
	}

	var before time.Time
	if raw := c.Query("before"); raw != "" {
		before, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid before; expected RFC 3339", nil)
			return
		}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.q.History(c.Request.Context(), customerID, before, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load history", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessageViews(views))
}

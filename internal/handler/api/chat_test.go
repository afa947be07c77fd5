//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"pestdesk/internal/handler/api"
	resdto "pestdesk/internal/handler/dto/response"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"
	"pestdesk/tests/common/httptest"
	commandsmock "pestdesk/tests/mock/commands"
	queriesmock "pestdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChatHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockChatCommands
	mockQueries  *queriesmock.MockChatQueries
	handler      *api.ChatHandler
	staffID      uuid.UUID
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockChatCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockChatQueries(s.mockCtrl)
	s.handler = api.NewChatHandler(s.mockCommands, s.mockQueries)
	s.staffID = uuid.New()

	s.router.POST("/chat/:customer_id/messages", func(c *gin.Context) {
		// Mock middleware behavior
		c.Set("user_id", s.staffID)
		s.handler.Post(c)
	})
	s.router.GET("/chat/:customer_id/messages", s.handler.History)
}

func (s *ChatHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) TestPost() {
	customerID := uuid.New()
	url := fmt.Sprintf("/chat/%s/messages", customerID)
	reqBody := map[string]any{"body": "We can reschedule to Thursday."}

	s.Run("success: returns 201 Created with the stored message", func() {
		view := &queries.MessageView{
			ID:         uuid.New(),
			CustomerID: customerID,
			Sender:     "staff",
			Body:       "We can reschedule to Thursday.",
			SentAt:     time.Now(),
		}
		s.mockCommands.EXPECT().PostMessage(gomock.Any(), commands.PostMessageRequest{
			CustomerID: customerID,
			Sender:     "staff",
			SenderID:   s.staffID,
			Body:       "We can reschedule to Thursday.",
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("staff", response.Sender)
		s.Equal(customerID, response.CustomerID)
	})

	s.Run("error: 404 Not Found for unknown customer", func() {
		s.mockCommands.EXPECT().PostMessage(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCustomerNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: 400 Bad Request for an oversized body", func() {
		body := map[string]any{"body": strings.Repeat("a", 2001)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed customer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chat/not-a-uuid/messages", reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ChatHandlerTestSuite) TestHistory() {
	customerID := uuid.New()
	url := fmt.Sprintf("/chat/%s/messages", customerID)

	s.Run("success: returns the thread page", func() {
		msgs := []*queries.MessageView{
			{ID: uuid.New(), CustomerID: customerID, Sender: "customer", Body: "Still seeing ants.", SentAt: time.Now().Add(-time.Hour)},
			{ID: uuid.New(), CustomerID: customerID, Sender: "staff", Body: "We will come by tomorrow.", SentAt: time.Now()},
		}
		s.mockQueries.EXPECT().History(gomock.Any(), customerID, time.Time{}, 50).
			Return(msgs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("customer", response[0].Sender)
	})

	s.Run("success: forwards the limit parameter", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), customerID, time.Time{}, 10).
			Return([]*queries.MessageView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed before parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?before=yesterday", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

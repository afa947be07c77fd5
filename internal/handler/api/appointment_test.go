//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"pestdesk/internal/handler/api"
	resdto "pestdesk/internal/handler/dto/response"
	"pestdesk/internal/pkg/config"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"
	"pestdesk/tests/common/builder"
	"pestdesk/tests/common/httptest"
	"pestdesk/tests/common/testutil"
	commandsmock "pestdesk/tests/mock/commands"
	queriesmock "pestdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/appointments", s.handler.Create)
	s.router.GET("/appointments", s.handler.List)
	s.router.GET("/appointments/:id", s.handler.Get)
	s.router.PATCH("/appointments/:id/schedule", s.handler.Reschedule)
	s.router.PATCH("/appointments/:id/status", s.handler.UpdateStatus)
	s.router.DELETE("/appointments/:id", s.handler.Cancel)
	s.router.GET("/schedule/grid", s.handler.Grid)
	s.router.GET("/schedule/check", s.handler.CheckOverlap)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	targetURL := "/appointments"

	apt := builder.NewAppointmentBuilder()
	reqBody := apt.BuildDTO()
	view := apt.BuildReadModel()

	s.Run("success: returns 201 Created with the booked appointment", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, targetURL, reqBody, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.CustomerID, response.CustomerID)
	})

	s.Run("error: 409 Conflict when the slot is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrAppointmentConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, targetURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot no longer available")
	})

	s.Run("error: 404 Not Found for unknown customer", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrCustomerNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, targetURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: 422 when no location can be resolved", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrGeocodeFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, targetURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Could not resolve appointment location")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: customer_id", mutate: testutil.Field("customer_id", nil)},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: service_type", mutate: testutil.Field("service_type", nil)},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "not-a-time")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, targetURL, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestReschedule() {
	apt := builder.NewAppointmentBuilder()
	view := apt.BuildReadModel()
	targetURL := fmt.Sprintf("/appointments/%s/schedule", view.ID)
	newStart := view.StartTime.Add(2 * time.Hour)
	reqBody := map[string]any{"start_time": newStart.Format(time.RFC3339)}

	s.Run("success: returns 200 OK with the moved appointment", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), view.ID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, targetURL, reqBody, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 409 Conflict when the new slot is taken", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), view.ID, gomock.Any()).
			Return(commands.ErrAppointmentConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, targetURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot no longer available")
	})

	s.Run("error: 404 Not Found for unknown appointment", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), view.ID, gomock.Any()).
			Return(commands.ErrAppointmentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, targetURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/not-a-uuid/schedule", reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown appointment", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(commands.ErrAppointmentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	s.Run("success: lists by customer when customer_id is given", func() {
		apt := builder.NewAppointmentBuilder()
		view := apt.BuildReadModel()
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), apt.CustomerID).
			Return([]*queries.AppointmentView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?customer_id="+apt.CustomerID.String(), nil, "")

		var response []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: lists by day when date is given", func() {
		s.mockQueries.EXPECT().ListByDay(gomock.Any(), gomock.Any()).
			Return([]*queries.AppointmentView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?date=2026-09-15", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?date=15-09-2026", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestGrid() {
	s.Run("success: returns the day grid", func() {
		grid := &queries.GridView{Date: "2026-09-15", Hours: []queries.HourBlockView{}}
		s.mockQueries.EXPECT().DayGrid(gomock.Any(), gomock.Any()).
			Return(grid, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/grid?date=2026-09-15", nil, "")

		var response resdto.GridResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-15", response.Date)
	})
}

func (s *AppointmentHandlerTestSuite) TestCheckOverlap() {
	s.Run("success: reports an overlap", func() {
		s.mockQueries.EXPECT().CheckOverlap(gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		start := url.QueryEscape(time.Now().Format(time.RFC3339))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/check?start="+start, nil, "")

		var response resdto.OverlapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Overlaps)
	})

	s.Run("error: 400 Bad Request without a start parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/check", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

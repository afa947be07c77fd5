package response

import (
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type RouteStopResponse struct {
	Order         int       `json:"order"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	StartTime     time.Time `json:"startTime"`
	ServiceType   string    `json:"serviceType"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
}

type RouteResponse struct {
	Date  string              `json:"date"`
	Stops []RouteStopResponse `json:"stops"`
}

func FromRouteView(rm *queries.RouteView) *RouteResponse {
	resp := &RouteResponse{
		Date:  rm.Date,
		Stops: make([]RouteStopResponse, 0, len(rm.Stops)),
	}
	for _, stop := range rm.Stops {
		resp.Stops = append(resp.Stops, RouteStopResponse{
			Order:         stop.Order,
			AppointmentID: stop.AppointmentID,
			CustomerID:    stop.CustomerID,
			CustomerName:  stop.CustomerName,
			StartTime:     stop.StartTime,
			ServiceType:   stop.ServiceType,
			Latitude:      stop.Latitude,
			Longitude:     stop.Longitude,
		})
	}
	return resp
}

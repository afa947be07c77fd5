package queries

import (
	"context"
	"sort"
	"time"
)

type RouteQueries interface {
	// DayRoute orders the day's non-cancelled appointments by start time
	// and exposes their coordinates for map plotting.
	DayRoute(ctx context.Context, day time.Time) (*RouteView, error)
}

type routeQueriesImpl struct {
	appointments AppointmentViewRepo
}

func NewRouteQueries(appointments AppointmentViewRepo) RouteQueries {
	return &routeQueriesImpl{appointments: appointments}
}

func (q *routeQueriesImpl) DayRoute(ctx context.Context, day time.Time) (*RouteView, error) {
	dayStart, dayEnd := dayBounds(day)
	views, err := q.appointments.FindByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	stops := make([]RouteStopView, 0, len(views))
	for _, v := range views {
		if v.Status == "cancelled" {
			continue
		}
		stops = append(stops, RouteStopView{
			AppointmentID: v.ID,
			CustomerID:    v.CustomerID,
			CustomerName:  v.CustomerName,
			StartTime:     v.StartTime,
			ServiceType:   v.ServiceType,
			Latitude:      v.Latitude,
			Longitude:     v.Longitude,
		})
	}
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].StartTime.Before(stops[j].StartTime)
	})
	for i := range stops {
		stops[i].Order = i + 1
	}

	return &RouteView{
		Date:  dayStart.Format("2006-01-02"),
		Stops: stops,
	}, nil
}

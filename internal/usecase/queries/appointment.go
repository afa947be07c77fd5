package queries

import (
	"context"
	"time"

	"pestdesk/internal/domain/schedule"

	"github.com/google/uuid"
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByDay(ctx context.Context, day time.Time) ([]*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentView, error)
	// DayGrid projects the day's appointments onto the 15-minute slot grid.
	DayGrid(ctx context.Context, day time.Time) (*GridView, error)
	// CheckOverlap reports whether a 60-minute appointment starting at start
	// would intersect an existing active appointment. Advisory only; the
	// authoritative check runs inside the write transaction.
	CheckOverlap(ctx context.Context, start time.Time) (bool, error)
}

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*AppointmentView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
}

func NewAppointmentQueries(repo AppointmentViewRepo) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByDay(ctx context.Context, day time.Time) ([]*AppointmentView, error) {
	dayStart, dayEnd := dayBounds(day)
	return q.repo.FindByDay(ctx, dayStart, dayEnd)
}

func (q *appointmentQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentView, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}

func (q *appointmentQueriesImpl) DayGrid(ctx context.Context, day time.Time) (*GridView, error) {
	entries, err := q.entriesForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	grid := schedule.BuildGrid(day, entries)

	view := &GridView{
		Date:  grid.Day.Format("2006-01-02"),
		Hours: make([]HourBlockView, 0, len(grid.Hours)),
	}
	for _, block := range grid.Hours {
		hourView := HourBlockView{
			Hour:  block.Hour,
			Slots: make([]SlotView, 0, len(block.Slots)),
		}
		for _, slot := range block.Slots {
			hourView.Slots = append(hourView.Slots, SlotView{
				Start:         slot.Start,
				End:           slot.End,
				Available:     !slot.Occupied(),
				AppointmentID: slot.AppointmentID,
			})
		}
		view.Hours = append(view.Hours, hourView)
	}
	return view, nil
}

func (q *appointmentQueriesImpl) CheckOverlap(ctx context.Context, start time.Time) (bool, error) {
	entries, err := q.entriesForDay(ctx, start)
	if err != nil {
		return false, err
	}
	return schedule.WouldOverlap(start, entries), nil
}

func (q *appointmentQueriesImpl) entriesForDay(ctx context.Context, day time.Time) ([]schedule.Entry, error) {
	dayStart, dayEnd := dayBounds(day)
	views, err := q.repo.FindByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	entries := make([]schedule.Entry, 0, len(views))
	for _, v := range views {
		entries = append(entries, schedule.Entry{
			ID:        v.ID,
			Start:     v.StartTime,
			Cancelled: v.Status == "cancelled",
		})
	}
	return entries, nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a 15-minute bucket of a business day. Derived, never persisted.
type Slot struct {
	Start         time.Time
	End           time.Time
	AppointmentID *uuid.UUID
}

func (s Slot) Occupied() bool {
	return s.AppointmentID != nil
}

// HourBlock groups the slots of one business hour, ordered :00/:15/:30/:45.
type HourBlock struct {
	Hour  int
	Slots []Slot
}

// Grid is the full slot grid of one business day: one HourBlock per hour of
// [BusinessOpenHour, BusinessCloseHour), ascending.
type Grid struct {
	Day   time.Time
	Hours []HourBlock
}

// SlotCount returns the total number of slots in the grid.
func (g Grid) SlotCount() int {
	n := 0
	for _, h := range g.Hours {
		n += len(h.Slots)
	}
	return n
}

// SlotAt returns the slot whose interval contains t, if any.
func (g Grid) SlotAt(t time.Time) (Slot, bool) {
	for _, h := range g.Hours {
		for _, s := range h.Slots {
			if !t.Before(s.Start) && t.Before(s.End) {
				return s, true
			}
		}
	}
	return Slot{}, false
}

// BuildGrid computes the slot grid for the calendar date of day (time of day
// ignored) from the given appointments, which may span any day and status.
//
// A slot is occupied when its interval intersects the 60-minute interval of a
// non-cancelled appointment starting on that day. At most one occupying
// appointment is recorded per slot; ties resolve to the earliest start and
// then the lowest id. Deterministic: identical inputs yield identical grids.
func BuildGrid(day time.Time, entries []Entry) Grid {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	active := activeOn(midnight, entries)

	grid := Grid{
		Day:   midnight,
		Hours: make([]HourBlock, 0, BusinessCloseHour-BusinessOpenHour),
	}

	for hour := BusinessOpenHour; hour < BusinessCloseHour; hour++ {
		block := HourBlock{
			Hour:  hour,
			Slots: make([]Slot, 0, SlotsPerHour),
		}
		for i := 0; i < SlotsPerHour; i++ {
			start := midnight.Add(time.Duration(hour)*time.Hour + time.Duration(i)*SlotDuration)
			slot := Slot{
				Start: start,
				End:   start.Add(SlotDuration),
			}
			for _, e := range active {
				aptStart, aptEnd := e.Interval()
				if intersects(slot.Start, slot.End, aptStart, aptEnd) {
					id := e.ID
					slot.AppointmentID = &id
					break
				}
			}
			block.Slots = append(block.Slots, slot)
		}
		grid.Hours = append(grid.Hours, block)
	}

	return grid
}

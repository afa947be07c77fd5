// Package schedule implements the appointment availability engine: a pure
// computation that partitions a business day into fixed-size slots, marks
// slot occupancy against existing appointments, and decides whether a
// candidate appointment would overlap an existing one.
//
// The package holds no state and performs no I/O. Callers must pass a fresh
// snapshot of appointments on every call.
package schedule

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

const (
	// Business hours: slots are generated for [08:00, 18:00) local time only.
	BusinessOpenHour  = 8
	BusinessCloseHour = 18

	// SlotDuration is the display/selection granularity of the day grid.
	SlotDuration = 15 * time.Minute

	// AppointmentDuration is the fixed effective duration of every
	// appointment for occupancy and overlap purposes, independent of the
	// slot granularity and of the appointment's status.
	AppointmentDuration = time.Hour

	SlotsPerHour = int(time.Hour / SlotDuration)
)

// Entry is the minimal appointment projection the engine consumes: identity,
// start instant, and whether the appointment is cancelled. Cancelled entries
// never occupy a slot and never count toward overlap.
type Entry struct {
	ID        uuid.UUID
	Start     time.Time
	Cancelled bool
}

// Interval returns the entry's effective half-open interval
// [start, start+AppointmentDuration).
func (e Entry) Interval() (start, end time.Time) {
	return e.Start, e.Start.Add(AppointmentDuration)
}

// sameDay reports whether t falls on the calendar date of day, evaluated in
// day's location.
func sameDay(t, day time.Time) bool {
	t = t.In(day.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// activeOn filters entries to non-cancelled ones starting on the given day,
// ordered by start instant and then by id so that slot occupancy attribution
// is deterministic even if two appointments share a start to the minute.
func activeOn(day time.Time, entries []Entry) []Entry {
	active := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Cancelled || !sameDay(e.Start, day) {
			continue
		}
		active = append(active, e)
	}

	for i := 1; i < len(active); i++ {
		for j := i; j > 0 && entryLess(active[j], active[j-1]); j-- {
			active[j], active[j-1] = active[j-1], active[j]
		}
	}
	return active
}

func entryLess(a, b Entry) bool {
	if !a.Start.Equal(b.Start) {
		return a.Start.Before(b.Start)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

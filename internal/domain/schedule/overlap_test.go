//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"pestdesk/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestWouldOverlap(t *testing.T) {
	// Existing confirmed appointment 10:00-11:00 on 2024-06-01.
	existing := []schedule.Entry{entry(at(2024, 6, 1, 10, 0))}

	cases := []struct {
		name      string
		candidate time.Time
		want      bool
	}{
		{name: "identical start", candidate: at(2024, 6, 1, 10, 0), want: true},
		{name: "back-to-back after", candidate: at(2024, 6, 1, 11, 0), want: false},
		{name: "back-to-back before", candidate: at(2024, 6, 1, 9, 0), want: false},
		{name: "partial overlap from before", candidate: at(2024, 6, 1, 9, 30), want: true},
		{name: "partial overlap from after", candidate: at(2024, 6, 1, 10, 45), want: true},
		{name: "well before", candidate: at(2024, 6, 1, 8, 0), want: false},
		{name: "well after", candidate: at(2024, 6, 1, 12, 0), want: false},
		{name: "one minute of overlap", candidate: at(2024, 6, 1, 10, 59), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.WouldOverlap(tc.candidate, existing))
		})
	}
}

func TestWouldOverlap_Containment(t *testing.T) {
	// A 60-minute candidate cannot strictly contain another 60-minute
	// appointment, so containment is exercised with off-grid starts: the
	// general intersection test must catch both directions without special
	// cases.
	existing := []schedule.Entry{entry(at(2024, 6, 1, 10, 30))}

	// Candidate 10:15-11:15 vs existing 10:30-11:30: partial.
	assert.True(t, schedule.WouldOverlap(at(2024, 6, 1, 10, 15), existing))
	// Candidate 10:30-11:30: identical interval, full containment both ways.
	assert.True(t, schedule.WouldOverlap(at(2024, 6, 1, 10, 30), existing))
}

func TestWouldOverlap_CancelledExcluded(t *testing.T) {
	existing := []schedule.Entry{{
		ID:        entry(at(2024, 6, 1, 10, 0)).ID,
		Start:     at(2024, 6, 1, 10, 0),
		Cancelled: true,
	}}

	assert.False(t, schedule.WouldOverlap(at(2024, 6, 1, 10, 0), existing))
	// Cancelled appointments on the boundary of the candidate window are
	// excluded too.
	assert.False(t, schedule.WouldOverlap(at(2024, 6, 1, 10, 30), existing))
}

func TestWouldOverlap_OtherDaysIgnored(t *testing.T) {
	existing := []schedule.Entry{entry(at(2024, 6, 2, 10, 0))}

	assert.False(t, schedule.WouldOverlap(at(2024, 6, 1, 10, 0), existing))
}

func TestWouldOverlap_MultipleEntries(t *testing.T) {
	existing := []schedule.Entry{
		entry(at(2024, 6, 1, 9, 0)),
		entry(at(2024, 6, 1, 13, 0)),
	}

	assert.False(t, schedule.WouldOverlap(at(2024, 6, 1, 10, 0), existing))
	assert.True(t, schedule.WouldOverlap(at(2024, 6, 1, 13, 30), existing))
	assert.True(t, schedule.WouldOverlap(at(2024, 6, 1, 8, 30), existing))
}

package schedule

import "time"

// intersects reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any non-zero duration. Touching endpoints do not
// intersect; containment in either direction does.
func intersects(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WouldOverlap reports whether a candidate appointment starting at
// candidateStart (with the fixed AppointmentDuration) would overlap any
// non-cancelled appointment on the same calendar day.
//
// Back-to-back appointments, where one starts exactly when another ends, do
// not overlap. The same function backs both the speculative UI preview and
// the authoritative check at persistence time.
func WouldOverlap(candidateStart time.Time, entries []Entry) bool {
	candidateEnd := candidateStart.Add(AppointmentDuration)

	for _, e := range activeOn(candidateStart, entries) {
		aptStart, aptEnd := e.Interval()
		if intersects(candidateStart, candidateEnd, aptStart, aptEnd) {
			return true
		}
	}
	return false
}

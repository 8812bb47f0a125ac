package availability

import (
	"strings"
	"time"

	"versatil/models"
)

// The slot grid is fixed: the wizard always renders the same 30-minute labels
// from 10:00 up to (but not including) 20:00, whatever the stylist's hours.
// Only the bookability of each label varies.
const (
	SlotStepMinutes  = 30
	GridStartMinutes = 10 * 60
	GridEndMinutes   = 20 * 60
)

// weekdayNames is ordered Monday-first to match the business week. Go's
// time.Weekday counts from Sunday, so lookups remap the native index.
var weekdayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Window is a resolved working-hours range in minutes from midnight.
// The end is exclusive as a slot start, inclusive as a service end.
type Window struct {
	Start int
	End   int
}

// DefaultWindow is substituted when a stylist has no schedule on file, so a
// missing document never collapses the day to zero slots.
func DefaultWindow() Window {
	return Window{Start: GridStartMinutes, End: GridEndMinutes}
}

// SlotGrid returns the canonical ordered slot labels. The upper bound is
// exclusive: 20 labels, "10:00" through "19:30".
func SlotGrid() []string {
	labels := make([]string, 0, (GridEndMinutes-GridStartMinutes)/SlotStepMinutes)
	for m := GridStartMinutes; m < GridEndMinutes; m += SlotStepMinutes {
		labels = append(labels, models.FormatClock(m))
	}
	return labels
}

// ResolveDayWindow maps the date's weekday to the stylist's window for that
// day. Absent or disabled days, unparseable times, and inverted ranges all
// resolve to no window.
func ResolveDayWindow(schedule models.WeeklySchedule, date time.Time) (Window, bool) {
	idx := int(date.Weekday())
	if idx == 0 {
		idx = 6
	} else {
		idx--
	}
	day, ok := schedule[weekdayNames[idx]]
	if !ok || !day.Enabled {
		return Window{}, false
	}
	start, err := models.ParseClock(day.Start)
	if err != nil {
		return Window{}, false
	}
	end, err := models.ParseClock(day.End)
	if err != nil {
		return Window{}, false
	}
	if start >= end {
		return Window{}, false
	}
	return Window{Start: start, End: end}, true
}

// IsWithinWindow reports whether a slot may start inside the window.
// The end is exclusive: a slot exactly at closing time is not offered.
func IsWithinWindow(slotMinutes int, w Window) bool {
	return slotMinutes >= w.Start && slotMinutes < w.End
}

// FitsBeforeClose reports whether the whole service fits before closing.
// Finishing exactly at closing time is allowed.
func FitsBeforeClose(slotMinutes, durationMinutes int, w Window) bool {
	return slotMinutes+durationMinutes <= w.End
}

// Overlaps is the canonical half-open interval test: [aStart,aEnd) and
// [bStart,bEnd) share at least one instant. Every conflict decision in the
// engine goes through this predicate.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// SlotStatus carries the per-slot decision plus the reason a slot is blocked,
// which the wizard surfaces to the customer.
type SlotStatus struct {
	Available    bool
	OutsideHours bool
	Booked       bool
}

// sameDate compares calendar date components only, ignoring time of day.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// matchesStylist applies the name-string join contract: case-insensitive,
// whitespace-trimmed equality on performedBy.
func matchesStylist(appt models.Appointment, stylistName string) bool {
	return strings.EqualFold(
		strings.TrimSpace(appt.PerformedBy),
		strings.TrimSpace(stylistName),
	)
}

// blocksSlots reports whether an appointment's status occupies time.
func blocksSlots(appt models.Appointment) bool {
	return !strings.EqualFold(strings.TrimSpace(appt.Status), models.AppointmentCancelled)
}

// busyInterval converts an appointment into a same-day minutes-of-day range.
// A missing or inverted end time falls back to the 60-minute default; an end
// past midnight is clamped to the end of the day.
func busyInterval(appt models.Appointment) (int, int) {
	start := appt.StartTime.Hour()*60 + appt.StartTime.Minute()
	end := start + models.DefaultServiceDuration
	if appt.EndTime.After(appt.StartTime) {
		if sameDate(appt.StartTime, appt.EndTime) {
			end = appt.EndTime.Hour()*60 + appt.EndTime.Minute()
		} else {
			end = 24 * 60
		}
	}
	return start, end
}

// conflictIntervals filters the snapshot down to the intervals that can block
// slots: same stylist, same calendar date, status other than cancelled.
func conflictIntervals(appointments []models.Appointment, date time.Time, stylistName string) [][2]int {
	var busy [][2]int
	for _, appt := range appointments {
		if !matchesStylist(appt, stylistName) {
			continue
		}
		if !blocksSlots(appt) {
			continue
		}
		if !sameDate(appt.StartTime, date) {
			continue
		}
		start, end := busyInterval(appt)
		busy = append(busy, [2]int{start, end})
	}
	return busy
}

// ComputeStatuses produces a total mapping from every grid label to its
// status for the given (schedule, date, duration, snapshot) tuple. A nil or
// empty schedule falls back to the default window; a non-positive duration
// falls back to the 60-minute default. Pure: the result depends only on the
// inputs.
func ComputeStatuses(
	schedule models.WeeklySchedule,
	date time.Time,
	durationMinutes int,
	stylistName string,
	appointments []models.Appointment,
) map[string]SlotStatus {
	if durationMinutes <= 0 {
		durationMinutes = models.DefaultServiceDuration
	}

	window, open := ResolveDayWindow(schedule, date)
	if len(schedule) == 0 {
		window, open = DefaultWindow(), true
	}

	busy := conflictIntervals(appointments, date, stylistName)

	grid := SlotGrid()
	statuses := make(map[string]SlotStatus, len(grid))
	for _, label := range grid {
		slot, _ := models.ParseClock(label)

		if !open || !IsWithinWindow(slot, window) || !FitsBeforeClose(slot, durationMinutes, window) {
			statuses[label] = SlotStatus{OutsideHours: true}
			continue
		}

		st := SlotStatus{}
		for _, iv := range busy {
			if Overlaps(slot, slot+durationMinutes, iv[0], iv[1]) {
				st.Booked = true
				break
			}
		}
		st.Available = !st.Booked
		statuses[label] = st
	}
	return statuses
}

// ComputeAvailability reduces ComputeStatuses to the label -> bookable
// mapping used for rendering and for pre-booking revalidation.
func ComputeAvailability(
	schedule models.WeeklySchedule,
	date time.Time,
	durationMinutes int,
	stylistName string,
	appointments []models.Appointment,
) map[string]bool {
	statuses := ComputeStatuses(schedule, date, durationMinutes, stylistName, appointments)
	out := make(map[string]bool, len(statuses))
	for label, st := range statuses {
		out[label] = st.Available
	}
	return out
}

// RevalidateSelection confirms a previously chosen slot is still bookable in
// a freshly computed mapping. Unknown labels are rejected.
func RevalidateSelection(selectedSlot string, availability map[string]bool) bool {
	return availability[selectedSlot]
}

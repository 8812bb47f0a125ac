package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versatil/models"
)

// 2026-01-05 is a Monday, 2026-01-04 a Sunday.
var (
	monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	sunday = time.Date(2026, time.January, 4, 0, 0, 0, 0, time.Local)
)

func mondaySchedule(start, end string) models.WeeklySchedule {
	return models.WeeklySchedule{
		"monday": {Enabled: true, Start: start, End: end},
	}
}

func appt(day time.Time, start, end string, stylist, status string) models.Appointment {
	s, _ := models.ParseClock(start)
	e, _ := models.ParseClock(end)
	return models.Appointment{
		ID:          "a-" + start,
		StartTime:   time.Date(day.Year(), day.Month(), day.Day(), s/60, s%60, 0, 0, time.Local),
		EndTime:     time.Date(day.Year(), day.Month(), day.Day(), e/60, e%60, 0, 0, time.Local),
		PerformedBy: stylist,
		Status:      status,
	}
}

func TestSlotGridContract(t *testing.T) {
	grid := SlotGrid()

	require.Len(t, grid, (GridEndMinutes-GridStartMinutes)/SlotStepMinutes)
	assert.Equal(t, "10:00", grid[0])
	assert.Equal(t, "19:30", grid[len(grid)-1])

	prev := -1
	for _, label := range grid {
		m, err := models.ParseClock(label)
		require.NoError(t, err)
		assert.Greater(t, m, prev, "labels must be strictly increasing")
		assert.Less(t, m, GridEndMinutes, "upper bound is exclusive")
		prev = m
	}

	// Deterministic: repeated calls produce the same sequence.
	assert.Equal(t, grid, SlotGrid())
}

func TestResolveDayWindowMondayFirstIndexing(t *testing.T) {
	sched := models.WeeklySchedule{
		"monday": {Enabled: true, Start: "11:00", End: "19:00"},
		"sunday": {Enabled: true, Start: "12:00", End: "16:00"},
	}

	w, ok := ResolveDayWindow(sched, monday)
	require.True(t, ok)
	assert.Equal(t, Window{Start: 11 * 60, End: 19 * 60}, w)

	w, ok = ResolveDayWindow(sched, sunday)
	require.True(t, ok)
	assert.Equal(t, Window{Start: 12 * 60, End: 16 * 60}, w)

	// Tuesday is absent from the schedule.
	_, ok = ResolveDayWindow(sched, monday.AddDate(0, 0, 1))
	assert.False(t, ok)
}

func TestResolveDayWindowRejectsBadInput(t *testing.T) {
	cases := map[string]models.DayWindow{
		"disabled":     {Enabled: false, Start: "10:00", End: "18:00"},
		"unparseable":  {Enabled: true, Start: "10h00", End: "18:00"},
		"inverted":     {Enabled: true, Start: "18:00", End: "10:00"},
		"zero length":  {Enabled: true, Start: "10:00", End: "10:00"},
		"empty fields": {Enabled: true},
	}
	for name, day := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := ResolveDayWindow(models.WeeklySchedule{"monday": day}, monday)
			assert.False(t, ok)
		})
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	intervals := [][2]int{
		{600, 660}, {630, 690}, {660, 720}, {600, 600}, {0, 1440}, {659, 661},
	}
	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t,
				Overlaps(a[0], a[1], b[0], b[1]),
				Overlaps(b[0], b[1], a[0], a[1]),
				"overlaps(%v,%v) must be symmetric", a, b)
		}
	}

	// Half-open: touching intervals do not overlap.
	assert.False(t, Overlaps(600, 660, 660, 720))
	assert.True(t, Overlaps(600, 661, 660, 720))
}

func TestComputeAvailabilityDeterministicAndTotal(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")
	appts := []models.Appointment{
		appt(monday, "12:00", "13:30", "Maria", models.AppointmentConfirmed),
	}

	first := ComputeAvailability(sched, monday, 90, "Maria", appts)
	second := ComputeAvailability(sched, monday, 90, "Maria", appts)
	assert.Equal(t, first, second)

	for _, label := range SlotGrid() {
		_, found := first[label]
		assert.True(t, found, "missing entry for %s", label)
	}
	assert.Len(t, first, len(SlotGrid()))

	// Degenerate inputs still yield a total mapping.
	empty := ComputeAvailability(nil, monday, 0, "Maria", nil)
	assert.Len(t, empty, len(SlotGrid()))
}

func TestWindowBoundary(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")

	avail := ComputeAvailability(sched, monday, 60, "Maria", nil)

	assert.True(t, avail["18:00"], "18:00+60 ends exactly at close and is allowed")
	assert.False(t, avail["18:30"], "18:30+60 runs past close")
	assert.False(t, avail["10:30"], "before opening")
	assert.False(t, avail["19:30"], "at/after close")
}

func TestDisabledDayBlocksEverything(t *testing.T) {
	sched := models.WeeklySchedule{
		"monday": {Enabled: false, Start: "11:00", End: "19:00"},
	}

	avail := ComputeAvailability(sched, monday, 30, "Maria", nil)
	for label, ok := range avail {
		assert.False(t, ok, "slot %s must be blocked on a disabled day", label)
	}
}

func TestMissingScheduleFallsBackToDefaultWindow(t *testing.T) {
	avail := ComputeAvailability(nil, monday, 60, "Maria", nil)

	assert.True(t, avail["10:00"])
	assert.True(t, avail["19:00"], "19:00+60 ends exactly at the default close")
	assert.False(t, avail["19:30"], "would run past the default close")
}

func TestCancelledAppointmentsDoNotBlock(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")
	appts := []models.Appointment{
		appt(monday, "14:00", "15:00", "Maria", models.AppointmentCancelled),
	}

	avail := ComputeAvailability(sched, monday, 60, "Maria", appts)
	assert.True(t, avail["14:00"])

	// Every other status occupies the interval.
	for _, status := range []string{
		models.AppointmentPending,
		models.AppointmentConfirmed,
		models.AppointmentCompleted,
		models.AppointmentBlocked,
	} {
		appts[0].Status = status
		avail = ComputeAvailability(sched, monday, 60, "Maria", appts)
		assert.False(t, avail["14:00"], "status %q must block", status)
	}
}

func TestStylistNameMatchingIsCaseAndSpaceInsensitive(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")
	appts := []models.Appointment{
		appt(monday, "14:00", "15:00", "Maria ", models.AppointmentConfirmed),
	}

	avail := ComputeAvailability(sched, monday, 60, "maria", appts)
	assert.False(t, avail["14:00"], `"Maria " must match "maria"`)

	avail = ComputeAvailability(sched, monday, 60, "Carmen", appts)
	assert.True(t, avail["14:00"], "another stylist's booking must not block")
}

func TestAppointmentsOnOtherDatesDoNotBlock(t *testing.T) {
	sched := models.WeeklySchedule{
		"monday":  {Enabled: true, Start: "11:00", End: "19:00"},
		"tuesday": {Enabled: true, Start: "11:00", End: "19:00"},
	}
	appts := []models.Appointment{
		appt(monday.AddDate(0, 0, 1), "14:00", "15:00", "Maria", models.AppointmentConfirmed),
	}

	avail := ComputeAvailability(sched, monday, 60, "Maria", appts)
	assert.True(t, avail["14:00"])
}

func TestMissingEndTimeFallsBackToHourBlock(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")
	a := appt(monday, "14:00", "15:00", "Maria", models.AppointmentConfirmed)
	a.EndTime = time.Time{}

	avail := ComputeAvailability(sched, monday, 30, "Maria", []models.Appointment{a})
	assert.False(t, avail["14:00"])
	assert.False(t, avail["14:30"])
	assert.True(t, avail["15:00"])
}

// Seeded scenario from the booking flow: Monday 11:00-19:00, a 90-minute
// service, one confirmed 12:00-13:30 appointment. Expectations are derived
// through the overlap predicate rather than listed by hand.
func TestNinetyMinuteServiceAgainstMiddayBooking(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")
	appts := []models.Appointment{
		appt(monday, "12:00", "13:30", "Maria", models.AppointmentConfirmed),
	}
	const duration = 90
	window := Window{Start: 11 * 60, End: 19 * 60}
	busyStart, busyEnd := 12*60, 13*60+30

	avail := ComputeAvailability(sched, monday, duration, "Maria", appts)

	for _, label := range SlotGrid() {
		slot, err := models.ParseClock(label)
		require.NoError(t, err)

		expected := IsWithinWindow(slot, window) &&
			FitsBeforeClose(slot, duration, window) &&
			!Overlaps(slot, slot+duration, busyStart, busyEnd)
		assert.Equal(t, expected, avail[label], "slot %s", label)
	}

	// Spot checks on the interesting boundaries.
	assert.False(t, avail["11:00"], "11:00-12:30 overlaps 12:00-13:30")
	assert.False(t, avail["11:30"])
	assert.False(t, avail["13:00"])
	assert.True(t, avail["13:30"], "13:30-15:00 starts exactly at the booking's end")
	assert.True(t, avail["17:30"], "17:30+90 ends exactly at close")
	assert.False(t, avail["18:00"], "18:00+90 runs past close")
}

func TestRevalidateSelectionRejectsStaleSlot(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")

	before := ComputeAvailability(sched, monday, 60, "Maria", nil)
	require.True(t, RevalidateSelection("14:00", before))

	after := ComputeAvailability(sched, monday, 60, "Maria", []models.Appointment{
		appt(monday, "14:00", "15:00", "maria", models.AppointmentConfirmed),
	})
	assert.False(t, RevalidateSelection("14:00", after))
	assert.False(t, RevalidateSelection("nonsense", after), "unknown labels are rejected")
}

func TestComputeStatusesReportsBlockReason(t *testing.T) {
	sched := mondaySchedule("11:00", "19:00")
	appts := []models.Appointment{
		appt(monday, "14:00", "15:00", "Maria", models.AppointmentConfirmed),
	}

	statuses := ComputeStatuses(sched, monday, 60, "Maria", appts)

	assert.True(t, statuses["10:00"].OutsideHours)
	assert.False(t, statuses["10:00"].Booked)

	assert.True(t, statuses["14:00"].Booked)
	assert.False(t, statuses["14:00"].OutsideHours)

	assert.True(t, statuses["12:00"].Available)
	assert.False(t, statuses["12:00"].OutsideHours)
	assert.False(t, statuses["12:00"].Booked)
}

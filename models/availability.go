package models

// SlotView is one grid slot with its computed bookability and, when blocked,
// the reason (outside working hours vs. taken by an existing appointment).
type SlotView struct {
	Time         string `json:"time"`
	Available    bool   `json:"available"`
	OutsideHours bool   `json:"outsideHours,omitempty"`
	Booked       bool   `json:"booked,omitempty"`
}

// DayAvailability is the full slot grid for one stylist on one date.
type DayAvailability struct {
	Date              string     `json:"date"`
	Stylist           string     `json:"stylist"`
	DurationMinutes   int        `json:"durationMinutes"`
	Slots             []SlotView `json:"slots"`
	AvailabilityError string     `json:"availabilityError,omitempty"`
}

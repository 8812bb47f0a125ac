package models

// DayWindow is one weekday's working-hours range for a stylist.
// Times are wall-clock "HH:MM" in the salon's local timezone.
type DayWindow struct {
	Enabled bool   `bson:"isEnabled" json:"isEnabled"`
	Start   string `bson:"start" json:"start"`
	End     string `bson:"end" json:"end"`
}

// WeeklySchedule maps lowercase weekday names ("monday".."sunday") to the
// stylist's window for that day. A missing key means the stylist does not
// work that day.
type WeeklySchedule map[string]DayWindow

// Worker represents a stylist document in the "workers" collection.
// Appointments reference workers by display name, not by ID; renaming a
// worker orphans their existing appointments (external-system contract).
type Worker struct {
	ID       string         `bson:"id" json:"id"`
	Name     string         `bson:"name" json:"name"`
	Role     string         `bson:"role,omitempty" json:"role,omitempty"`
	Active   bool           `bson:"active" json:"active"`
	Schedule WeeklySchedule `bson:"schedule,omitempty" json:"schedule,omitempty"`
}

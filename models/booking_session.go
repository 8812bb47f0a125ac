package models

import "time"

// Wizard steps, in order. Back-navigation to any earlier step is allowed;
// forward navigation is gated by per-step completeness.
const (
	StepService  = 1
	StepStylist  = 2
	StepDateTime = 3
	StepDetails  = 4
	StepReview   = 5
)

// ContactDetails is the customer information entered at StepDetails.
type ContactDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Comment string `json:"comment,omitempty"`
}

// BookingSession holds one customer's progress through the booking wizard.
// Sessions live in the session cache, not in the document store.
type BookingSession struct {
	ID          string         `json:"id"`
	Step        int            `json:"step"`
	ServiceID   string         `json:"serviceId,omitempty"`
	ServiceName string         `json:"serviceName,omitempty"`
	StylistID   string         `json:"stylistId,omitempty"`
	StylistName string         `json:"stylistName,omitempty"`
	Date        string         `json:"date,omitempty"` // "YYYY-MM-DD"
	Time        string         `json:"time,omitempty"` // "HH:MM"
	Details     ContactDetails `json:"details"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

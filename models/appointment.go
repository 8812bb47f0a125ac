package models

import "time"

// Appointment statuses. Everything except "cancelled" blocks availability.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentBlocked   = "blocked"
)

// Appointment represents a booking document in the "appointments" collection.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    string    `bson:"clientId" json:"clientId"`
	ClientName  string    `bson:"clientName" json:"clientName"`
	ServiceIDs  []string  `bson:"serviceIds" json:"serviceIds"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	StartTime   time.Time `bson:"startTime" json:"startTime"`
	EndTime     time.Time `bson:"endTime" json:"endTime"`
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	PerformedBy string    `bson:"performedBy" json:"performedBy"`
	Price       float64   `bson:"price" json:"price"`
	Origin      string    `bson:"origin,omitempty" json:"origin,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

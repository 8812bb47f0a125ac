package models

import "time"

// Client represents a customer document in the "clients" collection.
// Clients are deduplicated by phone number at booking time.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// FullName joins first and last name, tolerating a missing last name.
func (c Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

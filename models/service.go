package models

// DefaultServiceDuration is assumed when a service has no duration on file.
const DefaultServiceDuration = 60

// Service represents an entry in the "services" catalogue collection.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Price       float64 `bson:"price" json:"price"`
}

// DurationOrDefault returns the service duration, falling back to
// DefaultServiceDuration when the stored value is missing or nonsensical.
func (s Service) DurationOrDefault() int {
	if s.Duration <= 0 {
		return DefaultServiceDuration
	}
	return s.Duration
}

package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"versatil/database"
	"versatil/models"
)

// AppointmentRepository is the appointment store. Day queries return the raw
// snapshot for a calendar date; stylist and status filtering is the
// availability engine's job (the name join is case-insensitive, which a
// straight equality filter in the store could not honor).
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetForDate(ctx context.Context, date string) ([]models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Cancel(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs an AppointmentRepository over the
// "appointments" collection.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

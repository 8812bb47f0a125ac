package booking

import (
	"context"

	"versatil/models"
)

// BookingSessionService drives the multi-step booking wizard. Each mutation
// loads the session, applies the step, and persists it back; Confirm is the
// only operation that touches the appointment store.
type BookingSessionService interface {
	Initiate(ctx context.Context) (*models.BookingSession, error)
	Get(ctx context.Context, id string) (*models.BookingSession, error)
	SelectService(ctx context.Context, id, serviceID string) (*models.BookingSession, error)
	SelectStylist(ctx context.Context, id, stylistID string) (*models.BookingSession, error)
	SelectDateTime(ctx context.Context, id, date, slot string) (*models.BookingSession, error)
	EnterDetails(ctx context.Context, id string, details models.ContactDetails) (*models.BookingSession, error)
	GoToStep(ctx context.Context, id string, step int) (*models.BookingSession, error)
	Confirm(ctx context.Context, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

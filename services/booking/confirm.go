package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"versatil/models"
	"versatil/utils"
)

// Confirm submits the wizard: it revalidates the chosen slot against the
// freshest appointment snapshot, reuses or creates the client record, and
// writes the appointment. There is no reservation protocol on the store, so
// revalidation is best effort, not a transactional guarantee; two customers
// can still race between snapshot and insert.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, id string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !readyToConfirm(session) {
		return nil, ErrNotReadyToConfirm
	}

	worker, err := s.WorkerRepo.GetByID(ctx, session.StylistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStylistUnknown
		}
		return nil, fmt.Errorf("failed to fetch stylist: %w", err)
	}

	svc := s.resolveService(ctx, session.ServiceID)
	duration := svc.DurationOrDefault()

	open, err := s.Availability.RevalidateSlot(ctx, worker, session.Date, duration, session.Time)
	if err != nil {
		return nil, err
	}
	if !open {
		// Someone booked the slot between display and submission. Push the
		// wizard back to the date/time step and make the customer re-pick.
		session.Time = ""
		session.Step = models.StepDateTime
		if saveErr := s.save(ctx, session); saveErr != nil {
			logger.Warn("Confirm: failed to persist stale-selection rollback",
				zap.String("sessionID", session.ID), zap.Error(saveErr))
		}
		return nil, ErrSlotTaken
	}

	client, err := s.findOrCreateClient(ctx, session.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	startTime, endTime, err := appointmentInterval(session.Date, session.Time, duration)
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(session.Details.Comment)
	if notes == "" {
		notes = fmt.Sprintf("Booked from web portal. Requested stylist: %s", worker.Name)
	}

	appt := &models.Appointment{
		ClientID:    client.ID,
		ClientName:  client.FullName(),
		ServiceIDs:  []string{svc.ID},
		ServiceName: svc.Name,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      models.AppointmentConfirmed,
		Notes:       notes,
		PerformedBy: worker.Name,
		Price:       svc.Price,
		Origin:      "web",
	}
	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		// The wizard stays on the review step so the customer can retry.
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.Store.Delete(ctx, session.ID); err != nil {
		logger.Warn("Confirm: failed to delete completed session",
			zap.String("sessionID", session.ID), zap.Error(err))
	}

	logger.Info("Confirm: appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("stylist", appt.PerformedBy),
		zap.String("date", session.Date),
		zap.String("time", session.Time))
	return appt, nil
}

func readyToConfirm(session *models.BookingSession) bool {
	return session.Step == models.StepReview &&
		session.ServiceID != "" &&
		session.StylistID != "" &&
		session.Date != "" &&
		session.Time != "" &&
		validateDetails(session.Details) == nil
}

// findOrCreateClient reuses an existing client matched by phone number,
// refreshing a changed email, and creates a new record otherwise.
func (s *DefaultBookingSessionService) findOrCreateClient(ctx context.Context, details models.ContactDetails) (*models.Client, error) {
	phone := strings.TrimSpace(details.Phone)
	email := strings.TrimSpace(details.Email)

	existing, err := s.ClientRepo.FindByPhone(ctx, phone)
	if err == nil {
		if email != "" && existing.Email != email {
			if updateErr := s.ClientRepo.UpdateEmail(ctx, existing.ID, email); updateErr != nil {
				utils.GetLogger().Warn("findOrCreateClient: failed to refresh email",
					zap.String("clientID", existing.ID), zap.Error(updateErr))
			} else {
				existing.Email = email
			}
		}
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	first, last := splitName(details.Name)
	client := &models.Client{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Email:     email,
		Notes:     "Client created from web portal",
	}
	if err := s.ClientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// splitName treats the first word as the first name and the rest as the last
// name, mirroring how the desktop app stores clients.
func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func appointmentInterval(date, slot string, durationMinutes int) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	minutes, err := models.ParseClock(slot)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid slot %q: %w", slot, err)
	}
	start := day.Add(time.Duration(minutes) * time.Minute)
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return start, end, nil
}

package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "versatil/database/repository/appointment"
	serviceRepo "versatil/database/repository/service"
	workerRepo "versatil/database/repository/worker"
	"versatil/models"
	"versatil/utils"
)

// ErrWorkerNotFound is returned when the requested stylist does not exist.
var ErrWorkerNotFound = errors.New("worker not found")

// AvailabilityService computes the bookable slot grid for a stylist and date.
type AvailabilityService interface {
	GetDayAvailability(ctx context.Context, stylistID, date, serviceID string) (*models.DayAvailability, error)
	RevalidateSlot(ctx context.Context, worker *models.Worker, date string, durationMinutes int, slot string) (bool, error)
	ResolveServiceDuration(ctx context.Context, serviceID string) int
}

// DefaultAvailabilityService wires the engine to the document store.
type DefaultAvailabilityService struct {
	WorkerRepo      workerRepo.WorkerRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	ServiceRepo     serviceRepo.ServiceRepository
}

// GetDayAvailability returns the full slot grid for one stylist on one date.
// A stylist without a schedule on file gets the default window; a failed
// appointment fetch degrades to "nothing bookable" instead of an error.
func (s *DefaultAvailabilityService) GetDayAvailability(ctx context.Context, stylistID, date, serviceID string) (*models.DayAvailability, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	worker, err := s.WorkerRepo.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to fetch worker %s: %w", stylistID, err)
	}

	duration := s.ResolveServiceDuration(ctx, serviceID)

	appts, err := s.AppointmentRepo.GetForDate(ctx, date)
	if err != nil {
		logger.Error("GetDayAvailability: failed to fetch appointments",
			zap.String("date", date), zap.Error(err))
		return &models.DayAvailability{
			Date:              date,
			Stylist:           worker.Name,
			DurationMinutes:   duration,
			Slots:             unavailableGrid(),
			AvailabilityError: "Could not load existing bookings; please retry",
		}, nil
	}

	statuses := ComputeStatuses(worker.Schedule, day, duration, worker.Name, appts)

	grid := SlotGrid()
	slots := make([]models.SlotView, 0, len(grid))
	for _, label := range grid {
		st := statuses[label]
		slots = append(slots, models.SlotView{
			Time:         label,
			Available:    st.Available,
			OutsideHours: st.OutsideHours,
			Booked:       st.Booked,
		})
	}

	return &models.DayAvailability{
		Date:            date,
		Stylist:         worker.Name,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

// RevalidateSlot recomputes availability from the freshest snapshot and
// reports whether the selected slot is still bookable. Unlike the display
// path, a fetch failure here is an error: booking must not proceed on a
// stale or unknown snapshot.
func (s *DefaultAvailabilityService) RevalidateSlot(ctx context.Context, worker *models.Worker, date string, durationMinutes int, slot string) (bool, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}

	appts, err := s.AppointmentRepo.GetForDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to refresh appointment snapshot: %w", err)
	}

	current := ComputeAvailability(worker.Schedule, day, durationMinutes, worker.Name, appts)
	return RevalidateSelection(slot, current), nil
}

// ResolveServiceDuration looks up a service's duration, falling back to the
// 60-minute default when the service is unknown or the lookup fails.
func (s *DefaultAvailabilityService) ResolveServiceDuration(ctx context.Context, serviceID string) int {
	if serviceID == "" {
		return models.DefaultServiceDuration
	}
	svc, err := s.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			utils.GetLogger().Warn("ResolveServiceDuration: service lookup failed",
				zap.String("serviceID", serviceID), zap.Error(err))
		}
		return models.DefaultServiceDuration
	}
	return svc.DurationOrDefault()
}

// unavailableGrid is the safe default served when the snapshot fetch fails.
func unavailableGrid() []models.SlotView {
	grid := SlotGrid()
	slots := make([]models.SlotView, 0, len(grid))
	for _, label := range grid {
		slots = append(slots, models.SlotView{Time: label, Booked: true})
	}
	return slots
}

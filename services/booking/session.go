package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "versatil/database/repository/appointment"
	clientRepo "versatil/database/repository/client"
	serviceRepo "versatil/database/repository/service"
	workerRepo "versatil/database/repository/worker"
	"versatil/models"
	"versatil/services/availability"
	"versatil/utils"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]+$`)
)

// DefaultBookingSessionService is the wizard implementation over the session
// store, the availability engine, and the document store repositories.
type DefaultBookingSessionService struct {
	Store           SessionStore
	Availability    availability.AvailabilityService
	WorkerRepo      workerRepo.WorkerRepository
	ServiceRepo     serviceRepo.ServiceRepository
	ClientRepo      clientRepo.ClientRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

func (s *DefaultBookingSessionService) Initiate(ctx context.Context) (*models.BookingSession, error) {
	now := time.Now()
	session := &models.BookingSession{
		ID:        uuid.New().String(),
		Step:      models.StepService,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, id)
}

func (s *DefaultBookingSessionService) SelectService(ctx context.Context, id, serviceID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	svc := s.resolveService(ctx, serviceID)
	session.ServiceID = svc.ID
	session.ServiceName = svc.Name
	// A different service means a different duration; the chosen slot may
	// no longer fit and must be picked again.
	session.Time = ""
	advance(session, models.StepStylist)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SelectStylist(ctx context.Context, id, stylistID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step < models.StepStylist {
		return nil, ErrInvalidStep
	}

	worker, err := s.WorkerRepo.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStylistUnknown
		}
		return nil, err
	}

	session.StylistID = worker.ID
	session.StylistName = worker.Name
	session.Time = ""
	advance(session, models.StepDateTime)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SelectDateTime(ctx context.Context, id, date, slot string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step < models.StepDateTime || session.StylistID == "" {
		return nil, ErrInvalidStep
	}
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return nil, ErrInvalidSlot
	}
	if !validSlotLabel(slot) {
		return nil, ErrInvalidSlot
	}

	worker, err := s.WorkerRepo.GetByID(ctx, session.StylistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStylistUnknown
		}
		return nil, err
	}

	duration := s.Availability.ResolveServiceDuration(ctx, session.ServiceID)
	open, err := s.Availability.RevalidateSlot(ctx, worker, date, duration, slot)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrSlotTaken
	}

	session.Date = date
	session.Time = slot
	advance(session, models.StepDetails)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) EnterDetails(ctx context.Context, id string, details models.ContactDetails) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step < models.StepDetails {
		return nil, ErrInvalidStep
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	session.Details = details
	advance(session, models.StepReview)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GoToStep supports back-navigation only; forward movement happens through
// the step operations, which enforce completeness.
func (s *DefaultBookingSessionService) GoToStep(ctx context.Context, id string, step int) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if step < models.StepService || step > session.Step {
		return nil, ErrInvalidStep
	}

	session.Step = step
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) Cancel(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func (s *DefaultBookingSessionService) save(ctx context.Context, session *models.BookingSession) error {
	session.UpdatedAt = time.Now()
	return s.Store.Save(ctx, session)
}

// advance moves the wizard forward without undoing a later position the
// customer already reached and then navigated back from.
func advance(session *models.BookingSession, step int) {
	if session.Step < step {
		session.Step = step
	}
}

// resolveService looks a service up by ID, then by display name. Unknown
// services keep the requested identifier and get the default duration, so a
// stale catalogue never stops a booking.
func (s *DefaultBookingSessionService) resolveService(ctx context.Context, idOrName string) models.Service {
	svc, err := s.ServiceRepo.GetByID(ctx, idOrName)
	if err == nil {
		return *svc
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.GetLogger().Warn("resolveService: lookup by id failed",
			zap.String("service", idOrName), zap.Error(err))
	}

	svc, err = s.ServiceRepo.GetByName(ctx, idOrName)
	if err == nil {
		return *svc
	}

	return models.Service{
		ID:       idOrName,
		Name:     idOrName,
		Duration: models.DefaultServiceDuration,
	}
}

// validSlotLabel accepts only labels on the canonical grid.
func validSlotLabel(slot string) bool {
	m, err := models.ParseClock(slot)
	if err != nil {
		return false
	}
	if m < availability.GridStartMinutes || m >= availability.GridEndMinutes {
		return false
	}
	return (m-availability.GridStartMinutes)%availability.SlotStepMinutes == 0
}

func validateDetails(d models.ContactDetails) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidDetails
	}
	if strings.TrimSpace(d.Phone) == "" || !phoneRe.MatchString(strings.TrimSpace(d.Phone)) {
		return ErrInvalidDetails
	}
	if !emailRe.MatchString(strings.TrimSpace(d.Email)) {
		return ErrInvalidDetails
	}
	return nil
}

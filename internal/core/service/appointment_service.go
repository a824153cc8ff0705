package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/api/metrics"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

// DayCache abstracts the per-date agenda cache (Redis). It holds the raw,
// unjoined appointment rows; the client join runs on every read so cached
// listings never serve stale client fields. Implementations may fail open: a
// cache error is never surfaced to the caller.
type DayCache interface {
	GetDay(ctx context.Context, date string) ([]*domain.Appointment, bool)
	SetDay(ctx context.Context, date string, appointments []*domain.Appointment)
	InvalidateDay(ctx context.Context, date string)
}

// AppointmentService implements agenda use cases over injected repositories.
type AppointmentService struct {
	repo     ports.AppointmentRepository
	clients  ports.ClientRepository
	cache    DayCache
	activity ports.ActivityRecorder
	logger   zerolog.Logger
	// now is the clock used for the past-date rule; replaceable in tests.
	now func() time.Time
}

func NewAppointmentService(
	repo ports.AppointmentRepository,
	clients ports.ClientRepository,
	cache DayCache,
	activity ports.ActivityRecorder,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:     repo,
		clients:  clients,
		cache:    cache,
		activity: activity,
		logger:   logger,
		now:      time.Now,
	}
}

// ListAppointments returns appointments matching input, each joined with its
// client's current display fields. A dangling client reference resolves to a
// nil Client rather than an error.
func (s *AppointmentService) ListAppointments(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
	cacheable := s.cache != nil && input.Date != "" && input.ClientID == "" && input.Status == ""
	if cacheable {
		if cached, ok := s.cache.GetDay(ctx, input.Date); ok {
			s.joinClients(ctx, cached)
			return cached, nil
		}
	}

	appointments, err := s.repo.List(ctx, ports.ListAppointmentsFilter{
		Date:     input.Date,
		ClientID: input.ClientID,
		Status:   input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	// The cache stores the rows before the join: a client rename or delete must
	// show up on the next listing even while the day entry is still live.
	if cacheable {
		s.cache.SetDay(ctx, input.Date, appointments)
	}

	s.joinClients(ctx, appointments)
	return appointments, nil
}

func (s *AppointmentService) joinClients(ctx context.Context, appointments []*domain.Appointment) {
	for _, a := range appointments {
		s.resolveClient(ctx, a)
	}
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolveClient(ctx, appointment)
	return appointment, nil
}

// CheckAvailability reports whether (date, time) is free of non-cancelled
// appointments, optionally ignoring one appointment id. This is a
// point-in-time read, not a reservation; the storage-level unique index is
// what makes a concurrent double-booking fail deterministically.
func (s *AppointmentService) CheckAvailability(ctx context.Context, input ports.AvailabilityInput) (bool, error) {
	_, err := s.repo.FindSlot(ctx, input.Date, input.Time, input.ExcludeID)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("check availability: %w", err)
	}
	return false, nil
}

// CreateAppointment schedules a new appointment. Checks run in order: slot
// membership, the no-past-dates rule (day granularity), then availability.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if !domain.IsClinicSlot(input.Time) {
		return nil, domain.ErrInvalidSlot
	}

	date, err := time.Parse(domain.DateLayout, input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, input.Date)
	}
	today := startOfDay(s.now().UTC())
	if date.Before(today) {
		metrics.PastDateRejectionsTotal.Inc()
		return nil, domain.ErrPastDate
	}

	free, err := s.CheckAvailability(ctx, ports.AvailabilityInput{Date: input.Date, Time: input.Time})
	if err != nil {
		return nil, err
	}
	if !free {
		metrics.SlotConflictsTotal.Inc()
		return nil, domain.ErrSlotTaken
	}

	appointment := &domain.Appointment{
		ID:        uuid.NewString(),
		ClientID:  input.ClientID,
		Date:      input.Date,
		Time:      input.Time,
		Note:      input.Note,
		Status:    domain.StatusScheduled,
		CreatedAt: s.now().UTC(),
		CreatedBy: input.ActorID,
	}

	// The partial unique index on (date, time) closes the window between the
	// availability read and this insert; a loser of that race sees ErrSlotTaken.
	if err := s.repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			metrics.SlotConflictsTotal.Inc()
			return nil, domain.ErrSlotTaken
		}
		s.logger.Error().Err(err).Str("date", input.Date).Str("time", input.Time).Msg("failed to create appointment")
		return nil, err
	}

	s.resolveClient(ctx, appointment)
	s.invalidate(ctx, appointment.Date)
	metrics.AppointmentsCreatedTotal.WithLabelValues(appointment.Time).Inc()

	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Str("client_id", appointment.ClientID).
		Str("date", appointment.Date).
		Str("time", appointment.Time).
		Msg("appointment scheduled")

	s.record(appointment.ID, domain.ActionCreated, input.ActorID, appointment.Date+" "+appointment.Time)

	return appointment, nil
}

// UpdateStatus overwrites the status unconditionally among the three valid
// statuses; no transition is forbidden and repeating a status is a no-op.
// Reactivating a cancelled appointment still competes for its slot: when the
// slot has been taken since, the store reports ErrSlotTaken.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, actorID string) (*domain.Appointment, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	appointment, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			metrics.SlotConflictsTotal.Inc()
		}
		return nil, err
	}

	s.resolveClient(ctx, appointment)
	s.invalidate(ctx, appointment.Date)
	metrics.StatusChangesTotal.WithLabelValues(string(status)).Inc()

	s.logger.Info().Str("appointment_id", id).Str("status", string(status)).Msg("appointment status changed")
	s.record(id, domain.ActionStatusChanged, actorID, string(status))

	return appointment, nil
}

// DeleteAppointment removes the record unconditionally; there is no soft delete.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string, actorID string) error {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, appointment.Date)
	s.logger.Info().Str("appointment_id", id).Msg("appointment deleted")
	s.record(id, domain.ActionDeleted, actorID, appointment.Date+" "+appointment.Time)
	return nil
}

// resolveClient attaches the referenced client's current display fields.
// A missing client leaves the reference nil; a store failure degrades the
// same way so a read never fails on the join.
func (s *AppointmentService) resolveClient(ctx context.Context, a *domain.Appointment) {
	client, err := s.clients.FindByID(ctx, a.ClientID)
	if err != nil {
		if !errors.Is(err, domain.ErrClientNotFound) {
			s.logger.Warn().Err(err).Str("client_id", a.ClientID).Msg("client lookup failed during join")
		}
		a.Client = nil
		return
	}
	a.Client = client
}

func (s *AppointmentService) invalidate(ctx context.Context, date string) {
	if s.cache != nil {
		s.cache.InvalidateDay(ctx, date)
	}
}

func (s *AppointmentService) record(id, action, actor, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Record(domain.ActivityEntry{
		Entity:    "appointment",
		EntityID:  id,
		Action:    action,
		Actor:     actor,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

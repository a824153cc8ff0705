package ports

import (
	"context"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

// ListAppointmentsFilter carries the query parameters for listing appointments.
type ListAppointmentsFilter struct {
	Date     string // optional: exact calendar date (YYYY-MM-DD); empty = all dates
	ClientID string // optional: scoped to one client
	Status   string // optional: filter by appointment status
}

// AppointmentRepository defines persistence operations for the agenda.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// List returns appointments matching filter, ordered by date then time.
	List(ctx context.Context, filter ListAppointmentsFilter) ([]*domain.Appointment, error)
	// FindSlot returns the non-cancelled appointment occupying (date, time),
	// skipping excludeID when non-empty. Returns domain.ErrAppointmentNotFound
	// when the slot is free.
	FindSlot(ctx context.Context, date, timeSlot, excludeID string) (*domain.Appointment, error)
	// UpdateStatus overwrites the status field.
	// Returns domain.ErrAppointmentNotFound when id is absent.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	// Delete removes the record. Returns domain.ErrAppointmentNotFound when absent.
	Delete(ctx context.Context, id string) error
	// CountByClientAndStatus counts this client's appointments in the given status.
	CountByClientAndStatus(ctx context.Context, clientID string, status domain.AppointmentStatus) (int64, error)
}

package ports

import (
	"context"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

// CreateAppointmentInput carries all data needed to schedule an appointment.
type CreateAppointmentInput struct {
	ClientID string
	Date     string // YYYY-MM-DD
	Time     string // one of the clinic slots, e.g. "09:30"
	Note     string
	ActorID  string
}

// ListAppointmentsInput carries the parameters for the list endpoint.
type ListAppointmentsInput struct {
	Date     string // optional: restrict to one calendar day
	ClientID string // optional
	Status   string // optional
}

// AvailabilityInput carries the parameters of a slot availability check.
// ExcludeID is set when re-checking while editing an existing appointment.
type AvailabilityInput struct {
	Date      string
	Time      string
	ExcludeID string
}

// AppointmentService defines use-case operations for the agenda.
//
// All read operations return appointments joined with their referenced
// client's current display fields; an appointment whose client was deleted
// carries a nil Client rather than failing.
type AppointmentService interface {
	ListAppointments(ctx context.Context, input ListAppointmentsInput) ([]*domain.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	// CheckAvailability reports whether the slot is free of non-cancelled
	// appointments. It is a point-in-time read, not a reservation.
	CheckAvailability(ctx context.Context, input AvailabilityInput) (bool, error)
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, actorID string) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string, actorID string) error
}

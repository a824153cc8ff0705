package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions. The graph is
// deliberately fully connected: the clinic routinely re-opens cancelled
// appointments and corrects statuses entered by mistake.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusScheduled, StatusCancelled},
	StatusCancelled: {StatusScheduled, StatusCompleted},
}

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrPastDate = errors.New("cannot schedule appointments on past dates")
var ErrSlotTaken = errors.New("an appointment already exists for this time slot")
var ErrInvalidSlot = errors.New("time is not a valid clinic slot")
var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
var ErrInvalidStatus = errors.New("invalid appointment status")

// IsValid reports whether s is one of the three known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ClinicSlots is the fixed enumeration of bookable half-hour slots:
// 08:00–11:30 in the morning and 13:00–17:30 in the afternoon.
var ClinicSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// IsClinicSlot reports whether t is a member of the clinic slot enumeration.
func IsClinicSlot(t string) bool {
	for _, s := range ClinicSlots {
		if s == t {
			return true
		}
	}
	return false
}

// DateLayout is the wire format for appointment dates (no time-of-day).
const DateLayout = "2006-01-02"

// MaxNoteLength bounds the free-text note on an appointment.
const MaxNoteLength = 500

// Appointment is the core scheduling record. Client is a non-owning reference
// resolved at read time; it is nil when the referenced client was deleted.
type Appointment struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	ClientID  string            `json:"client_id" bson:"client_id"`
	Client    *Client           `json:"client,omitempty" bson:"-"`
	Date      string            `json:"date" bson:"date"`
	Time      string            `json:"time" bson:"time"`
	Note      string            `json:"note,omitempty" bson:"note,omitempty"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	CreatedBy string            `json:"created_by,omitempty" bson:"created_by,omitempty"`
}

package handler

import "time"

// --- Request types ---

type createAppointmentRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Date     string `json:"date"      validate:"required,datetime=2006-01-02"`
	Time     string `json:"time"      validate:"required"`
	Note     string `json:"note"      validate:"max=500"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

// clientRefResponse is the client view embedded in appointment responses.
// It is null when the referenced client no longer exists.
type clientRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type appointmentResponse struct {
	ID        string             `json:"id"`
	ClientID  string             `json:"client_id"`
	Client    *clientRefResponse `json:"client"`
	Date      string             `json:"date"`
	Time      string             `json:"time"`
	Note      string             `json:"note,omitempty"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

type listAppointmentsResponse struct {
	Data []appointmentResponse `json:"data"`
}

type availabilityResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type slotsResponse struct {
	Slots []string `json:"slots"`
}

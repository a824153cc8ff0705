package handler

import (
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

// --- Domain → Response ---

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	resp := appointmentResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		Date:      a.Date,
		Time:      a.Time,
		Note:      a.Note,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if a.Client != nil {
		resp.Client = &clientRefResponse{
			ID:    a.Client.ID,
			Name:  a.Client.Name,
			Phone: a.Client.Phone,
			Email: a.Client.Email,
		}
	}
	return resp
}

func toAppointmentList(appointments []*domain.Appointment) listAppointmentsResponse {
	items := make([]appointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		items = append(items, toAppointmentResponse(a))
	}
	return listAppointmentsResponse{Data: items}
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

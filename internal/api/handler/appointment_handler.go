package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the agenda.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List handles GET /v1/appointments. Optional query parameters: date
// (YYYY-MM-DD), client_id, status.
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.ListAppointments(c.Request().Context(), ports.ListAppointmentsInput{
		Date:     c.QueryParam("date"),
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentList(appointments))
}

// Get handles GET /v1/appointments/:id.
func (h *AppointmentHandler) Get(c echo.Context) error {
	appointment, err := h.service.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(appointment))
}

// Availability handles GET /v1/appointments/availability.
// Query parameters: date, time, exclude_id (optional).
func (h *AppointmentHandler) Availability(c echo.Context) error {
	date := c.QueryParam("date")
	slot := c.QueryParam("time")
	if date == "" || slot == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and time are required")
	}

	available, err := h.service.CheckAvailability(c.Request().Context(), ports.AvailabilityInput{
		Date:      date,
		Time:      slot,
		ExcludeID: c.QueryParam("exclude_id"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, availabilityResponse{
		Date:      date,
		Time:      slot,
		Available: available,
	})
}

// Slots handles GET /v1/slots, returning the fixed clinic slot enumeration.
func (h *AppointmentHandler) Slots(c echo.Context) error {
	return c.JSON(http.StatusOK, slotsResponse{Slots: domain.ClinicSlots})
}

// Create handles POST /v1/appointments.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.CreateAppointment(c.Request().Context(), ports.CreateAppointmentInput{
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Note:     req.Note,
		ActorID:  actorID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAppointmentResponse(appointment))
}

// UpdateStatus handles PATCH /v1/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.UpdateStatus(
		c.Request().Context(),
		c.Param("id"),
		domain.AppointmentStatus(req.Status),
		actorID(c),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(appointment))
}

// Delete handles DELETE /v1/appointments/:id.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteAppointment(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

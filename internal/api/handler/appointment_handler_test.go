package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

type stubAppointmentService struct {
	listFn         func(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error)
	getFn          func(ctx context.Context, id string) (*domain.Appointment, error)
	availabilityFn func(ctx context.Context, input ports.AvailabilityInput) (bool, error)
	createFn       func(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error)
	updateStatusFn func(ctx context.Context, id string, status domain.AppointmentStatus, actorID string) (*domain.Appointment, error)
	deleteFn       func(ctx context.Context, id string, actorID string) error
}

func (s *stubAppointmentService) ListAppointments(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
	return s.listFn(ctx, input)
}

func (s *stubAppointmentService) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.getFn(ctx, id)
}

func (s *stubAppointmentService) CheckAvailability(ctx context.Context, input ports.AvailabilityInput) (bool, error) {
	return s.availabilityFn(ctx, input)
}

func (s *stubAppointmentService) CreateAppointment(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	return s.createFn(ctx, input)
}

func (s *stubAppointmentService) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, actorID string) (*domain.Appointment, error) {
	return s.updateStatusFn(ctx, id, status, actorID)
}

func (s *stubAppointmentService) DeleteAppointment(ctx context.Context, id string, actorID string) error {
	return s.deleteFn(ctx, id, actorID)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        "appt_1",
		ClientID:  "client_1",
		Client:    &domain.Client{ID: "client_1", Name: "Ana Silva", Phone: "11999990000"},
		Date:      "2026-03-10",
		Time:      "09:00",
		Status:    domain.StatusScheduled,
		CreatedAt: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
	}
}

func TestAppointmentHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		createFn: func(_ context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
			if input.ClientID != "client_1" || input.Date != "2026-03-10" || input.Time != "09:00" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.ActorID != "user_1" {
				t.Fatalf("expected actor user_1, got %q", input.ActorID)
			}
			return sampleAppointment(), nil
		},
	}
	h := NewAppointmentHandler(stub)

	body := strings.NewReader(`{"client_id":"client_1","date":"2026-03-10","time":"09:00","note":""}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/appointments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp appointmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "scheduled" {
		t.Errorf("expected status scheduled, got %q", resp.Status)
	}
	if resp.Client == nil || resp.Client.Name != "Ana Silva" {
		t.Errorf("expected joined client in response, got %+v", resp.Client)
	}
}

func TestAppointmentHandler_Create_ValidationFailures(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{
		createFn: func(context.Context, ports.CreateAppointmentInput) (*domain.Appointment, error) {
			t.Fatal("service must not be called on invalid payloads")
			return nil, nil
		},
	})

	payloads := []string{
		`{"date":"2026-03-10","time":"09:00"}`,                  // missing client_id
		`{"client_id":"c1","time":"09:00"}`,                     // missing date
		`{"client_id":"c1","date":"10/03/2026","time":"09:00"}`, // bad date format
		`{"client_id":"c1","date":"2026-03-10"}`,                // missing time
	}
	for _, payload := range payloads {
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Create(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("payload %s: expected 400, got %v", payload, err)
		}
	}
}

func TestAppointmentHandler_Create_PropagatesDomainErrors(t *testing.T) {
	e := newTestEcho()
	for _, wantErr := range []error{domain.ErrPastDate, domain.ErrSlotTaken, domain.ErrInvalidSlot} {
		h := NewAppointmentHandler(&stubAppointmentService{
			createFn: func(context.Context, ports.CreateAppointmentInput) (*domain.Appointment, error) {
				return nil, wantErr
			},
		})

		body := strings.NewReader(`{"client_id":"client_1","date":"2026-03-10","time":"09:00"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		// Domain errors pass through untouched; the central error handler maps
		// them to status codes.
		if err := h.Create(c); !errors.Is(err, wantErr) {
			t.Errorf("expected %v to propagate, got %v", wantErr, err)
		}
	}
}

func TestAppointmentHandler_List_PassesFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		listFn: func(_ context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
			if input.Date != "2026-03-10" || input.Status != "scheduled" {
				t.Fatalf("unexpected filters: %+v", input)
			}
			return []*domain.Appointment{sampleAppointment()}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/appointments?date=2026-03-10&status=scheduled", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listAppointmentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(resp.Data))
	}
}

func TestAppointmentHandler_List_DanglingClientRendersNull(t *testing.T) {
	e := newTestEcho()
	orphan := sampleAppointment()
	orphan.Client = nil
	h := NewAppointmentHandler(&stubAppointmentService{
		listFn: func(context.Context, ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
			return []*domain.Appointment{orphan}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/appointments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	item := resp["data"][0]
	if item["client"] != nil {
		t.Errorf("expected client to be null, got %v", item["client"])
	}
	if item["client_id"] != "client_1" {
		t.Errorf("client_id must be preserved, got %v", item["client_id"])
	}
}

func TestAppointmentHandler_Availability(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		availabilityFn: func(_ context.Context, input ports.AvailabilityInput) (bool, error) {
			if input.Date != "2026-03-10" || input.Time != "09:00" || input.ExcludeID != "appt_9" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return true, nil
		},
	}
	h := NewAppointmentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/appointments/availability?date=2026-03-10&time=09:00&exclude_id=appt_9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Availability(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp availabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Available {
		t.Error("expected available=true")
	}
}

func TestAppointmentHandler_Availability_RequiresDateAndTime(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/appointments/availability?date=2026-03-10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Availability(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		updateStatusFn: func(_ context.Context, id string, status domain.AppointmentStatus, actorID string) (*domain.Appointment, error) {
			if id != "appt_1" || status != domain.StatusCancelled {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			a := sampleAppointment()
			a.Status = status
			return a, nil
		},
	}
	h := NewAppointmentHandler(stub)

	body := strings.NewReader(`{"status":"cancelled"}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/appt_1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("appt_1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAppointmentHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{
		updateStatusFn: func(context.Context, string, domain.AppointmentStatus, string) (*domain.Appointment, error) {
			t.Fatal("service must not be called for an unknown status")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"status":"archived"}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/appt_1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("appt_1")

	err := h.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAppointmentHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		deleteFn: func(_ context.Context, id string, actorID string) error {
			if id != "appt_1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewAppointmentHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/appointments/appt_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("appt_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAppointmentHandler_Slots(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Slots(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp slotsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(resp.Slots))
	}
	if resp.Slots[0] != "08:00" || resp.Slots[len(resp.Slots)-1] != "17:30" {
		t.Errorf("unexpected slot boundaries: %v", resp.Slots)
	}
}

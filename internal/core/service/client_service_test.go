package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

func newRosterService(clients *stubClientRepo, appointments *stubAppointmentRepo) *ClientService {
	return NewClientService(clients, appointments, nil, discardLogger)
}

func TestClientService_Create_AssignsIDAndTimestamp(t *testing.T) {
	clients := newStubClientRepo()
	svc := newRosterService(clients, newStubAppointmentRepo())

	created, err := svc.CreateClient(context.Background(), ports.CreateClientInput{
		Name:    "Ana Silva",
		Phone:   "11999990000",
		Email:   "ana@x.com",
		ActorID: "user_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Error("ID must be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
	if created.CreatedBy != "user_1" {
		t.Errorf("expected CreatedBy %q, got %q", "user_1", created.CreatedBy)
	}

	list, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ana Silva" {
		t.Errorf("expected the new client in the roster, got %+v", list)
	}
}

func TestClientService_Create_NoUniquenessConstraint(t *testing.T) {
	clients := newStubClientRepo()
	svc := newRosterService(clients, newStubAppointmentRepo())

	input := ports.CreateClientInput{Name: "Ana Silva", Email: "ana@x.com"}
	if _, err := svc.CreateClient(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateClient(context.Background(), input); err != nil {
		t.Fatalf("duplicate name/email must be allowed, got %v", err)
	}
	if len(clients.byID) != 2 {
		t.Errorf("expected 2 clients, got %d", len(clients.byID))
	}
}

func TestClientService_Update_MergesFields(t *testing.T) {
	clients := newStubClientRepo()
	svc := newRosterService(clients, newStubAppointmentRepo())

	created, _ := svc.CreateClient(context.Background(), ports.CreateClientInput{
		Name:  "Ana Silva",
		Phone: "11999990000",
		Email: "ana@x.com",
	})

	newPhone := "11888880000"
	updated, err := svc.UpdateClient(context.Background(), created.ID, ports.UpdateClientInput{Phone: &newPhone})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Phone != newPhone {
		t.Errorf("expected phone %q, got %q", newPhone, updated.Phone)
	}
	if updated.Name != "Ana Silva" || updated.Email != "ana@x.com" {
		t.Error("untouched fields must be preserved")
	}
}

func TestClientService_Update_NotFound(t *testing.T) {
	svc := newRosterService(newStubClientRepo(), newStubAppointmentRepo())

	name := "Novo Nome"
	_, err := svc.UpdateClient(context.Background(), "missing", ports.UpdateClientInput{Name: &name})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Delete_ThenGetNotFound(t *testing.T) {
	clients := newStubClientRepo()
	svc := newRosterService(clients, newStubAppointmentRepo())

	created, _ := svc.CreateClient(context.Background(), ports.CreateClientInput{Name: "Ana Silva"})

	if err := svc.DeleteClient(context.Background(), created.ID, "user_1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err := svc.GetClient(context.Background(), created.ID)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound after delete, got %v", err)
	}
}

func TestClientService_Delete_RefusedWhileScheduled(t *testing.T) {
	clients := newStubClientRepo()
	appointments := newStubAppointmentRepo()
	svc := newRosterService(clients, appointments)

	created, _ := svc.CreateClient(context.Background(), ports.CreateClientInput{Name: "Ana Silva"})
	appointments.byID["a1"] = &domain.Appointment{
		ID: "a1", ClientID: created.ID, Date: "2026-03-10", Time: "09:00", Status: domain.StatusScheduled,
	}

	err := svc.DeleteClient(context.Background(), created.ID, "user_1")
	if !errors.Is(err, domain.ErrClientHasAppointments) {
		t.Fatalf("expected ErrClientHasAppointments, got %v", err)
	}
	if _, getErr := svc.GetClient(context.Background(), created.ID); getErr != nil {
		t.Error("refused delete must leave the client in place")
	}
}

func TestClientService_Delete_AllowedWithInactiveAppointments(t *testing.T) {
	clients := newStubClientRepo()
	appointments := newStubAppointmentRepo()
	svc := newRosterService(clients, appointments)

	created, _ := svc.CreateClient(context.Background(), ports.CreateClientInput{Name: "Ana Silva"})
	appointments.byID["a1"] = &domain.Appointment{
		ID: "a1", ClientID: created.ID, Date: "2026-03-01", Time: "09:00", Status: domain.StatusCompleted,
	}
	appointments.byID["a2"] = &domain.Appointment{
		ID: "a2", ClientID: created.ID, Date: "2026-03-02", Time: "10:00", Status: domain.StatusCancelled,
	}

	// Completed and cancelled appointments keep a dangling reference; only
	// scheduled ones block deletion.
	if err := svc.DeleteClient(context.Background(), created.ID, "user_1"); err != nil {
		t.Fatalf("delete must be allowed, got %v", err)
	}
	if len(appointments.byID) != 2 {
		t.Error("deleting a client must not touch its past appointments")
	}
}

func TestClientService_Delete_NotFound(t *testing.T) {
	svc := newRosterService(newStubClientRepo(), newStubAppointmentRepo())

	err := svc.DeleteClient(context.Background(), "missing", "user_1")
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Delete_EmitsActivity(t *testing.T) {
	clients := newStubClientRepo()
	rec := &recordingActivity{}
	svc := NewClientService(clients, newStubAppointmentRepo(), rec, discardLogger)

	created, _ := svc.CreateClient(context.Background(), ports.CreateClientInput{Name: "Ana Silva", ActorID: "user_1"})
	if err := svc.DeleteClient(context.Background(), created.ID, "user_1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(rec.entries) != 2 {
		t.Fatalf("expected create + delete activity entries, got %d", len(rec.entries))
	}
	last := rec.entries[len(rec.entries)-1]
	if last.Entity != "client" || last.Action != domain.ActionDeleted || last.EntityID != created.ID {
		t.Errorf("unexpected activity entry: %+v", last)
	}
	if last.Timestamp.After(time.Now().UTC()) {
		t.Error("activity timestamp must not be in the future")
	}
}

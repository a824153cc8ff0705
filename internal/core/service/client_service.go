package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

// ClientService implements roster use cases over an injected repository.
type ClientService struct {
	repo         ports.ClientRepository
	appointments ports.AppointmentRepository
	activity     ports.ActivityRecorder
	logger       zerolog.Logger
}

func NewClientService(
	repo ports.ClientRepository,
	appointments ports.AppointmentRepository,
	activity ports.ActivityRecorder,
	logger zerolog.Logger,
) *ClientService {
	return &ClientService{repo: repo, appointments: appointments, activity: activity, logger: logger}
}

func (s *ClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
		CreatedBy: input.ActorID,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", client.ID).Str("name", client.Name).Msg("client created")
	s.record(client.ID, domain.ActionCreated, input.ActorID, client.Name)

	return client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.repo.Update(ctx, id, ports.ClientUpdate{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	})
	if err != nil {
		return nil, err
	}

	s.record(client.ID, domain.ActionUpdated, input.ActorID, client.Name)
	return client, nil
}

// DeleteClient removes a client from the roster. Deletion is refused while the
// client still has scheduled appointments; completed and cancelled appointments
// may keep a dangling reference, which reads resolve to an absent client.
func (s *ClientService) DeleteClient(ctx context.Context, id string, actorID string) error {
	active, err := s.appointments.CountByClientAndStatus(ctx, id, domain.StatusScheduled)
	if err != nil {
		return fmt.Errorf("delete client: count appointments: %w", err)
	}
	if active > 0 {
		return domain.ErrClientHasAppointments
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("client_id", id).Msg("client deleted")
	s.record(id, domain.ActionDeleted, actorID, "")
	return nil
}

func (s *ClientService) record(id, action, actor, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Record(domain.ActivityEntry{
		Entity:    "client",
		EntityID:  id,
		Action:    action,
		Actor:     actor,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

package ports

import (
	"context"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

// CreateClientInput carries all data needed to register a new client.
type CreateClientInput struct {
	Name  string
	Phone string
	Email string
	// ActorID is the authenticated user performing the action.
	ActorID string
}

// UpdateClientInput carries a partial client edit. Nil fields are left unchanged.
type UpdateClientInput struct {
	Name    *string
	Phone   *string
	Email   *string
	ActorID string
}

// ClientService defines use-case operations for the client roster.
type ClientService interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	// DeleteClient removes a client. It fails with domain.ErrClientHasAppointments
	// when the client still has scheduled appointments.
	DeleteClient(ctx context.Context, id string, actorID string) error
}

package ports

import (
	"context"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

// ClientUpdate carries the optional fields of a partial client update.
// Nil pointers mean "leave unchanged".
type ClientUpdate struct {
	Name  *string
	Phone *string
	Email *string
}

// ClientRepository defines persistence operations for the client roster.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// List returns the full roster ordered by name.
	List(ctx context.Context) ([]*domain.Client, error)
	// Update merges the supplied fields into the stored record.
	// Returns domain.ErrClientNotFound when id is absent.
	Update(ctx context.Context, id string, upd ClientUpdate) (*domain.Client, error)
	// Delete removes the record. Returns domain.ErrClientNotFound when absent.
	Delete(ctx context.Context, id string) error
}

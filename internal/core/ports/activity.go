package ports

import (
	"context"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

// ActivityRecorder is the write side of the audit trail. Record must not
// block the calling request path; implementations enqueue and persist
// asynchronously.
type ActivityRecorder interface {
	Record(entry domain.ActivityEntry)
}

// ActivityRepository persists audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
}

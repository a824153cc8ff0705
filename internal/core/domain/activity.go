package domain

import "time"

// Activity actions recorded in the audit trail.
const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionDeleted       = "deleted"
	ActionStatusChanged = "status_changed"
)

// ActivityEntry records a single mutation performed against the roster or the
// agenda, attributed to the acting user.
type ActivityEntry struct {
	Entity    string    `json:"entity"`    // "client" or "appointment"
	EntityID  string    `json:"entity_id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`     // user id, empty when unauthenticated paths write
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

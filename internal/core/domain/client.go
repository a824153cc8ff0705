package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrClientHasAppointments = errors.New("client has scheduled appointments")

// Client is a patient record in the clinic roster. It is independent of any
// system login identity. No uniqueness is enforced on name, phone or email.
type Client struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	CreatedBy string    `json:"created_by,omitempty" bson:"created_by,omitempty"`
}

package handler

import "time"

type createClientRequest struct {
	Name  string `json:"name"  validate:"required,max=120"`
	Phone string `json:"phone" validate:"max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}

type updateClientRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type listClientsResponse struct {
	Data []clientResponse `json:"data"`
}

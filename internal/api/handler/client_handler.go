package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client roster.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /v1/clients.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		items = append(items, toClientResponse(cl))
	}
	return c.JSON(http.StatusOK, listClientsResponse{Data: items})
}

// Get handles GET /v1/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create handles POST /v1/clients.
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		ActorID: actorID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// Update handles PATCH /v1/clients/:id. Absent fields are left unchanged.
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), ports.UpdateClientInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		ActorID: actorID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete handles DELETE /v1/clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

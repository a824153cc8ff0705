package handler

import (
	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user's id injected by the Auth
// middleware. It is empty on unauthenticated paths; record stamping then
// simply omits the owner.
func actorID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

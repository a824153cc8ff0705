package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/api/handler"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/api/middleware"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

// Dependencies groups everything the router needs to register all routes.
type Dependencies struct {
	Clients      ports.ClientService
	Appointments ports.AppointmentService
	Auth         ports.AuthService
	Mongo        *mongo.Database
	Redis        *redis.Client
	JWTSecret    string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agenda"))

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	clientHandler := handler.NewClientHandler(deps.Clients)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Authenticated API ---
	v1 := e.Group("/v1",
		middleware.Auth(deps.JWTSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleStaff),
	)

	v1.GET("/clients", clientHandler.List)
	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.PATCH("/clients/:id", clientHandler.Update)
	v1.DELETE("/clients/:id", clientHandler.Delete)

	v1.GET("/appointments", appointmentHandler.List)
	v1.POST("/appointments", appointmentHandler.Create)
	v1.GET("/appointments/availability", appointmentHandler.Availability)
	v1.GET("/appointments/:id", appointmentHandler.Get)
	v1.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
	v1.DELETE("/appointments/:id", appointmentHandler.Delete)

	v1.GET("/slots", appointmentHandler.Slots)

	return e
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/api"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/service"
	mongodb "github.com/Lukasnog18/agendamento-de-consultas/internal/infrastructure/db/mongo"
	redisdb "github.com/Lukasnog18/agendamento-de-consultas/internal/infrastructure/db/redis"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/infrastructure/queue"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/pkg/config"
	"github.com/Lukasnog18/agendamento-de-consultas/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Repositories ---
	clientRepo := mongodb.NewClientRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	// --- Audit trail dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	dayCache := redisdb.NewDayCache(rdb, log)
	clientService := service.NewClientService(clientRepo, appointmentRepo, dispatcher, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo, dayCache, dispatcher, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Clients:      clientService,
		Appointments: appointmentService,
		Auth:         authService,
		Mongo:        db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

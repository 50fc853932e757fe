package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/internal/pkg/config"
	"github.com/mototrack/mototrack/internal/pkg/database"
	"github.com/mototrack/mototrack/internal/pkg/health"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/nats"
	"github.com/mototrack/mototrack/internal/pkg/server"
	"github.com/mototrack/mototrack/internal/pkg/statestore"
	ws "github.com/mototrack/mototrack/internal/pkg/websocket"
	authHandler "github.com/mototrack/mototrack/services/auth/handler"
	authRepo "github.com/mototrack/mototrack/services/auth/repository"
	authUsecase "github.com/mototrack/mototrack/services/auth/usecase"
	"github.com/mototrack/mototrack/services/tracker/gateway"
	"github.com/mototrack/mototrack/services/tracker/handler"
	wsHandler "github.com/mototrack/mototrack/services/tracker/handler/websocket"
	"github.com/mototrack/mototrack/services/tracker/repository"
	"github.com/mototrack/mototrack/services/tracker/usecase"
)

func main() {
	appName := "dashboard-service"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize Postgres client
	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}

	// Initialize device state repository on top of the state store
	store := statestore.New(redisClient)
	deviceRepo := repository.NewDeviceStateRepository(store, configs.Tracker.DeviceID)

	// Initialize gateway
	eventGW := gateway.NewEventGateway(natsClient)

	// Initialize websocket hub; it renders the dashboard for connected clients
	manager := ws.NewManager(configs.JWT)
	hub := wsHandler.NewHub(manager)

	// Initialize tracker usecase; the hub serves as both display and renderer
	trackerUC := usecase.NewTrackerUC(configs, deviceRepo, eventGW, hub, hub)
	hub.SetTracker(trackerUC)

	// Initialize auth service
	userRepo := authRepo.NewUserRepository(pgClient)
	authUC := authUsecase.NewAuthUC(configs, userRepo)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Register routes
	authHandler.NewHTTPHandler(authUC).RegisterRoutes(e)
	handler.NewHTTPHandler(trackerUC, deviceRepo, hub, configs).RegisterRoutes(e)
	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "redis", Probe: func(ctx context.Context) error {
			return redisClient.GetClient().Ping(ctx).Err()
		}},
		health.Check{Name: "postgres", Probe: func(ctx context.Context) error {
			return pgClient.GetDB().PingContext(ctx)
		}},
	)

	// Start consuming device streams
	runCtx, cancelRun := context.WithCancel(context.Background())
	go func() {
		if err := trackerUC.Run(runCtx); err != nil {
			logger.Error("Tracker sync stopped", logger.Err(err))
		}
	}()

	// Start server; blocks until an interrupt or SIGTERM arrives. Cleanups
	// run most recently registered first, so the stream consumer stops
	// before the connections it reads from close.
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	gracefulServer.OnShutdown(func(ctx context.Context) error {
		return redisClient.Close()
	})
	gracefulServer.OnShutdown(func(ctx context.Context) error {
		return pgClient.Close()
	})
	gracefulServer.OnShutdown(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	gracefulServer.OnShutdown(func(ctx context.Context) error {
		cancelRun()
		return nil
	})

	if err := gracefulServer.Start(); err != nil {
		logger.Error("Server shutdown with error", logger.Err(err))
	}
}

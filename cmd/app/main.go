package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loadboard/cmd"
	httpadapter "loadboard/internal/adapters/in/http"
	"loadboard/internal/adapters/in/http/apidocs"
	"loadboard/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := newCompositionRoot(configs, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT", "8080"),
		StorageDriver:         goDotEnvVariable("STORAGE_DRIVER", cmd.StorageDriverPostgres),
		DBHost:                goDotEnvVariable("DB_HOST", ""),
		DBPort:                goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                goDotEnvVariable("DB_USER", ""),
		DBPassword:            goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                goDotEnvVariable("DB_NAME", ""),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE", "disable"),
		AuthJWTSecret:         goDotEnvVariable("AUTH_JWT_SECRET", ""),
		BoardSnapshotSchedule: goDotEnvVariable("BOARD_SNAPSHOT_SCHEDULE", ""),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func newCompositionRoot(configs cmd.Config, logger *slog.Logger) cmd.CompositionRoot {
	if configs.StorageDriver == cmd.StorageDriverMemory {
		logger.Warn("Using in-memory storage; loads are lost on restart")
		return cmd.NewInMemoryCompositionRoot(configs, logger)
	}

	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return cmd.NewCompositionRoot(configs, gormDB, logger)
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := httpadapter.NewEcho(logger)

	auth, err := app.CreateAuthenticator()
	if err != nil {
		log.Fatalf("Failed to create authenticator: %v", err)
	}
	app.CreateServer().RegisterRoutes(e, auth.Middleware())

	doc, err := apidocs.Load(ctx)
	if err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}
	if err = apidocs.Register(e, doc); err != nil {
		log.Fatalf("Failed to register API docs: %v", err)
	}

	go func() {
		logger.Info("HTTP server listening", "port", port)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixmarket/cmd"
	httpadapter "fixmarket/internal/adapters/in/http"
	"fixmarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/lmittmann/tint"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := newLogger()

	configs, err := getConfigs()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		root.CreatePromoteRequestedJobsCommandHandler(),
		root.CreateMatchJobsCommandHandler(),
		configs.MatchPollInterval,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := newWebServer(&root)

	go func() {
		if serveErr := e.Start("0.0.0.0:" + configs.HTTPPort); serveErr != nil {
			logger.Info("HTTP server closed", "reason", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	// Stop extending new offers first, then drain in-flight HTTP requests.
	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	logger.Info("Shutdown complete")
}

func newLogger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))
}

func getConfigs() (cmd.Config, error) {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	matchPollInterval, err := durationEnv("MATCH_POLL_INTERVAL", 10*time.Second)
	if err != nil {
		return cmd.Config{}, err
	}

	offerTTL, err := durationEnv("OFFER_TTL", 5*time.Minute)
	if err != nil {
		return cmd.Config{}, err
	}

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            envOrDefault("DB_HOST", "localhost"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            envOrDefault("DB_USER", "postgres"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            envOrDefault("DB_NAME", "fixmarket"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		MatchPollInterval: matchPollInterval,
		OfferTTL:          offerTTL,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func newWebServer(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(
		root.CreateCreateJobCommandHandler(),
		root.CreateAcceptOfferCommandHandler(),
		root.CreateRejectOfferCommandHandler(),
		root.CreateStartJobCommandHandler(),
		root.CreateCompleteJobCommandHandler(),
		root.CreateCancelJobCommandHandler(),
		root.CreateCreateTechnicianCommandHandler(),
		root.CreateVerifyTechnicianCommandHandler(),
		root.CreateSubmitReviewCommandHandler(),
		root.CreateGetJobByIDQueryHandler(),
		root.CreateGetActiveJobsQueryHandler(),
		root.CreateGetPendingOffersQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e
}

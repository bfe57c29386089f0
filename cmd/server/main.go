package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blog-service/internal/application/services"
	"blog-service/internal/config"
	"blog-service/internal/delivery/handler"
	"blog-service/internal/delivery/ws"
	"blog-service/internal/infrastructure"
	"blog-service/internal/infrastructure/db/postgres"
	"blog-service/internal/messaging"
	natsclient "blog-service/libs/go/messaging/nats"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}
	logger := newLogger(cfg)

	if cfg.SecretKeyIsRaw {
		logger.Warn().Msg("SECRET_KEY is not set, using a random key; tokens will not survive a restart")
	}

	db, err := postgres.Open(cfg.DatabaseDriver, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to access database pool")
	}
	defer sqlDB.Close()

	redisService := infrastructure.NewRedisService(
		infrastructure.NewRedisClient(cfg.Redis, logger),
		cfg.CacheTTL,
		cfg.CacheTimeout,
		logger,
	)
	defer redisService.Close()

	natsClient := natsclient.NewClient(cfg.NatsURL, "blog-service", logger)
	defer natsClient.Close()
	bus := messaging.NewNotificationBus(natsClient, cfg.NotificationTopic, cfg.BusTimeout)

	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	postRepo := postgres.NewPostRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	authService := services.NewAuthService(
		userRepo,
		infrastructure.NewPasswordHasher(cfg.PasswordCost),
		infrastructure.NewJWTService(cfg.SecretKey, cfg.TokenTTL),
		logger,
	)
	notificationService := services.NewNotificationService(notificationRepo, bus, logger)

	svc := handler.Services{
		Auth:          authService,
		Posts:         services.NewPostService(postRepo, categoryRepo, redisService, notificationService, logger),
		Categories:    services.NewCategoryService(categoryRepo, logger),
		Comments:      services.NewCommentService(commentRepo, postRepo, logger),
		Bookmarks:     services.NewBookmarkService(bookmarkRepo, postRepo, logger),
		Notifications: notificationService,
	}

	if cfg.HasAdmin() {
		if err := authService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logger.Fatal().Err(err).Msg("failed to create admin user")
		}
	}

	stream := ws.NewHandler(authService, notificationService, logger)
	e := handler.NewServer(svc, sqlDB, stream, logger)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	stream.Close()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Str("service", "blog-service").Logger()
}

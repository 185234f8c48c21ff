package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"supportpulse.app/pulse/common/id"
	"supportpulse.app/pulse/common/logger"
	"supportpulse.app/pulse/common/otel"
	"supportpulse.app/pulse/core/config"
	"supportpulse.app/pulse/core/db"
	"supportpulse.app/pulse/internal/classifier"
	"supportpulse.app/pulse/internal/feed"
	"supportpulse.app/pulse/internal/http/middleware"
	httprouter "supportpulse.app/pulse/internal/http/router"
	"supportpulse.app/pulse/internal/service"
	"supportpulse.app/pulse/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "pulse starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.IDNode); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "migrations applied")
	}

	policy, err := loadPolicy(cfg.Classifier)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load classifier policy", "error", err)
		os.Exit(1)
	}
	if !policy.AgentSourcesOnly {
		slog.WarnContext(ctx, "agent source filter disabled, every message source is logged as a reply")
	}

	publisher, err := newPublisher(ctx, cfg.Feed)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize behavior feed", "error", err, "backend", cfg.Feed.Backend)
		os.Exit(1)
	}
	defer publisher.Close()

	services := service.NewServices(
		store.NewStores(database.Conn()),
		service.NewTxRunner(database),
		classifier.New(policy),
		publisher,
		slog.Default(),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func loadPolicy(cfg config.ClassifierConfig) (classifier.Policy, error) {
	policy := classifier.DefaultPolicy()
	policy.AgentSourcesOnly = cfg.AgentSourcesOnly
	if cfg.PolicyFile == "" {
		return policy, policy.Validate()
	}
	return classifier.LoadPolicy(cfg.PolicyFile, policy)
}

func newPublisher(ctx context.Context, cfg config.FeedConfig) (feed.Publisher, error) {
	switch cfg.Backend {
	case config.FeedBackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		slog.InfoContext(ctx, "redis connected", "stream", cfg.RedisStream)
		return feed.NewRedisPublisher(client, cfg.RedisStream, slog.Default()), nil
	case config.FeedBackendKafka:
		publisher, err := feed.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, slog.Default())
		if err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "kafka feed configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
		return publisher, nil
	default:
		return feed.NewNoop(), nil
	}
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		WebhookSecret:       cfg.Gorgias.WebhookSecret,
		WebhookMaxBodyBytes: cfg.Gorgias.MaxBodyBytes,
		AdminAPIKey:         cfg.AdminAPIKey,
	})

	return router
}

const banner = `
██████╗ ██╗   ██╗██╗     ███████╗███████╗
██╔══██╗██║   ██║██║     ██╔════╝██╔════╝
██████╔╝██║   ██║██║     ███████╗█████╗  
██╔═══╝ ██║   ██║██║     ╚════██║██╔══╝  
██║     ╚██████╔╝███████╗███████║███████╗
╚═╝      ╚═════╝ ╚══════╝╚══════╝╚══════╝
`

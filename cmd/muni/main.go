package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	corecfg "github.com/municipio-lab/muni-backend/internal/core/config"
	"github.com/municipio-lab/muni-backend/internal/core/storage/postgres"
	"github.com/municipio-lab/muni-backend/internal/migrations"
	"github.com/municipio-lab/muni-backend/internal/opsnotify"
	"github.com/municipio-lab/muni-backend/internal/reclamos"
	"github.com/municipio-lab/muni-backend/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const drainTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "muni.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logLevel := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := logLevel.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		slog.Warn("Unknown log level, keeping info", "level", cfg.Log.Level)
	}
	slog.Info("Loaded config",
		"server_addr", fmtAddr(cfg.Server.Host, cfg.Server.Port),
		"ops_enabled", cfg.Ops.Enabled,
		"ops_min_severity", cfg.Ops.MinSeverity,
		"ops_throttle", cfg.Ops.ThrottleWindow(),
		"ops_webhook_configured", cfg.Ops.EffectiveWebhookURL() != "",
		"redis_configured", cfg.Redis.URL != "",
		"environment", cfg.Ops.Environment,
	)

	// 2. Initialize Storage (PostgreSQL)
	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		db.Close()
		os.Exit(1)
	}

	dbAdapter, err := postgres.NewAdapter(db)
	if err != nil {
		slog.Error("Failed to initialize database adapter", "error", err)
		db.Close()
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 3. Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 4. Throttle store: Redis when configured, process memory otherwise
	var redisClient *redis.Client
	var throttleBackend opsnotify.ThrottleBackend
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid redis url, throttling in memory only", "error", err)
		} else {
			redisClient = redis.NewClient(opts)
			throttleBackend = opsnotify.NewRedisThrottle(redisClient)
			slog.Info("Redis throttle backend configured", "addr", opts.Addr)
		}
	}
	throttle := opsnotify.NewFallbackThrottle(throttleBackend, opsnotify.NewMemoryThrottle())

	// 5. Ops notification pipeline
	pipeline := opsnotify.NewPipeline(opsnotify.Options{
		Enabled:        cfg.Ops.Enabled,
		MinSeverity:    opsnotify.ParseSeverity(cfg.Ops.MinSeverity, opsnotify.DefaultSeverity),
		ThrottleWindow: cfg.Ops.ThrottleWindow(),
		Throttle:       throttle,
		Sink:           opsnotify.NewSlackSink(cfg.Ops.EffectiveWebhookURL(), cfg.Ops.Environment, cfg.Ops.Timeout()),
		Recorder:       opsnotify.NewRecorder(registry),
	})

	// 6. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), cfg.Server.Mode, registry)
	if redisClient != nil {
		srv.AddHealthCheck("redis", redisPinger{client: redisClient})
	}

	// Routes registered after this point report 5xx responses to the pipeline.
	srv.Engine.Use(opsnotify.ObserveServerErrors(pipeline))

	opsRoutes := srv.Engine.Group("", server.RequireAPIKey("ops", cfg.Auth.Keys))
	opsnotify.NewHandler(pipeline).RegisterRoutes(opsRoutes)

	reclamoRoutes := srv.Engine.Group("", server.RequireAPIKey("reclamos", cfg.Auth.Keys))
	reclamos.NewService(dbAdapter, cfg.Server.MaxBodySizeMB).RegisterRoutes(reclamoRoutes)

	// 7. Start Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// HTTP server blocks until gctx is cancelled.
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down...")
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	// 8. Let in-flight notifications finish before closing their backends.
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := pipeline.Drain(drainCtx); err != nil {
		slog.Warn("Ops pipeline drain timed out", "error", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	slog.Info("Shutdown complete")
}

// redisPinger adapts the redis client to server.HealthChecker.
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}

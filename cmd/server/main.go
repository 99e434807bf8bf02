package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"deskflow/internal/cascade/cache"
	cascadeHandler "deskflow/internal/cascade/handler"
	cascadeMetrics "deskflow/internal/cascade/metrics"
	cascadeService "deskflow/internal/cascade/service"
	cascadeStore "deskflow/internal/cascade/store"
	dashboardHandler "deskflow/internal/dashboard/handler"
	dashboardService "deskflow/internal/dashboard/service"
	dashboardStore "deskflow/internal/dashboard/store"
	"deskflow/internal/platform/config"
	"deskflow/internal/platform/httpserver"
	"deskflow/internal/platform/logger"
	"deskflow/internal/platform/metrics"
	"deskflow/internal/platform/postgres"
	"deskflow/internal/platform/redis"
	httptransport "deskflow/internal/transport/http"
)

// main wires configuration, backing stores and HTTP routes, then serves until
// SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "deskflow: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	reg := prometheus.DefaultRegisterer
	httpMetrics := metrics.New(reg)

	cascadeModule, err := buildCascade(cfg, db, redisClient, log, cascadeMetrics.New(reg))
	if err != nil {
		return err
	}
	dashboardModule, err := buildDashboard(db, log)
	if err != nil {
		return err
	}

	checks := map[string]httptransport.Check{}
	if db != nil {
		checks["postgres"] = db.PingContext
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Health
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Metrics:  httpMetrics,
		Gatherer: prometheus.DefaultGatherer,
		Checks:   checks,
		Modules:  []httptransport.Registrar{cascadeModule, dashboardModule},
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting deskflow",
		"addr", cfg.Addr,
		"postgres", db != nil,
		"redis", redisClient != nil,
		"tipo_formulario_padrao", cfg.DefaultFormType,
	)
	if err := httpserver.Run(ctx, srv, cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	log.Info("deskflow stopped")
	return nil
}

func buildCascade(cfg config.Server, db *sql.DB, redisClient *redis.Client, log *slog.Logger, m *cascadeMetrics.Metrics) (*cascadeHandler.Handler, error) {
	var rows cascadeService.RowSource
	if db != nil {
		rows = cascadeStore.NewPostgres(db)
	} else {
		log.Warn("DATABASE_URL not set, cascade rows served from an empty in-memory store")
		rows = cascadeStore.NewInMemory()
	}

	opts := []cascadeService.Option{
		cascadeService.WithLogger(log),
		cascadeService.WithMetrics(m),
		cascadeService.WithDefaultFormType(cfg.DefaultFormType),
	}
	if redisClient != nil && cfg.Cascade.CacheTTL > 0 {
		opts = append(opts, cascadeService.WithCache(cache.NewRedis(redisClient.Client, cfg.Cascade.CacheTTL)))
	}

	svc, err := cascadeService.New(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("cascade service: %w", err)
	}
	return cascadeHandler.New(svc, log), nil
}

func buildDashboard(db *sql.DB, log *slog.Logger) (*dashboardHandler.Handler, error) {
	var st dashboardService.Store
	if db != nil {
		st = dashboardStore.NewPostgres(db)
	} else {
		st = dashboardStore.NewInMemory()
	}
	svc, err := dashboardService.New(st, log)
	if err != nil {
		return nil, fmt.Errorf("dashboard service: %w", err)
	}
	return dashboardHandler.New(svc, log), nil
}

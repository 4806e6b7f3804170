package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spacetrade-server/internal/building"
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/galaxy"
	"spacetrade-server/internal/market"
	"spacetrade-server/internal/shared/config"
	"spacetrade-server/internal/shared/database"
	"spacetrade-server/internal/shared/logger"
	sharedredis "spacetrade-server/internal/shared/redis"
	"spacetrade-server/internal/system"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	logger.Init()
	log := slog.Default()
	log.Info("Starting spacetrade server",
		"environment", config.GlobalConfig.Server.Environment,
		"galaxy_seed", config.GlobalConfig.Galaxy.Seed)

	db, err := database.Connect()
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := db.RunMigrations(); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cache, err := sharedredis.Connect()
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			log.Error("Failed to close Redis connection", "error", err)
		}
	}()

	catalogue := catalog.Default()
	log.Info("Commodity catalogue loaded", "commodities", catalogue.Len())

	galaxies := galaxy.NewService(
		galaxy.NewRepository(db, log),
		cache,
		system.NewGenerator(catalogue),
		config.GlobalConfig.Galaxy.Seed,
		config.GlobalConfig.Redis.SnapshotTTL,
		log,
	)

	structures := building.NewRepository(db, log)
	markets := market.NewService(
		galaxies,
		structures,
		market.NewRepository(db, log),
		market.NewCalculator(building.NewGenerator()),
		catalogue,
		log,
	)

	// The origin hub must exist before any player arrives.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	hub, err := galaxies.Materialize(ctx, 0, 0, 0)
	if err != nil {
		cancel()
		log.Error("Failed to materialize origin hub", "error", err)
		os.Exit(1)
	}
	log.Info("Origin hub ready", "system_id", hub.ID, "name", hub.Record.Name)

	price, ok, err := markets.CurrentPrice(ctx, hub.ID, catalog.TutorialMineral)
	cancel()
	if err != nil || !ok {
		log.Error("Failed to price tutorial mineral at origin hub", "error", err)
		os.Exit(1)
	}
	log.Info("Tutorial market open", "commodity", catalog.TutorialMineral, "price_cents", price)

	if !config.GlobalConfig.Metrics.Enabled {
		log.Info("Metrics disabled, idling until shutdown signal")
		waitForShutdown(log)
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + config.GlobalConfig.Metrics.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Metrics listener starting", "port", config.GlobalConfig.Metrics.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics listener failed", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(log)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics listener shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}

func waitForShutdown(log *slog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	log.Info("Shutdown signal received", "signal", sig.String())
}

package main

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/controller"
	apirepository "ctchen222/three-in-a-row/internal/api/repository"
	"ctchen222/three-in-a-row/internal/api/service"
	"ctchen222/three-in-a-row/internal/config"
	"ctchen222/three-in-a-row/internal/db"
	"ctchen222/three-in-a-row/internal/events"
	"ctchen222/three-in-a-row/internal/logger"
	"ctchen222/three-in-a-row/internal/repository"
	"ctchen222/three-in-a-row/internal/server"
	"ctchen222/three-in-a-row/internal/telemetry"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger.Init(logger.Options{Level: cfg.SlogLevel(), Otel: cfg.Telemetry.Enabled})

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	// Initialize Redis
	rdb, err := db.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Initialize SQLite DB
	pool, err := db.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Create repositories
	deviceRepo := apirepository.NewDeviceRepository(pool)
	matchRepo := repository.NewMatchRepository(rdb, cfg.Redis.MatchTTL)
	matchmakingRepo := repository.NewMatchmakingRepository(rdb)
	stateRepo := repository.NewDeviceStateRepository(rdb, cfg.Redis.MatchTTL)

	// Create services
	deviceService := service.NewDeviceService(deviceRepo)
	matchService, err := service.NewMatchService(deviceRepo, matchRepo, matchmakingRepo, stateRepo, events.NewRedisPublisher(rdb), cfg.Server.QueueTimeout)
	if err != nil {
		return err
	}

	// Create controllers and the Gin-based server
	srv := server.NewServer(
		controller.NewDeviceController(deviceService),
		controller.NewMatchController(matchService),
	)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server started", "http.addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		return err
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exiting")
	return nil
}

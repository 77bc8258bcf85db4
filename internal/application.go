package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/config"
	"github.com/rocketscienceinc/gamecenter-map-backend/internal/repository"
	"github.com/rocketscienceinc/gamecenter-map-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gamecenter-map-backend/internal/service"
	"github.com/rocketscienceinc/gamecenter-map-backend/internal/usecase"
	"github.com/rocketscienceinc/gamecenter-map-backend/transport/rest"
	"github.com/rocketscienceinc/gamecenter-map-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameCenterRepo := repository.NewGameCenterRepository(redisStorage.Connection)
	gameCenterService := service.NewGameCenterService(gameCenterRepo)
	markerService := service.NewMarkerService()

	wsServer := websocket.New(logger)
	mapUseCase := usecase.NewMapUseCase(logger, gameCenterService, markerService, wsServer)

	router := rest.NewRouter(
		rest.NewHandlers(logger, mapUseCase),
		conf.ImageDir,
		rest.Route{Path: "/ws/markers", Handler: wsServer},
	)
	httpServer := rest.New(logger, conf.HTTPPort, router)

	httpErrCh := make(chan error, 1)
	go func() {
		httpErrCh <- httpServer.Start()
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()

	wsServer.Close(shutdownCtx)

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}

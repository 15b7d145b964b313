package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridlab/sudoku-pool-backend/internal/config"
	"github.com/gridlab/sudoku-pool-backend/internal/random"
	"github.com/gridlab/sudoku-pool-backend/internal/repository"
	"github.com/gridlab/sudoku-pool-backend/internal/repository/storage"
	"github.com/gridlab/sudoku-pool-backend/internal/service"
	"github.com/gridlab/sudoku-pool-backend/internal/usecase"
	"github.com/gridlab/sudoku-pool-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

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

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	poolRepo := repository.NewGamePoolRepository(redisStorage.Connection)
	if err = poolRepo.Init(ctx); err != nil {
		return fmt.Errorf("could not init game pool: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	archiveRepo := repository.NewSolveArchiveRepository(sqliteStorage.Connection)

	authService := service.NewAuthService(conf.JWTSecretKey)
	selector := random.NewSelector()
	coordinator := usecase.NewSessionCoordinator(logger, playerRepo, poolRepo, archiveRepo, selector)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, coordinator, authService)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

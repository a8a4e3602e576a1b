package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/config"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/repository"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/repository/storage"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/service"
	"github.com/rocketscienceinc/cookiemilk-backend/transport/rest"
)

var (
	ErrAddrNotFound        = errors.New("redis address string is empty")
	ErrUnknownScoreStorage = errors.New("unknown score storage")
)

// RunApp - runs the application until ctx is canceled or the server fails.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	scoreRepo, closeStorage, err := newScoreRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error("could not close score storage", "error", closeErr)
		}
	}()

	session := service.NewGameSession(logger, conf.RandomSeed, scoreRepo)
	router := rest.NewRouter(logger, rest.NewBoardHandler(logger, session), rest.NewPingHandler())
	server := rest.New(logger, conf.HTTPPort, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(server.Start)

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Application context canceled, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	switch conf.ScoreStorage {
	case config.ScoreStorageMemory:
		return repository.NewMemoryScoreRepository(), func() error { return nil }, nil
	case config.ScoreStorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewScoreRepository(redisStorage.Connection), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownScoreStorage, conf.ScoreStorage)
	}
}

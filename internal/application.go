package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/minimax-games/internal/config"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
	"github.com/rocketscienceinc/minimax-games/internal/repository"
	"github.com/rocketscienceinc/minimax-games/internal/service"
	"github.com/rocketscienceinc/minimax-games/internal/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	kind, err := entity.ParseKind(conf.Game.Kind)
	if err != nil {
		return fmt.Errorf("invalid game kind in config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gameRepo := repository.NewGameRepository()
	botService := service.NewBotService(logger, conf.AI)
	gamePlayService := service.NewGamePlayService(logger, gameRepo, botService)

	consoleServer := console.New(logger, gamePlayService, conf.Console, console.Defaults{
		Kind:      kind,
		HumanMark: conf.Game.HumanMark,
	}, os.Stdout)

	group, groupCtx := errgroup.WithContext(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	group.Go(func() error {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-groupCtx.Done():
		}
		return nil
	})

	// run console
	group.Go(func() error {
		defer cancel()

		log.Info("Starting console", "kind", kind)
		if consoleErr := consoleServer.Start(groupCtx); consoleErr != nil {
			return fmt.Errorf("console error: %w", consoleErr)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/config"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
	"github.com/rocketscienceinc/minimax-games/internal/minimax"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Location, error)
}

type botService struct {
	logger *slog.Logger

	engines map[entity.Kind]*minimax.Engine
	depths  map[entity.Kind]int
}

func NewBotService(logger *slog.Logger, conf config.AI) BotService {
	engines := make(map[entity.Kind]*minimax.Engine, 2)
	for _, kind := range []entity.Kind{entity.TicTacToe, entity.ConnectFour} {
		opts := []minimax.Option{
			minimax.WithLogger(logger.With("component", "minimax")),
			minimax.WithScorer(minimax.ScorerFor(kind)),
		}
		if conf.DisablePruning {
			opts = append(opts, minimax.WithoutPruning())
		}

		engines[kind] = minimax.New(opts...)
	}

	return &botService{
		logger:  logger,
		engines: engines,
		depths: map[entity.Kind]int{
			entity.TicTacToe:   conf.TicTacToeDepth,
			entity.ConnectFour: conf.ConnectFourDepth,
		},
	}
}

func (that *botService) MakeTurn(game *entity.Game) (entity.Location, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Location{}, fmt.Errorf("bot can't move: %w", err)
	}

	botPlayer, ok := game.BotPlayer()
	if !ok {
		return entity.Location{}, ErrBotNotFound
	}

	if game.Turn != botPlayer.Mark {
		return entity.Location{}, apperror.ErrNotYourTurn
	}

	engine, ok := that.engines[game.Kind]
	if !ok {
		return entity.Location{}, fmt.Errorf("%w: %q", apperror.ErrUnknownGameKind, game.Kind)
	}

	move, err := engine.BestMove(game.Board, botPlayer.Mark, botPlayer.Mark.Opponent(), that.depths[game.Kind])
	if err != nil {
		return entity.Location{}, fmt.Errorf("failed to find bot move: %w", err)
	}

	loc, err := game.MakeTurn(botPlayer.Mark, move)
	if err != nil {
		return entity.Location{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot moved", "move", move, "location", loc)

	return loc, nil
}

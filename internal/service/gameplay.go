package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/minimax-games/internal/board"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
	"github.com/rocketscienceinc/minimax-games/internal/pkg"
)

// RandomMark lets the game pick the human side.
const RandomMark = "random"

type GamePlayService interface {
	NewGame(ctx context.Context, kind entity.Kind, humanMark string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move int) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gamePlayService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService BotService
}

func NewGamePlayService(logger *slog.Logger, gameRepo gameRepo, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger,
		gameRepo:   gameRepo,
		botService: botService,
	}
}

func (that *gamePlayService) NewGame(ctx context.Context, kind entity.Kind, humanMark string) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame", "kind", kind)

	newBoard, err := board.New(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game := entity.NewGame(pkg.GenerateGameID(), newBoard)

	playerMark, botMark, err := that.resolveMarks(game, humanMark)
	if err != nil {
		return nil, err
	}

	game.Players = []*entity.Player{
		entity.NewHumanPlayer(pkg.GeneratePlayerID(), playerMark),
		entity.NewBotPlayer(pkg.GeneratePlayerID(), botMark),
	}

	if err = that.botOpening(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "human", playerMark, "bot", botMark)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - applies the human move and, unless that ended the game, answers with the bot move.
// A rejected move leaves the game untouched and is returned together with the game.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, move int) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player, ok := game.HumanPlayer()
	if !ok {
		return game, fmt.Errorf("human player not found in game %s", game.ID)
	}

	if _, err = game.MakeTurn(player.Mark, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return game, fmt.Errorf("failed to make bot turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "winner", game.Winner, "draw", game.IsDraw())
	}

	return game, nil
}

// Restart - fresh board, same kind and marks.
func (that *gamePlayService) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	newBoard, err := board.New(game.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game.Restart(newBoard)

	if err = that.botOpening(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *gamePlayService) resolveMarks(game *entity.Game, humanMark string) (entity.Cell, entity.Cell, error) {
	if strings.EqualFold(strings.TrimSpace(humanMark), RandomMark) {
		playerMark, botMark := game.GetRandomMarks()
		return playerMark, botMark, nil
	}

	playerMark, err := entity.ParseMark(humanMark)
	if err != nil {
		return entity.Empty, entity.Empty, fmt.Errorf("failed to parse human mark: %w", err)
	}

	return playerMark, playerMark.Opponent(), nil
}

// botOpening - the bot moves first when it holds X.
func (that *gamePlayService) botOpening(game *entity.Game) error {
	botPlayer, ok := game.BotPlayer()
	if !ok || botPlayer.Mark != game.Turn {
		return nil
	}

	if _, err := that.botService.MakeTurn(game); err != nil {
		return fmt.Errorf("bot failed to make first turn: %w", err)
	}

	return nil
}

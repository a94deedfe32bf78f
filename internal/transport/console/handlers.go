package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

const helpText = `Commands:
  new [ttt|c4] [X|O|random]  start a new game
  move N | N                 play cell 0-8 (Tic-Tac-Toe) or column 0-6 (Connect Four)
  restart                    start over with the same game and sides
  board                      show the board
  help                       show this help
  quit | exit                leave
`

func (that *Server) handleNewGame(ctx context.Context, args []string) error {
	kind := that.defaults.Kind
	mark := that.defaults.HumanMark

	if len(args) > 0 {
		parsed, err := entity.ParseKind(args[0])
		if err != nil {
			that.printf("Unknown game %q, use ttt or c4.\n", args[0])
			return nil
		}
		kind = parsed
	}

	if len(args) > 1 {
		mark = args[1]
	}

	if that.gameID != "" {
		if err := that.uGame.EndGame(ctx, that.gameID); err != nil {
			that.logger.Warn("failed to end previous game", "gameID", that.gameID, "error", err)
		}
		that.gameID = ""
	}

	game, err := that.uGame.NewGame(ctx, kind, mark)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidMark) {
			that.printf("Invalid side %q, use X, O or random.\n", mark)
			return nil
		}
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.gameID = game.ID
	that.kind = game.Kind

	human, _ := game.HumanPlayer()
	that.printf("\nWelcome to %s! You are %s.\n", title(game.Kind), human.Mark)
	that.reportBotMove(game)
	that.printf("%s\n", RenderBoard(game.Board))
	that.promptMove(game)

	return nil
}

func (that *Server) handleMove(ctx context.Context, args []string) error {
	if that.gameID == "" {
		that.printf("No game in progress, type new.\n")
		return nil
	}

	if len(args) == 0 {
		that.printf("Which move? %s\n", moveHint(that.kind))
		return nil
	}

	move, err := strconv.Atoi(args[0])
	if err != nil {
		that.printf("Please enter a number.\n")
		return nil
	}

	game, err := that.uGame.MakeTurn(ctx, that.gameID, move)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrInvalidMove):
			that.printf("Invalid move. Try again.\n")
			if game != nil {
				that.promptMove(game)
			}
			return nil
		case errors.Is(err, apperror.ErrGameFinished):
			that.printf("The game is over, type restart or new.\n")
			return nil
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}

	that.reportBotMove(game)
	that.printf("%s\n", RenderBoard(game.Board))

	if game.IsFinished() {
		that.printf("%s\n", outcomeMessage(game))
		return nil
	}

	that.promptMove(game)

	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ []string) error {
	if that.gameID == "" {
		return that.handleNewGame(ctx, nil)
	}

	game, err := that.uGame.Restart(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	that.printf("\nGame restarted.\n")
	that.reportBotMove(game)
	that.printf("%s\n", RenderBoard(game.Board))
	that.promptMove(game)

	return nil
}

func (that *Server) handleBoard(ctx context.Context, _ []string) error {
	if that.gameID == "" {
		that.printf("No game in progress, type new.\n")
		return nil
	}

	game, err := that.uGame.GetGame(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	that.printf("%s\n", RenderBoard(game.Board))
	if game.IsFinished() {
		that.printf("%s\n", outcomeMessage(game))
	}

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.printf("Bye.\n")
	return ErrQuit
}

// reportBotMove - prints the last move when the bot made it.
func (that *Server) reportBotMove(game *entity.Game) {
	last, ok := game.LastMove()
	if !ok {
		return
	}

	bot, ok := game.BotPlayer()
	if !ok || bot.Mark != last.Mark {
		return
	}

	that.printf("AI (%s) plays %d.\n", last.Mark, last.Move)
}

func (that *Server) promptMove(game *entity.Game) {
	human, ok := game.HumanPlayer()
	if !ok || game.Turn != human.Mark {
		return
	}

	that.printf("Your move (%s): %s\n", human.Mark, moveHint(game.Kind))
}

func outcomeMessage(game *entity.Game) string {
	if game.IsDraw() {
		return "It's a tie!"
	}
	return fmt.Sprintf("%s wins!", game.Winner)
}

func moveHint(kind entity.Kind) string {
	if kind == entity.ConnectFour {
		return "choose a column 0-6"
	}
	return "choose a cell 0-8"
}

func title(kind entity.Kind) string {
	if kind == entity.ConnectFour {
		return "Connect Four"
	}
	return "Tic-Tac-Toe"
}

package board

import (
	"fmt"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/connectfour"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
	"github.com/rocketscienceinc/minimax-games/internal/tictactoe"
)

// New - creates an empty board for the given game kind.
func New(kind entity.Kind) (entity.Board, error) {
	switch kind {
	case entity.TicTacToe:
		return tictactoe.NewBoard(), nil
	case entity.ConnectFour:
		return connectfour.NewBoard(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGameKind, kind)
	}
}

package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// IsPlayer reports whether the cell holds a player mark.
func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// ParseMark - parses "X" or "O" in any case.
func ParseMark(mark string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}
}

// Location is the resolved square of a move.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Location) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Kind selects one of the supported games.
type Kind string

const (
	TicTacToe   Kind = "tictactoe"
	ConnectFour Kind = "connectfour"
)

// ParseKind accepts the full names and the short aliases "ttt" and "c4".
func ParseKind(kind string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "tictactoe", "tic-tac-toe", "ttt":
		return TicTacToe, nil
	case "connectfour", "connect-four", "c4":
		return ConnectFour, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownGameKind, kind)
	}
}

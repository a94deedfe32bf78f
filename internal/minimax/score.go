package minimax

import "github.com/rocketscienceinc/minimax-games/internal/entity"

// WinScore is the flat magnitude of a decided position.
const WinScore = 1_000_000

// Scorer evaluates a leaf of the search tree from aiPlayer's side.
type Scorer func(board entity.Board, aiPlayer, humanPlayer entity.Cell) int

// FlatScore - ±WinScore for a decided board, 0 otherwise.
func FlatScore(board entity.Board, aiPlayer, humanPlayer entity.Cell) int {
	switch {
	case board.HasWon(aiPlayer):
		return WinScore
	case board.HasWon(humanPlayer):
		return -WinScore
	default:
		return 0
	}
}

// ScaledScore grows with the number of empty cells left, so quicker wins and
// slower losses score better.
func ScaledScore(board entity.Board, aiPlayer, humanPlayer entity.Cell) int {
	switch {
	case board.HasWon(aiPlayer):
		return board.EmptyCells() + 1
	case board.HasWon(humanPlayer):
		return -(board.EmptyCells() + 1)
	default:
		return 0
	}
}

// ScorerFor returns the default evaluation of a game kind.
func ScorerFor(kind entity.Kind) Scorer {
	if kind == entity.TicTacToe {
		return ScaledScore
	}
	return FlatScore
}

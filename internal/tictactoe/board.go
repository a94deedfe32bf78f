package tictactoe

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

const (
	Size      = 3
	CellCount = Size * Size
)

var (
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	// combosThrough[i] holds the WinCombos that contain cell i.
	combosThrough = buildCombosThrough()
)

func buildCombosThrough() [CellCount][][3]int {
	var through [CellCount][][3]int
	for cell := range CellCount {
		through[cell] = lo.Filter(WinCombos, func(combo [3]int, _ int) bool {
			return lo.Contains(combo[:], cell)
		})
	}
	return through
}

// Board is the 3x3 grid. A move is a cell index, row-major from the top left.
type Board struct {
	cells  [CellCount]entity.Cell
	winner entity.Cell
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Kind() entity.Kind {
	return entity.TicTacToe
}

func (that *Board) Rows() int {
	return Size
}

func (that *Board) Cols() int {
	return Size
}

func (that *Board) Cell(row, col int) entity.Cell {
	if !inRange(entity.Location{Row: row, Col: col}) {
		return entity.Empty
	}
	return that.cells[row*Size+col]
}

// LegalMoves - empty cell indices in ascending order.
func (that *Board) LegalMoves() []int {
	return lo.Filter(lo.Range(CellCount), func(cell, _ int) bool {
		return that.cells[cell] == entity.Empty
	})
}

func (that *Board) ApplyMove(move int, player entity.Cell) (entity.Location, error) {
	if !player.IsPlayer() {
		return entity.Location{}, fmt.Errorf("%w: mark %q", apperror.ErrInvalidMove, player)
	}

	if move < 0 || move >= CellCount {
		return entity.Location{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidMove, move)
	}

	if that.cells[move] != entity.Empty {
		return entity.Location{}, fmt.Errorf("%w: cell %d: %w", apperror.ErrInvalidMove, move, apperror.ErrCellOccupied)
	}

	that.cells[move] = player

	loc := LocationOf(move)
	if that.winner == entity.Empty && that.Winner(loc, player) {
		that.winner = player
	}

	return loc, nil
}

func (that *Board) UndoMove(loc entity.Location) error {
	if !inRange(loc) {
		return fmt.Errorf("%w: location %s", apperror.ErrInvalidMove, loc)
	}

	index := loc.Row*Size + loc.Col
	if that.cells[index] == entity.Empty {
		return fmt.Errorf("%w: cell %d is empty", apperror.ErrInvalidMove, index)
	}

	that.cells[index] = entity.Empty

	if that.winner != entity.Empty {
		that.winner = that.detectWinner()
	}

	return nil
}

func (that *Board) IsFull() bool {
	return that.EmptyCells() == 0
}

func (that *Board) EmptyCells() int {
	return lo.Count(that.cells[:], entity.Empty)
}

// Winner - checks only the lines that run through loc.
func (that *Board) Winner(loc entity.Location, player entity.Cell) bool {
	if !inRange(loc) || !player.IsPlayer() {
		return false
	}

	index := loc.Row*Size + loc.Col
	if that.cells[index] != player {
		return false
	}

	for _, combo := range combosThrough[index] {
		if that.cells[combo[0]] == player && that.cells[combo[1]] == player && that.cells[combo[2]] == player {
			return true
		}
	}

	return false
}

func (that *Board) HasWon(player entity.Cell) bool {
	return player.IsPlayer() && that.winner == player
}

func (that *Board) Outcome() entity.Outcome {
	switch {
	case that.winner != entity.Empty:
		return entity.Outcome{Result: entity.Win, Winner: that.winner}
	case that.IsFull():
		return entity.Outcome{Result: entity.Draw}
	default:
		return entity.Outcome{Result: entity.InProgress}
	}
}

func (that *Board) IsGameOver() bool {
	return that.winner != entity.Empty || that.IsFull()
}

func (that *Board) Clone() entity.Board {
	clone := *that
	return &clone
}

// LocationOf converts a cell index to its row and column.
func LocationOf(cell int) entity.Location {
	return entity.Location{Row: cell / Size, Col: cell % Size}
}

// detectWinner - full rescan, only needed after an undo.
func (that *Board) detectWinner() entity.Cell {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != entity.Empty && a == b && b == c {
			return a
		}
	}

	return entity.Empty
}

func inRange(loc entity.Location) bool {
	return loc.Row >= 0 && loc.Row < Size && loc.Col >= 0 && loc.Col < Size
}

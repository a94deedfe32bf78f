package connectfour

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

const (
	Rows = 6
	Cols = 7

	// InARow is the run length that wins.
	InARow = 4
)

// directions are the four axes a line can run along, as (row, col) steps.
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{-1, 1}, // diagonal ↗
	{1, 1},  // diagonal ↘
}

// Board is the 6x7 grid. Row 0 is the top row, stones settle from row Rows-1 up.
// A move is a column index.
type Board struct {
	cells  [Rows][Cols]entity.Cell
	winner entity.Cell
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Kind() entity.Kind {
	return entity.ConnectFour
}

func (that *Board) Rows() int {
	return Rows
}

func (that *Board) Cols() int {
	return Cols
}

func (that *Board) Cell(row, col int) entity.Cell {
	if !inRange(row, col) {
		return entity.Empty
	}
	return that.cells[row][col]
}

// LegalMoves - columns whose top cell is still empty, in ascending order.
func (that *Board) LegalMoves() []int {
	return lo.Filter(lo.Range(Cols), func(col, _ int) bool {
		return that.cells[0][col] == entity.Empty
	})
}

// AvailableRow returns the lowest empty row of col, or false when the column is full.
func (that *Board) AvailableRow(col int) (int, bool) {
	if col < 0 || col >= Cols {
		return 0, false
	}

	for row := Rows - 1; row >= 0; row-- {
		if that.cells[row][col] == entity.Empty {
			return row, true
		}
	}

	return 0, false
}

func (that *Board) ApplyMove(move int, player entity.Cell) (entity.Location, error) {
	if !player.IsPlayer() {
		return entity.Location{}, fmt.Errorf("%w: mark %q", apperror.ErrInvalidMove, player)
	}

	if move < 0 || move >= Cols {
		return entity.Location{}, fmt.Errorf("%w: column %d", apperror.ErrInvalidMove, move)
	}

	row, ok := that.AvailableRow(move)
	if !ok {
		return entity.Location{}, fmt.Errorf("%w: column %d: %w", apperror.ErrInvalidMove, move, apperror.ErrColumnFull)
	}

	that.cells[row][move] = player

	loc := entity.Location{Row: row, Col: move}
	if that.winner == entity.Empty && that.Winner(loc, player) {
		that.winner = player
	}

	return loc, nil
}

// UndoMove - only the top stone of a column can be taken back.
func (that *Board) UndoMove(loc entity.Location) error {
	if !inRange(loc.Row, loc.Col) {
		return fmt.Errorf("%w: location %s", apperror.ErrInvalidMove, loc)
	}

	if that.cells[loc.Row][loc.Col] == entity.Empty {
		return fmt.Errorf("%w: location %s is empty", apperror.ErrInvalidMove, loc)
	}

	if loc.Row > 0 && that.cells[loc.Row-1][loc.Col] != entity.Empty {
		return fmt.Errorf("%w: location %s is not the top of column %d", apperror.ErrInvalidMove, loc, loc.Col)
	}

	that.cells[loc.Row][loc.Col] = entity.Empty

	if that.winner != entity.Empty {
		that.winner = that.detectWinner()
	}

	return nil
}

func (that *Board) IsFull() bool {
	for col := range Cols {
		if that.cells[0][col] == entity.Empty {
			return false
		}
	}

	return true
}

func (that *Board) EmptyCells() int {
	empty := 0
	for row := range Rows {
		empty += lo.Count(that.cells[row][:], entity.Empty)
	}

	return empty
}

// Winner scans a window of up to 7 cells centred on loc along each axis
// and looks for a run of at least InARow stones of player.
func (that *Board) Winner(loc entity.Location, player entity.Cell) bool {
	if !inRange(loc.Row, loc.Col) || !player.IsPlayer() {
		return false
	}

	if that.cells[loc.Row][loc.Col] != player {
		return false
	}

	for _, dir := range directions {
		count := 0
		for d := -(InARow - 1); d <= InARow-1; d++ {
			row, col := loc.Row+d*dir[0], loc.Col+d*dir[1]
			if !inRange(row, col) {
				continue
			}

			if that.cells[row][col] != player {
				count = 0
				continue
			}

			count++
			if count >= InARow {
				return true
			}
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

func (that *Board) detectWinner() entity.Cell {
	for row := range Rows {
		for col := range Cols {
			cell := that.cells[row][col]
			if cell != entity.Empty && that.Winner(entity.Location{Row: row, Col: col}, cell) {
				return cell
			}
		}
	}

	return entity.Empty
}

func inRange(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

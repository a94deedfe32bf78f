package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

// play applies moves alternately for X and O, starting with X.
func play(t *testing.T, board *Board, moves ...int) {
	t.Helper()

	mark := entity.PlayerX
	for _, move := range moves {
		_, err := board.ApplyMove(move, mark)
		require.NoError(t, err)
		mark = mark.Opponent()
	}
}

func TestNewBoard(t *testing.T) {
	// When: create a new board
	board := NewBoard()

	// Then: every cell is empty and every index is a legal move
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, board.LegalMoves())
	assert.Equal(t, CellCount, board.EmptyCells())
	assert.False(t, board.IsFull())
	assert.False(t, board.IsGameOver())
	assert.Equal(t, entity.Outcome{Result: entity.InProgress}, board.Outcome())
	assert.Equal(t, entity.TicTacToe, board.Kind())
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Fills the cell and returns its location", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays cell 5
		loc, err := board.ApplyMove(5, entity.PlayerX)

		// Then: the cell at row 1, column 2 belongs to X
		require.NoError(t, err)
		assert.Equal(t, entity.Location{Row: 1, Col: 2}, loc)
		assert.Equal(t, entity.PlayerX, board.Cell(1, 2))
		assert.NotContains(t, board.LegalMoves(), 5)
		assert.Equal(t, CellCount-1, board.EmptyCells())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds cell 0
		board := NewBoard()
		play(t, board, 0)
		before := board.Clone()

		// When: O tries to play the same cell
		_, err := board.ApplyMove(0, entity.PlayerO)

		// Then: the move is rejected and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		for _, move := range []int{-1, CellCount, 20} {
			// Given: a new board
			board := NewBoard()

			// When: a move outside the grid is played
			_, err := board.ApplyMove(move, entity.PlayerX)

			// Then: ErrInvalidMove is returned and nothing changes
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.Equal(t, NewBoard(), board)
		}
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: the empty sentinel is played
		_, err := board.ApplyMove(4, entity.Empty)

		// Then: ErrInvalidMove is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, CellCount, board.EmptyCells())
	})
}

func TestBoard_UndoMove(t *testing.T) {
	t.Run("Apply then undo restores the board", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := NewBoard()
		play(t, board, 4, 0, 8)
		before := board.Clone()

		// When: a move is applied and undone
		loc, err := board.ApplyMove(2, entity.PlayerO)
		require.NoError(t, err)
		require.NoError(t, board.UndoMove(loc))

		// Then: the board is identical cell for cell
		assert.Equal(t, before, board)
	})

	t.Run("Undoing the winning move clears the winner", func(t *testing.T) {
		// Given: X has just completed the top row
		board := NewBoard()
		play(t, board, 0, 3, 1, 4)
		loc, err := board.ApplyMove(2, entity.PlayerX)
		require.NoError(t, err)
		require.True(t, board.HasWon(entity.PlayerX))

		// When: the winning move is undone
		require.NoError(t, board.UndoMove(loc))

		// Then: nobody has won
		assert.False(t, board.HasWon(entity.PlayerX))
		assert.Equal(t, entity.InProgress, board.Outcome().Result)
	})

	t.Run("Error on empty or invalid location", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: undoing an empty cell and an out of range location
		errEmpty := board.UndoMove(entity.Location{Row: 0, Col: 0})
		errRange := board.UndoMove(entity.Location{Row: 3, Col: 0})

		// Then: both are rejected
		require.ErrorIs(t, errEmpty, apperror.ErrInvalidMove)
		require.ErrorIs(t, errRange, apperror.ErrInvalidMove)
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Every line is detected from every cell in it", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: X holds the three cells of a line
			board := NewBoard()
			for _, cell := range combo {
				_, err := board.ApplyMove(cell, entity.PlayerX)
				require.NoError(t, err)
			}

			// Then: the line is a win seen from any of its cells, and only for X
			for _, cell := range combo {
				assert.True(t, board.Winner(LocationOf(cell), entity.PlayerX), "combo %v cell %d", combo, cell)
				assert.False(t, board.Winner(LocationOf(cell), entity.PlayerO), "combo %v cell %d", combo, cell)
			}
			assert.True(t, board.HasWon(entity.PlayerX))
		}
	})

	t.Run("Rotated diagonal wins are detected alike", func(t *testing.T) {
		// Given: a main diagonal win and the same position rotated by 90 degrees
		mainDiagonal := NewBoard()
		play(t, mainDiagonal, 0, 1, 4, 2, 8)

		// rotation maps cell (r, c) to (c, 2-r)
		rotate := func(cell int) int {
			loc := LocationOf(cell)
			return loc.Col*Size + (Size - 1 - loc.Row)
		}
		rotated := NewBoard()
		play(t, rotated, rotate(0), rotate(1), rotate(4), rotate(2), rotate(8))

		// Then: both report the win from the last played cell
		assert.True(t, mainDiagonal.Winner(LocationOf(8), entity.PlayerX))
		assert.True(t, rotated.Winner(LocationOf(rotate(8)), entity.PlayerX))
		assert.Equal(t, mainDiagonal.Outcome(), rotated.Outcome())
	})

	t.Run("A gap is not a win", func(t *testing.T) {
		// Given: X holds cells 0 and 2 with O in the middle
		board := NewBoard()
		play(t, board, 0, 1, 2)

		// Then: no win through the top row
		assert.False(t, board.Winner(LocationOf(2), entity.PlayerX))
		assert.False(t, board.HasWon(entity.PlayerX))
	})

	t.Run("A cell not held by the player is not a win", func(t *testing.T) {
		// Given: X owns the top row
		board := NewBoard()
		play(t, board, 0, 3, 1, 4, 2)

		// Then: asking from an O cell reports no win for X
		assert.False(t, board.Winner(LocationOf(3), entity.PlayerX))
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Draw when the board fills up without a line", func(t *testing.T) {
		// Given: a full board with no winner
		// X O X
		// X O O
		// O X X
		board := NewBoard()
		play(t, board, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a draw
		assert.True(t, board.IsFull())
		assert.True(t, board.IsGameOver())
		assert.Empty(t, board.LegalMoves())
		assert.Equal(t, entity.Outcome{Result: entity.Draw}, board.Outcome())
	})

	t.Run("Win for O", func(t *testing.T) {
		// Given: O completes the middle column
		board := NewBoard()
		play(t, board, 0, 1, 2, 4, 8, 7)

		// Then: O wins
		assert.Equal(t, entity.Outcome{Result: entity.Win, Winner: entity.PlayerO}, board.Outcome())
		assert.True(t, board.IsGameOver())
	})

	t.Run("Legal moves match empty cells through a game", func(t *testing.T) {
		board := NewBoard()
		mark := entity.PlayerX
		for _, move := range []int{4, 0, 2, 6, 3, 5} {
			_, err := board.ApplyMove(move, mark)
			require.NoError(t, err)
			mark = mark.Opponent()

			assert.Len(t, board.LegalMoves(), board.EmptyCells())
		}
	})
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := NewBoard()
	play(t, board, 4)
	clone := board.Clone()

	// When: the clone is changed
	_, err := clone.ApplyMove(0, entity.PlayerO)
	require.NoError(t, err)

	// Then: the original is untouched
	assert.Equal(t, entity.Empty, board.Cell(0, 0))
	assert.Equal(t, entity.PlayerO, clone.Cell(0, 0))
}

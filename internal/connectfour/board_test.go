package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

// drop plays the given columns for one player, ignoring turn order.
func drop(t *testing.T, board *Board, player entity.Cell, cols ...int) entity.Location {
	t.Helper()

	var loc entity.Location
	for _, col := range cols {
		var err error
		loc, err = board.ApplyMove(col, player)
		require.NoError(t, err)
	}

	return loc
}

func TestNewBoard(t *testing.T) {
	// When: create a new board
	board := NewBoard()

	// Then: all seven columns are open
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, board.LegalMoves())
	assert.Equal(t, Rows*Cols, board.EmptyCells())
	assert.False(t, board.IsGameOver())
	assert.Equal(t, entity.ConnectFour, board.Kind())
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Stones settle in the lowest empty row", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: two stones are dropped into column 3
		first, err := board.ApplyMove(3, entity.PlayerX)
		require.NoError(t, err)
		second, err := board.ApplyMove(3, entity.PlayerO)
		require.NoError(t, err)

		// Then: they stack from the bottom row up
		assert.Equal(t, entity.Location{Row: Rows - 1, Col: 3}, first)
		assert.Equal(t, entity.Location{Row: Rows - 2, Col: 3}, second)
		assert.Equal(t, entity.PlayerX, board.Cell(Rows-1, 3))
		assert.Equal(t, entity.PlayerO, board.Cell(Rows-2, 3))
	})

	t.Run("Error on full column", func(t *testing.T) {
		// Given: column 0 is full
		board := NewBoard()
		for i := range Rows {
			mark := entity.PlayerX
			if i%2 == 1 {
				mark = entity.PlayerO
			}
			drop(t, board, mark, 0)
		}
		before := board.Clone()

		// When: another stone is dropped into column 0
		_, err := board.ApplyMove(0, entity.PlayerX)

		// Then: the move is rejected, the column is no longer legal and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.NotContains(t, board.LegalMoves(), 0)
		assert.Equal(t, before, board)
	})

	t.Run("Error on invalid column", func(t *testing.T) {
		for _, col := range []int{-1, Cols, 42} {
			// Given: a new board
			board := NewBoard()

			// When: a column outside the grid is played
			_, err := board.ApplyMove(col, entity.PlayerO)

			// Then: ErrInvalidMove is returned and nothing changes
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.Equal(t, NewBoard(), board)
		}
	})
}

func TestBoard_UndoMove(t *testing.T) {
	t.Run("Apply then undo restores the board", func(t *testing.T) {
		// Given: a board with a few stones
		board := NewBoard()
		drop(t, board, entity.PlayerX, 3, 3, 4)
		drop(t, board, entity.PlayerO, 2, 4)
		before := board.Clone()

		// When: a move is applied and undone
		loc, err := board.ApplyMove(4, entity.PlayerX)
		require.NoError(t, err)
		require.NoError(t, board.UndoMove(loc))

		// Then: the board is identical cell for cell
		assert.Equal(t, before, board)
	})

	t.Run("Only the top stone of a column can be undone", func(t *testing.T) {
		// Given: two stones in column 1
		board := NewBoard()
		bottom := drop(t, board, entity.PlayerX, 1)
		drop(t, board, entity.PlayerO, 1)

		// When: the bottom stone is undone
		err := board.UndoMove(bottom)

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.PlayerX, board.Cell(bottom.Row, bottom.Col))
	})

	t.Run("Undoing the winning stone clears the winner", func(t *testing.T) {
		// Given: X has four in column 6
		board := NewBoard()
		loc := drop(t, board, entity.PlayerX, 6, 6, 6, 6)
		require.True(t, board.HasWon(entity.PlayerX))

		// When: the top stone is taken back
		require.NoError(t, board.UndoMove(loc))

		// Then: nobody has won
		assert.False(t, board.HasWon(entity.PlayerX))
		assert.Equal(t, entity.InProgress, board.Outcome().Result)
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Horizontal", func(t *testing.T) {
		// Given: X on the bottom row in columns 1, 2, 3
		board := NewBoard()
		drop(t, board, entity.PlayerX, 1, 2, 3)
		require.False(t, board.HasWon(entity.PlayerX))

		// When: X completes the run in column 4
		loc := drop(t, board, entity.PlayerX, 4)

		// Then: the win is seen from the played cell
		assert.True(t, board.Winner(loc, entity.PlayerX))
		assert.True(t, board.HasWon(entity.PlayerX))
		assert.Equal(t, entity.Outcome{Result: entity.Win, Winner: entity.PlayerX}, board.Outcome())
	})

	t.Run("Horizontal, completed in the middle", func(t *testing.T) {
		// Given: X in columns 0, 1 and 3
		board := NewBoard()
		drop(t, board, entity.PlayerX, 0, 1, 3)

		// When: X fills column 2
		loc := drop(t, board, entity.PlayerX, 2)

		// Then: the run through the middle is found
		assert.True(t, board.Winner(loc, entity.PlayerX))
	})

	t.Run("Vertical", func(t *testing.T) {
		board := NewBoard()
		drop(t, board, entity.PlayerO, 0)
		loc := drop(t, board, entity.PlayerX, 0, 0, 0, 0)

		assert.True(t, board.Winner(loc, entity.PlayerX))
		assert.False(t, board.HasWon(entity.PlayerO))
	})

	t.Run("Diagonal up-right", func(t *testing.T) {
		// Given: stairs of O supporting X on (5,0) (4,1) (3,2) (2,3)
		board := NewBoard()
		drop(t, board, entity.PlayerO, 1, 2, 2, 3, 3, 3)
		drop(t, board, entity.PlayerX, 0, 1, 2)

		// When: X tops column 3
		loc := drop(t, board, entity.PlayerX, 3)

		// Then: the diagonal is a win
		assert.Equal(t, entity.Location{Row: 2, Col: 3}, loc)
		assert.True(t, board.Winner(loc, entity.PlayerX))
	})

	t.Run("Diagonal down-right", func(t *testing.T) {
		// Given: stairs of O supporting X on (2,3) (3,4) (4,5) (5,6)
		board := NewBoard()
		drop(t, board, entity.PlayerO, 3, 3, 3, 4, 4, 5)
		drop(t, board, entity.PlayerX, 6, 5, 4)

		// When: X tops column 3
		loc := drop(t, board, entity.PlayerX, 3)

		// Then: the diagonal is a win
		assert.Equal(t, entity.Location{Row: 2, Col: 3}, loc)
		assert.True(t, board.Winner(loc, entity.PlayerX))
	})

	t.Run("A gap is not a win", func(t *testing.T) {
		// Given: the up-right diagonal with O in the third cell
		board := NewBoard()
		drop(t, board, entity.PlayerO, 1, 2, 2, 3, 3, 3)
		drop(t, board, entity.PlayerX, 0, 1)
		drop(t, board, entity.PlayerO, 2)

		// When: X tops column 3
		loc := drop(t, board, entity.PlayerX, 3)

		// Then: no win
		assert.False(t, board.Winner(loc, entity.PlayerX))
		assert.False(t, board.HasWon(entity.PlayerX))
	})

	t.Run("Three is not a win", func(t *testing.T) {
		board := NewBoard()
		loc := drop(t, board, entity.PlayerX, 2, 3, 4)

		assert.False(t, board.Winner(loc, entity.PlayerX))
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Draw on a full board without four in a row", func(t *testing.T) {
		// Given: column pairs alternate marks row by row, so no line is longer than two
		board := NewBoard()
		for col := range Cols {
			for i := range Rows {
				mark := entity.PlayerX
				if (col/2+i)%2 == 1 {
					mark = entity.PlayerO
				}
				drop(t, board, mark, col)
			}
		}

		// Then: the board is full and nobody won
		assert.True(t, board.IsFull())
		assert.Empty(t, board.LegalMoves())
		assert.Zero(t, board.EmptyCells())
		assert.Equal(t, entity.Outcome{Result: entity.Draw}, board.Outcome())
	})

	t.Run("Legal moves match open columns", func(t *testing.T) {
		board := NewBoard()
		for range Rows {
			drop(t, board, entity.PlayerX, 5)
			drop(t, board, entity.PlayerO, 5)
			if board.Cell(0, 5) != entity.Empty {
				break
			}
		}

		assert.Equal(t, []int{0, 1, 2, 3, 4, 6}, board.LegalMoves())
	})
}

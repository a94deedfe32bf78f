package entity

// Result is the state of a game derived from its board.
type Result uint8

const (
	InProgress Result = iota
	Win
	Draw
)

func (that Result) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Outcome is never stored on its own, boards derive it from their cells.
type Outcome struct {
	Result Result
	Winner Cell
}

// Board is implemented by every game grid.
//
// Moves are game specific: a cell index for Tic-Tac-Toe, a column for
// Connect Four. ApplyMove resolves a move to the cell it fills.
type Board interface {
	Kind() Kind
	Rows() int
	Cols() int
	Cell(row, col int) Cell

	LegalMoves() []int
	ApplyMove(move int, player Cell) (Location, error)
	UndoMove(loc Location) error

	IsFull() bool
	EmptyCells() int

	// Winner reports whether player at loc completes a line through loc.
	Winner(loc Location, player Cell) bool
	HasWon(player Cell) bool
	Outcome() Outcome
	IsGameOver() bool

	Clone() Board
}

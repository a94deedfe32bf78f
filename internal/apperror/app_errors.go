package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrInvalidMove     = errors.New("invalid move")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrColumnFull      = errors.New("column is full")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrUnknownGameKind = errors.New("unknown game kind")
	ErrInvalidMark     = errors.New("invalid player mark")
)

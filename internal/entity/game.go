package entity

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a single human-vs-bot session. Board is the only source of truth
// for the cells; Turn, Winner and Status are refreshed from it after every move.
type Game struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Board   Board     `json:"-"`
	Winner  Cell      `json:"winner"`
	Status  string    `json:"status"`
	Turn    Cell      `json:"player_turn"`
	Players []*Player `json:"players,omitempty"`
	History []Record  `json:"history,omitempty"`
}

// Record is a confirmed move kept in the game history.
type Record struct {
	Mark     Cell     `json:"mark"`
	Move     int      `json:"move"`
	Location Location `json:"location"`
}

// NewGame - X always moves first.
func NewGame(id string, board Board) *Game {
	return &Game{
		ID:     id,
		Kind:   board.Kind(),
		Board:  board,
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// UpdateGameState - derives status from the board after a move by mark.
func (that *Game) UpdateGameState(mark Cell) {
	switch outcome := that.Board.Outcome(); outcome.Result {
	// one player wins
	case Win:
		that.Winner = outcome.Winner
		that.Status = StatusFinished
		that.Turn = Empty
	// tie
	case Draw:
		that.Winner = Empty
		that.Status = StatusFinished
		that.Turn = Empty
	// game continue
	default:
		that.Status = StatusOngoing
		that.Turn = mark.Opponent()
	}
}

func (that *Game) MakeTurn(mark Cell, move int) (Location, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return Location{}, err
	}

	if that.Turn != mark {
		return Location{}, apperror.ErrNotYourTurn
	}

	loc, err := that.Board.ApplyMove(move, mark)
	if err != nil {
		return Location{}, fmt.Errorf("failed to apply move: %w", err)
	}

	that.History = append(that.History, Record{Mark: mark, Move: move, Location: loc})
	that.UpdateGameState(mark)

	return loc, nil
}

// Restart - swaps in a fresh board and keeps the players and their marks.
func (that *Game) Restart(board Board) {
	that.Board = board
	that.Kind = board.Kind()
	that.Winner = Empty
	that.Turn = PlayerX
	that.Status = StatusOngoing
	that.History = nil
}

// LastMove returns the most recent confirmed move.
func (that *Game) LastMove() (Record, bool) {
	if len(that.History) == 0 {
		return Record{}, false
	}
	return that.History[len(that.History)-1], true
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) BotPlayer() (*Player, bool) {
	return lo.Find(that.Players, func(player *Player) bool {
		return player.IsBot()
	})
}

func (that *Game) HumanPlayer() (*Player, bool) {
	return lo.Find(that.Players, func(player *Player) bool {
		return !player.IsBot()
	})
}

// GetRandomMarks - returns the human mark first, then the bot mark.
func (that *Game) GetRandomMarks() (Cell, Cell) {
	if frand.Intn(2) == 0 {
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}

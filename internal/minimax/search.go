package minimax

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/rocketscienceinc/minimax-games/internal/apperror"
	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

// NoMove is returned when the search stopped at its entry node.
const NoMove = -1

// Result of a search: the chosen move and its evaluation from the AI's side.
type Result struct {
	Move  int
	Score int
}

type Option func(*Engine)

// WithScorer replaces the default FlatScore evaluation.
func WithScorer(scorer Scorer) Option {
	return func(e *Engine) {
		e.scorer = scorer
	}
}

// WithoutPruning turns the search into plain minimax.
func WithoutPruning() Option {
	return func(e *Engine) {
		e.pruning = false
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine runs depth-limited minimax with alpha-beta pruning over any entity.Board.
// It keeps no state between calls and never mutates the boards it is given.
type Engine struct {
	logger  *slog.Logger
	scorer  Scorer
	pruning bool
}

func New(opts ...Option) *Engine {
	engine := &Engine{
		logger:  slog.New(slog.DiscardHandler),
		scorer:  FlatScore,
		pruning: true,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

type stats struct {
	nodes int
}

// BestMove - returns the move the AI should play. depthLimit <= 0 searches to the end of the game.
func (that *Engine) BestMove(board entity.Board, aiPlayer, humanPlayer entity.Cell, depthLimit int) (int, error) {
	log := that.logger.With("method", "BestMove", "kind", board.Kind(), "ai", aiPlayer)

	if board.IsGameOver() || len(board.LegalMoves()) == 0 {
		return NoMove, fmt.Errorf("%w: board is already over", apperror.ErrNoLegalMoves)
	}

	if !aiPlayer.IsPlayer() || !humanPlayer.IsPlayer() || aiPlayer == humanPlayer {
		return NoMove, fmt.Errorf("%w: ai %q, human %q", apperror.ErrInvalidMark, aiPlayer, humanPlayer)
	}

	depth := depthLimit
	if depth <= 0 {
		depth = board.EmptyCells()
	}

	started := time.Now()
	st := &stats{}

	result := that.search(board, depth, math.MinInt, math.MaxInt, true, aiPlayer, humanPlayer, st)
	if result.Move == NoMove {
		return NoMove, fmt.Errorf("%w: search returned no move", apperror.ErrNoLegalMoves)
	}

	log.Debug("search finished",
		"move", result.Move,
		"score", result.Score,
		"depth", depth,
		"nodes", st.nodes,
		"pruning", that.pruning,
		"elapsed", time.Since(started),
	)

	return result.Move, nil
}

// Search evaluates board from aiPlayer's point of view. maximizing tells whose
// turn it is: aiPlayer when true, humanPlayer otherwise.
func (that *Engine) Search(board entity.Board, depth, alpha, beta int, maximizing bool, aiPlayer, humanPlayer entity.Cell) Result {
	return that.search(board, depth, alpha, beta, maximizing, aiPlayer, humanPlayer, &stats{})
}

func (that *Engine) search(
	board entity.Board,
	depth, alpha, beta int,
	maximizing bool,
	aiPlayer, humanPlayer entity.Cell,
	st *stats,
) Result {
	st.nodes++

	if depth == 0 || board.HasWon(aiPlayer) || board.HasWon(humanPlayer) || board.IsFull() {
		return Result{Move: NoMove, Score: that.scorer(board, aiPlayer, humanPlayer)}
	}

	player := humanPlayer
	best := Result{Move: NoMove, Score: math.MaxInt}
	if maximizing {
		player = aiPlayer
		best.Score = math.MinInt
	}

	for _, move := range board.LegalMoves() {
		child := board.Clone()
		if _, err := child.ApplyMove(move, player); err != nil {
			continue
		}

		score := that.search(child, depth-1, alpha, beta, !maximizing, aiPlayer, humanPlayer, st).Score

		if maximizing {
			if score > best.Score {
				best = Result{Move: move, Score: score}
			}
			alpha = max(alpha, best.Score)
		} else {
			if score < best.Score {
				best = Result{Move: move, Score: score}
			}
			beta = min(beta, best.Score)
		}

		if that.pruning && alpha >= beta {
			break
		}
	}

	return best
}

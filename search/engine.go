package search

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhoujunwen/xiangqi-engine/board"
)

// Engine is the external API surface from spec.md §6: initialise (via
// NewEngine), reset, loadBoard, getBestMove. The transposition table,
// history table and killer table live here and persist across queries
// until Reset clears them, per §5's "TT and history/killer tables are
// intentionally preserved across queries" contract.
type Engine struct {
	board   *board.Board
	tt      *transTable
	history *historyTable
	killers *killerTable
	log     zerolog.Logger
}

// NewEngine constructs a ready-to-use Engine. This is spec.md's
// implicit initialise() — there is no separate construction step.
func NewEngine() *Engine {
	return &Engine{
		board:   &board.Board{},
		tt:      newTransTable(),
		history: newHistoryTable(),
		killers: newKillerTable(),
		log:     zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger(),
	}
}

// Reset clears the transposition table, history table and killer
// table, and reseeds the Zobrist keys, per spec.md §6's reset().
func (e *Engine) Reset() {
	e.tt.clear()
	e.history.clear()
	e.killers.clear()
	board.ReseedZobrist()
}

// LoadBoard replaces the engine's internal board state, per spec.md
// §6's loadBoard(board, side).
func (e *Engine) LoadBoard(snap board.Snapshot, side board.Color) {
	e.board.LoadBoard(snap, side)
}

// GetBestMove searches the given position at the given difficulty and
// returns the chosen move, a human-readable explanation, and the
// engine's evaluation, or nil if the side to move has no legal move
// (checkmate or stalemate — the caller distinguishes the two with
// InCheck, per spec.md §7). It reloads the position first, so callers
// may call it directly without a separate LoadBoard, matching the
// literal §6 signature getBestMove(board, side, difficulty, language)
// while still sharing the warmed-up TT/history/killer tables across
// calls.
func (e *Engine) GetBestMove(ctx context.Context, snap board.Snapshot, side board.Color, difficulty Difficulty, language Language) *Result {
	e.LoadBoard(snap, side)
	return e.getBestMoveFromLoaded(ctx, difficulty, language)
}

func (e *Engine) getBestMoveFromLoaded(ctx context.Context, difficulty Difficulty, language Language) *Result {
	p := difficulty.preset()
	deadline := time.Now().Add(p.timeLimit)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	legalRootMoves := e.legalMoves()
	if len(legalRootMoves) == 0 {
		return nil
	}

	s := &searcher{
		board:    e.board,
		tt:       e.tt,
		killers:  e.killers,
		history:  e.history,
		log:      e.log,
		deadline: deadline,
		ctx:      ctx,
	}

	var (
		completedDepth int
		bestScore      int
		bestMove       board.Move
	)

	const infinity = 1 << 30
	alpha, beta := -infinity, infinity

	for depth := 1; depth <= p.maxDepth; depth++ {
		select {
		case <-ctx.Done():
			s.aborted = true
		default:
		}
		if s.aborted {
			break
		}

		score := s.search(depth, alpha, beta, 0, false)
		if !s.aborted && (score <= alpha || score >= beta) {
			score = s.search(depth, -infinity, infinity, 0, false)
		}
		if s.aborted {
			break
		}

		alpha, beta = score-50, score+50

		if entry, ok := s.tt.probe(e.board.Hash); ok && entry.move != board.NoMove {
			bestMove = entry.move
			bestScore = score
			completedDepth = depth
		}

		e.log.Debug().
			Int("depth", depth).
			Int64("nodes", s.nodes).
			Int("score", score).
			Msg("iteration complete")

		if abs(score) > MateThreshold {
			break
		}
	}

	if completedDepth == 0 || bestMove == board.NoMove {
		fallback := legalRootMoves[rand.Intn(len(legalRootMoves))]
		return &Result{
			Move:      toExternalMove(fallback),
			Reasoning: buildFallbackReasoning(language),
			Score:     0,
		}
	}

	return &Result{
		Move:      toExternalMove(bestMove),
		Reasoning: buildReasoning(language, completedDepth, s.nodes, bestScore),
		Score:     bestScore,
	}
}

// legalMoves filters GenerateMoves(false) down to moves that do not
// leave the mover's own king in check, the same filter the search loop
// applies to every node.
func (e *Engine) legalMoves() []board.Move {
	side := e.board.Turn
	pseudo := e.board.GenerateMoves(make([]board.Move, 0, board.MaxMoves), false)
	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		captured := e.board.MakeMove(m)
		if !e.board.InCheck(side) {
			legal = append(legal, m)
		}
		e.board.UndoMove(m, captured)
	}
	return legal
}

func toExternalMove(m board.Move) RMove {
	from, to := m.From(), m.To()
	return RMove{
		From: RSquare{Row: from.Row(), Col: from.Col()},
		To:   RSquare{Row: to.Row(), Col: to.Col()},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package search

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhoujunwen/xiangqi-engine/board"
	"github.com/zhoujunwen/xiangqi-engine/eval"
)

// searcher holds all per-query mutable state: the board being searched,
// the shared tables that persist across queries (tt/history/killers),
// and the bookkeeping (node count, deadline, abort flag) a single
// getBestMove call needs. It is created fresh for each GetBestMove
// call; the tables it points at outlive it.
type searcher struct {
	board   *board.Board
	tt      *transTable
	killers *killerTable
	history *historyTable
	log     zerolog.Logger
	ctx     context.Context

	nodes    int64
	deadline time.Time
	aborted  bool

	// qPly indexes quiescence's own capture-buffer stack. It is separate
	// from the ply parameter threaded explicitly through search, since
	// quiescence has no ply parameter of its own (per spec.md's
	// pseudocode) and always starts a fresh sub-recursion at 0.
	qPly int

	moveBuf    [maxPly][board.MaxMoves]board.Move
	captureBuf [maxPly][board.MaxMoves]board.Move
	scoreBuf   [maxPly][board.MaxMoves]int32
}

func (s *searcher) pollDeadline() {
	if s.aborted {
		return
	}
	if time.Now().After(s.deadline) {
		s.aborted = true
		return
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		s.aborted = true
	}
}

// search is the negamax core: iterative-deepening's per-depth call.
// Returns a score in [MinScore, MaxScore] from the perspective of the
// side to move at this node.
func (s *searcher) search(depth, alpha, beta, ply int, isNull bool) int {
	s.nodes++
	if s.nodes&2047 == 0 {
		s.pollDeadline()
	}
	if s.aborted {
		return alpha
	}
	if ply >= maxPly-1 {
		return eval.Evaluate(s.board)
	}

	sideToMove := s.board.Turn
	inCheck := s.board.InCheck(sideToMove)
	hash := s.board.Hash

	originalAlpha := alpha

	ttEntry, ttHit := s.tt.probe(hash)
	if ttHit && int(ttEntry.depth) >= depth && !inCheck {
		score := int(ttEntry.score)
		switch ttEntry.bound {
		case BoundExact:
			return score
		case BoundLower:
			if score >= beta {
				return score
			}
		case BoundUpper:
			if score <= alpha {
				return score
			}
		}
	}

	if depth <= 0 {
		if !inCheck {
			return s.quiescence(alpha, beta)
		}
		depth = 1
	}

	if !isNull && !inCheck && depth >= 3 {
		s.board.MakeNullMove()
		v := -s.search(depth-1-2, -beta, -beta+1, ply+1, true)
		s.board.UnmakeNullMove()
		if s.aborted {
			return alpha
		}
		if v >= beta {
			return beta
		}
	}

	var ttMove board.Move
	if ttHit {
		ttMove = ttEntry.move
	}

	moves := s.board.GenerateMoves(s.moveBuf[ply][:0], false)
	orderMoves(s.board, moves, ttMove, ply, s.killers, s.history, s.scoreBuf[ply][:len(moves)])

	legal := 0
	bestScore := MinScore - 1
	var bestMove board.Move
	bound := BoundUpper

	for i, m := range moves {
		captured := s.board.MakeMove(m)
		if s.board.InCheck(sideToMove) {
			s.board.UndoMove(m, captured)
			continue
		}
		legal++

		var sc int
		if i == 0 {
			sc = -s.search(depth-1, -beta, -alpha, ply+1, false)
		} else {
			reduce := 0
			if depth >= 3 && legal > 4 && captured == board.Empty && !inCheck {
				reduce = 1
			}
			sc = -s.search(depth-1-reduce, -alpha-1, -alpha, ply+1, false)
			if sc > alpha && reduce > 0 {
				sc = -s.search(depth-1, -alpha-1, -alpha, ply+1, false)
			}
			if sc > alpha && sc < beta {
				sc = -s.search(depth-1, -beta, -alpha, ply+1, false)
			}
		}

		s.board.UndoMove(m, captured)
		if s.aborted {
			return alpha
		}

		if sc > bestScore {
			bestScore, bestMove = sc, m
		}
		if sc > alpha {
			alpha, bound = sc, BoundExact
		}
		if alpha >= beta {
			bound = BoundLower
			if captured == board.Empty {
				s.killers.push(ply, m)
				s.history.bump(m, depth)
			}
			break
		}
	}

	if legal == 0 {
		if inCheck {
			return -mateScore + ply
		}
		return 0
	}

	if bestMove != board.NoMove {
		storedBound := bound
		if bestScore <= originalAlpha {
			storedBound = BoundUpper
		}
		s.tt.store(hash, depth, bestScore, storedBound, bestMove)
	}

	return bestScore
}

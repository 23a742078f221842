package search

import (
	"github.com/zhoujunwen/xiangqi-engine/board"
	"github.com/zhoujunwen/xiangqi-engine/eval"
)

// Move ordering priorities, exactly as spec.md's table lists them: the
// buckets are spaced far enough apart that within-bucket MVV-LVA or
// history values never spill into the next bucket.
const (
	scoreTTMove    = 1_000_000
	scoreCapture   = 500_000
	scoreKiller0   = 400_000
	scoreKiller1   = 300_000
)

// scoreMove ranks m for ordering at ply, given the board it will be
// played on (before the move is made) and the current TT move, if any.
func scoreMove(b *board.Board, m board.Move, ttMove board.Move, ply int, killers *killerTable, history *historyTable) int32 {
	if m == ttMove {
		return scoreTTMove
	}

	victim := b.Squares[m.To()]
	if victim != board.Empty {
		attacker := b.Squares[m.From()]
		mvvLva := (eval.PieceValue(victim.Type()) << 4) - eval.PieceValue(attacker.Type())
		return scoreCapture + int32(mvvLva)
	}

	k0, k1 := killers.at(ply)
	switch m {
	case k0:
		return scoreKiller0
	case k1:
		return scoreKiller1
	}

	return history.score(m)
}

// orderMoves scores every move in place and selection-sorts descending.
// Selection sort, not sort.Slice: move lists here are small (spec.md
// puts the practical ceiling around 30-40, worst case ~90) and this
// avoids both an interface-dispatch sort and an allocation for the
// less-function closure.
func orderMoves(b *board.Board, moves []board.Move, ttMove board.Move, ply int, killers *killerTable, history *historyTable, scoreBuf []int32) {
	for i, m := range moves {
		scoreBuf[i] = scoreMove(b, m, ttMove, ply, killers, history)
	}
	n := len(moves)
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scoreBuf[j] > scoreBuf[best] {
				best = j
			}
		}
		if best != i {
			moves[i], moves[best] = moves[best], moves[i]
			scoreBuf[i], scoreBuf[best] = scoreBuf[best], scoreBuf[i]
		}
	}
}

// mvvLvaCaptureScore ranks a quiescence capture by victim value minus
// attacker value, per spec.md's quiescence ordering ("victim_type −
// attacker_type"), using material values rather than raw type numbers
// so a rook-takes-pawn is never preferred over a pawn-takes-rook.
func mvvLvaCaptureScore(b *board.Board, m board.Move) int32 {
	victim := b.Squares[m.To()]
	attacker := b.Squares[m.From()]
	return int32(eval.PieceValue(victim.Type()) - eval.PieceValue(attacker.Type()))
}

// orderCaptures selection-sorts capture-only move lists for quiescence.
func orderCaptures(b *board.Board, moves []board.Move, scoreBuf []int32) {
	for i, m := range moves {
		scoreBuf[i] = mvvLvaCaptureScore(b, m)
	}
	n := len(moves)
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scoreBuf[j] > scoreBuf[best] {
				best = j
			}
		}
		if best != i {
			moves[i], moves[best] = moves[best], moves[i]
			scoreBuf[i], scoreBuf[best] = scoreBuf[best], scoreBuf[i]
		}
	}
}
